package timetagger

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newFakeServer spins up a TimeTagger stand-in that checks the auth
// header and dispatches on method + path.
func newFakeServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("authtoken") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "test-token")
	if err != nil {
		t.Fatal(err)
	}
	return srv, client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		token   string
	}{
		{"empty url", "", "tok"},
		{"empty token", "https://tt.example.com/api/v2", ""},
		{"bad scheme", "ftp://tt.example.com", "tok"},
		{"no scheme", "tt.example.com/api/v2", "tok"},
		{"no host", "https://", "tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.baseURL, tt.token)
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New("https://tt.example.com/timetagger/api/v2/", "tok")
	if err != nil {
		t.Fatal(err)
	}
	if got := client.BaseURL(); got != "https://tt.example.com/timetagger/api/v2" {
		t.Errorf("BaseURL() = %q, want trailing slash removed", got)
	}
	if got := client.Server(); got != "tt.example.com" {
		t.Errorf("Server() = %q, want %q", got, "tt.example.com")
	}
}

func TestFetchRecords(t *testing.T) {
	var gotPath string
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		_, _ = io.WriteString(w, `{"records": [
			{"key": "aaaa1111", "t1": 100, "t2": 200, "ds": "#work", "mt": 150, "st": 150.5}
		]}`)
	})

	records, err := client.FetchRecords(context.Background(), 100, 200)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/records?timerange=100-200" {
		t.Errorf("path = %q, want %q", gotPath, "/records?timerange=100-200")
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	want := Record{Key: "aaaa1111", T1: 100, T2: 200, DS: "#work", MT: 150, ST: 150.5}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestPutRecords(t *testing.T) {
	var gotBody string
	var gotMethod string
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = io.WriteString(w, `{"accepted": ["aaaa1111"], "errors": []}`)
	})

	result, err := client.PutRecords(context.Background(), []Record{
		{Key: "aaaa1111", T1: 100, T2: 200, DS: "#work", MT: 150},
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if !strings.HasPrefix(gotBody, "[") {
		t.Errorf("body should be a JSON array, got %q", gotBody)
	}
	if !result.Accepts("aaaa1111") {
		t.Errorf("result = %+v, want aaaa1111 accepted", result)
	}
	if result.Accepts("bbbb2222") {
		t.Error("unknown key must not be accepted")
	}
}

func TestFetchSettings(t *testing.T) {
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"settings": [
			{"key": "darkmode", "value": true, "mt": 100, "st": 100.5},
			{"key": "tagcolors", "value": {"#work": "#ff0000"}, "mt": 90, "st": 90.5}
		]}`)
	})

	settings, err := client.FetchSettings(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(settings) != 2 {
		t.Fatalf("got %d settings, want 2", len(settings))
	}
	if b, ok := settings[0].Value.AsBool(); !ok || !b {
		t.Errorf("darkmode = %v, want true", settings[0].Value)
	}
	fields, ok := settings[1].Value.AsObject()
	if !ok {
		t.Fatalf("tagcolors should be an object, got %v", settings[1].Value.Kind())
	}
	if s, _ := fields["#work"].AsString(); s != "#ff0000" {
		t.Errorf("tagcolors[#work] = %q, want %q", s, "#ff0000")
	}
}

func TestFetchUpdatesSince(t *testing.T) {
	var gotPath string
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		_, _ = io.WriteString(w, `{"records": [{"key": "aaaa1111"}], "server_time": 1750000123.5}`)
	})

	set, err := client.FetchUpdatesSince(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/updates?since=0" {
		t.Errorf("path = %q, want %q", gotPath, "/updates?since=0")
	}
	if set.ServerTime != 1750000123.5 {
		t.Errorf("server_time = %v, want 1750000123.5", set.ServerTime)
	}
	if len(set.Records) != 1 || set.Records[0].Key != "aaaa1111" {
		t.Errorf("records = %+v, want the single changed record", set.Records)
	}
}

func TestDo_UpstreamError(t *testing.T) {
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "database exploded")
	})

	_, err := client.FetchRecords(context.Background(), 0, 100)
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if uerr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", uerr.Status)
	}
	if uerr.Body != "database exploded" {
		t.Errorf("body = %q, want the upstream message", uerr.Body)
	}
}

func TestDo_TruncatesLongErrorBody(t *testing.T) {
	long := strings.Repeat("x", 2000)
	_, client := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, long)
	})

	_, err := client.FetchRecords(context.Background(), 0, 100)
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(uerr.Body) != maxErrorBody {
		t.Errorf("body length = %d, want truncated to %d", len(uerr.Body), maxErrorBody)
	}
}

func TestDo_BadAuthSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "invalid token")
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "wrong-token")
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.FetchSettings(context.Background())
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if uerr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", uerr.Status)
	}
}
