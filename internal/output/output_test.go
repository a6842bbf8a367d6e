package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_SuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"key": "aaaa1111", "hours": 1.5}); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got["key"] != "aaaa1111" {
		t.Errorf("key = %v, want aaaa1111", got["key"])
	}
}

func TestPrinter_SuccessHumanMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "timer started"}); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "timer started") {
		t.Errorf("output %q should contain the message", buf.String())
	}
}

func TestPrinter_ErrorJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewSystemError("api down"))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got["error"] != "api down" {
		t.Errorf("error = %v, want %q", got["error"], "api down")
	}
	if got["code"] != float64(ExitSystemError) {
		t.Errorf("code = %v, want %d", got["code"], ExitSystemError)
	}
}

func TestPrinter_ErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewUserError("unknown record"))

	if out.Len() != 0 {
		t.Errorf("stdout should stay clean, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "unknown record") {
		t.Errorf("stderr %q should contain the message", errOut.String())
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table(
		[]string{"KEY", "DESCRIPTION"},
		[][]string{
			{"aaaa1111", "standup #meeting"},
			{"bbbb2222", "deep work #dev"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "aaaa1111") {
		t.Errorf("row 1 = %q, want it to start with the key", lines[1])
	}
	// Columns align on the widest cell.
	if strings.Index(lines[1], "standup") != strings.Index(lines[2], "deep") {
		t.Errorf("columns misaligned:\n%s", buf.String())
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.KeyValue("Server", "tt.example.com")

	if got := buf.String(); got != "Server: tt.example.com\n" {
		t.Errorf("KeyValue output = %q", got)
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
