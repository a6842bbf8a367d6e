package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NonexistentFile(t *testing.T) {
	if err := Load("/nonexistent/.env"); err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	path := writeEnvFile(t, ".env.local",
		"TIMETAGGER_TEST_URL=https://tt.example.com/api/v2\nTIMETAGGER_TEST_KEY=secret\n")

	t.Setenv("TIMETAGGER_TEST_URL", "")
	t.Setenv("TIMETAGGER_TEST_KEY", "")
	_ = os.Unsetenv("TIMETAGGER_TEST_URL") //nolint:errcheck
	_ = os.Unsetenv("TIMETAGGER_TEST_KEY") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TIMETAGGER_TEST_URL"); got != "https://tt.example.com/api/v2" {
		t.Errorf("TIMETAGGER_TEST_URL = %q, want the file value", got)
	}
	if got := os.Getenv("TIMETAGGER_TEST_KEY"); got != "secret" {
		t.Errorf("TIMETAGGER_TEST_KEY = %q, want %q", got, "secret")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	path := writeEnvFile(t, ".env", "TIMETAGGER_TEST_PRE=from_file\n")

	t.Setenv("TIMETAGGER_TEST_PRE", "from_env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TIMETAGGER_TEST_PRE"); got != "from_env" {
		t.Errorf("TIMETAGGER_TEST_PRE = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeEnvFile(t, ".env",
		"# comment\n\nTIMETAGGER_TEST_D=yes\n  # indented comment\n")

	t.Setenv("TIMETAGGER_TEST_D", "")
	_ = os.Unsetenv("TIMETAGGER_TEST_D") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("TIMETAGGER_TEST_D"); got != "yes" {
		t.Errorf("TIMETAGGER_TEST_D = %q, want %q", got, "yes")
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY=\"quoted value\"", "KEY", "quoted value", true},
		{"KEY='single quoted'", "KEY", "single quoted", true},
		{"export KEY=value", "KEY", "value", true},
		{"  KEY = value  ", "KEY", "value", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"no-equals-sign", "", "", false},
		{"=no-key", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		key, val, ok := parseEnvLine(tt.line)
		if ok != tt.wantOK || key != tt.wantKey || val != tt.wantVal {
			t.Errorf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, val, ok, tt.wantKey, tt.wantVal, tt.wantOK)
		}
	}
}
