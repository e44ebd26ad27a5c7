package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  nil,
			want: Default(),
		},
		{
			name: "all set",
			env: map[string]string{
				EnvCount:    "250",
				EnvOutput:   "out.xlsx",
				EnvSeed:     "42",
				EnvLogLevel: "debug",
			},
			want: Config{Count: 250, Output: "out.xlsx", Seed: 42, HasSeed: true, LogLevel: slog.LevelDebug},
		},
		{
			name: "empty values ignored",
			env:  map[string]string{EnvCount: "", EnvSeed: ""},
			want: Default(),
		},
		{
			name: "zero count allowed",
			env:  map[string]string{EnvCount: "0"},
			want: Config{Count: 0, Output: Default().Output, LogLevel: slog.LevelInfo},
		},
		{"bad count", map[string]string{EnvCount: "many"}, Config{}, true},
		{"negative count", map[string]string{EnvCount: "-3"}, Config{}, true},
		{"bad seed", map[string]string{EnvSeed: "-1"}, Config{}, true},
		{"bad level", map[string]string{EnvLogLevel: "loud"}, Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(lookupMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromEnv = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvCount+"=12\n"+EnvOutput+"=dotenv.xlsx\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Setenv registers cleanup; the empty value is then replaced by .env
	t.Setenv(EnvCount, "")
	t.Setenv(EnvOutput, "")
	os.Unsetenv(EnvCount)
	os.Unsetenv(EnvOutput)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Count != 12 {
		t.Errorf("count = %d, want 12", c.Count)
	}
	if c.Output != "dotenv.xlsx" {
		t.Errorf("output = %q, want dotenv.xlsx", c.Output)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv(EnvCount, "7")

	c, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
	if c.Count != 7 {
		t.Errorf("count = %d, want 7", c.Count)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Output = ""
	if err := c.Validate(); err == nil {
		t.Error("empty output should fail validation")
	}
}
