package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zarlcorp/zsample/internal/config"
	"github.com/zarlcorp/zsample/internal/customer"
	"github.com/zarlcorp/zsample/internal/sheet"
)

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	return executeWithErr(t, cfg, nil, args...)
}

func executeWithErr(t *testing.T, cfg config.Config, cfgErr error, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg, cfgErr)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, config.Default(), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "zsample dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestRootWritesDefaultBatch(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), sheet.DefaultFile)

	out, err := execute(t, cfg)
	if err != nil {
		t.Fatalf("root: %v\n%s", err, out)
	}

	records, _, err := sheet.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != config.DefaultCount {
		t.Errorf("records = %d, want %d", len(records), config.DefaultCount)
	}
}

func TestGenerateFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.xlsx")
	out, err := execute(t, config.Default(), "generate", "--count", "12", "--out", path, "--seed", "5")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	records, meta, err := sheet.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 12 {
		t.Errorf("records = %d, want 12", len(records))
	}
	if meta.Seed != 5 {
		t.Errorf("seed = %d, want 5", meta.Seed)
	}
}

func TestGenerateSeedFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Seed, cfg.HasSeed = 77, true

	run := func() []customer.Record {
		out, err := execute(t, cfg, "generate", "--count", "4", "--json")
		if err != nil {
			t.Fatal(err)
		}
		var records []customer.Record
		if err := json.Unmarshal([]byte(out), &records); err != nil {
			t.Fatalf("not JSON: %v\n%s", err, out)
		}
		return records
	}

	a, b := run(), run()
	for i := range a {
		if a[i].Phone != b[i].Phone || a[i].Name != b[i].Name {
			t.Fatalf("row %d differs with a configured seed", i+1)
		}
	}
}

func TestGenerateRejectsNegativeCount(t *testing.T) {
	_, err := execute(t, config.Default(), "generate", "--count", "-2", "--out", filepath.Join(t.TempDir(), "x.xlsx"))
	if err == nil {
		t.Error("negative count should fail")
	}
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.xlsx")
	if _, err := execute(t, config.Default(), "generate", "--count", "10", "--out", path); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, config.Default(), "check", path)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "all rows valid") {
		t.Errorf("check output = %q", out)
	}
}

func TestCheckRequiresPath(t *testing.T) {
	if _, err := execute(t, config.Default(), "check"); err == nil {
		t.Error("check without a path should fail")
	}
}

func TestUnknownArgument(t *testing.T) {
	if _, err := execute(t, config.Default(), "bogus"); err == nil {
		t.Error("unknown argument should fail")
	}
}

func TestConfigErrorSparesVersionAndHelp(t *testing.T) {
	cfgErr := errors.New("ZSAMPLE_COUNT: invalid syntax")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"version", []string{"version"}, false},
		{"help flag", []string{"--help"}, false},
		{"help command", []string{"help"}, false},
		{"generate", []string{"generate", "--out", "x.xlsx"}, true},
		{"root", []string{"--out", "x.xlsx"}, true},
		{"check", []string{"check", "x.xlsx"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := executeWithErr(t, config.Default(), cfgErr, tt.args...)
			if tt.wantErr {
				if !errors.Is(err, cfgErr) {
					t.Errorf("err = %v, want config error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
