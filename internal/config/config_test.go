package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if cfg.Input.Path == "" {
		t.Error("Expected Input.Path to be set")
	}
	if cfg.Input.GridWidth != 22 {
		t.Errorf("Expected default grid width 22, got %d", cfg.Input.GridWidth)
	}
	if cfg.Input.FetchTimeoutMs <= 0 {
		t.Error("Expected a positive default fetch timeout")
	}
	if cfg.Output.Dir == "" {
		t.Error("Expected Output.Dir to be set")
	}
	if cfg.Output.FileName == "" {
		t.Error("Expected Output.FileName to be set")
	}
	if cfg.Output.SheetName == "" {
		t.Error("Expected Output.SheetName to be set")
	}

	t.Logf("Config loaded successfully with defaults")
	cfg.Print()
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
input:
  path: ./export.csv
  grid_width: 24
output:
  dir: ./reports
  file_name: converted
  sheet_name: data
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Input.GridWidth != 24 {
		t.Errorf("grid_width = %d, expected 24", cfg.Input.GridWidth)
	}
	if cfg.Output.FileName != "converted" {
		t.Errorf("file_name = %q, expected converted", cfg.Output.FileName)
	}
	if !filepath.IsAbs(cfg.Output.Dir) {
		t.Errorf("output dir not normalized to absolute: %s", cfg.Output.Dir)
	}
	if _, err := os.Stat(cfg.Output.Dir); err != nil {
		t.Errorf("output dir was not created: %v", err)
	}
}

func TestUseRemote(t *testing.T) {
	cfg := &Config{}
	if cfg.UseRemote() {
		t.Error("UseRemote should be false without a URL")
	}

	cfg.Input.URL = "https://example.com/export.csv"
	if !cfg.UseRemote() {
		t.Error("UseRemote should be true with a URL")
	}
	if cfg.SourceLabel() != cfg.Input.URL {
		t.Errorf("SourceLabel = %q, expected the URL", cfg.SourceLabel())
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(input, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := Config{
		Input: InputConfig{
			Path:           input,
			FetchTimeoutMs: 10000,
			GridWidth:      22,
		},
		Output: OutputConfig{
			Dir:       dir,
			FileName:  "report",
			SheetName: "data",
		},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing input file", func(c *Config) { c.Input.Path = filepath.Join(dir, "gone.csv") }},
		{"no input at all", func(c *Config) { c.Input.Path = "" }},
		{"grid width too small", func(c *Config) { c.Input.GridWidth = 1 }},
		{"zero fetch timeout", func(c *Config) { c.Input.FetchTimeoutMs = 0 }},
		{"empty file name", func(c *Config) { c.Output.FileName = "" }},
		{"empty sheet name", func(c *Config) { c.Output.SheetName = "" }},
	}

	for _, tt := range tests {
		cfg := base
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	// A remote URL makes the local path optional.
	cfg := base
	cfg.Input.Path = ""
	cfg.Input.URL = "https://example.com/export.csv"
	if err := cfg.Validate(); err != nil {
		t.Errorf("remote-only config rejected: %v", err)
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Dir: "/tmp/out", FileName: "拘束時間管理表"}}
	expected := filepath.Join("/tmp/out", "拘束時間管理表.xlsx")
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("GetOutputPath = %q, expected %q", got, expected)
	}
}
