package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
}

// InputConfig describes where the timesheet CSV comes from. Path and URL
// are alternatives; when both are set the URL wins (the remote export is
// the fresher copy).
type InputConfig struct {
	Path           string `mapstructure:"path"`             // Local CSV export
	URL            string `mapstructure:"url"`              // Remote CSV endpoint (optional)
	FetchTimeoutMs int    `mapstructure:"fetch_timeout_ms"` // HTTP timeout for the remote fetch
	GridWidth      int    `mapstructure:"grid_width"`       // Nominal column count of the export
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir       string `mapstructure:"dir"`        // Output directory
	FileName  string `mapstructure:"file_name"`  // Output file name (without extension)
	SheetName string `mapstructure:"sheet_name"` // Name of the data sheet in the workbook
}

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for "config.yaml" in the current
// directory. A missing file is not an error; the defaults are usable.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Input:  ./input.csv")
			fmt.Println("  Output: ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "./input.csv")
	v.SetDefault("input.url", "")
	v.SetDefault("input.fetch_timeout_ms", 10000)
	v.SetDefault("input.grid_width", 22)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "拘束時間管理表")
	v.SetDefault("output.sheet_name", "拘束時間")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	if c.Input.Path != "" {
		absInput, err := filepath.Abs(c.Input.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve input.path: %w", err)
		}
		c.Input.Path = absInput
	}

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// FetchTimeout returns the remote-fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Input.FetchTimeoutMs) * time.Millisecond
}

// UseRemote reports whether the input comes from the remote endpoint.
func (c *Config) UseRemote() bool {
	return c.Input.URL != ""
}

// SourceLabel returns the input description used in logs and reports.
func (c *Config) SourceLabel() string {
	if c.UseRemote() {
		return c.Input.URL
	}
	return c.Input.Path
}

// GetOutputPath returns the full path for the output Excel file
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.UseRemote() {
		if c.Input.Path == "" {
			return fmt.Errorf("either input.path or input.url must be set")
		}
		if _, err := os.Stat(c.Input.Path); os.IsNotExist(err) {
			return fmt.Errorf("input.path does not exist: %s", c.Input.Path)
		}
	}

	if c.Input.GridWidth <= 1 {
		return fmt.Errorf("input.grid_width must be at least 2, got %d", c.Input.GridWidth)
	}

	if c.Input.FetchTimeoutMs <= 0 {
		return fmt.Errorf("input.fetch_timeout_ms must be positive, got %d", c.Input.FetchTimeoutMs)
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	if c.Output.SheetName == "" {
		return fmt.Errorf("output.sheet_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Kosoku Conv Configuration ===")
	fmt.Printf("Input Source:     %s\n", c.SourceLabel())
	fmt.Printf("Grid Width:       %d\n", c.Input.GridWidth)
	fmt.Printf("Fetch Timeout:    %v\n", c.FetchTimeout())
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.GetOutputPath())
	fmt.Printf("Sheet Name:       %s\n", c.Output.SheetName)
	fmt.Println("=================================")
}
