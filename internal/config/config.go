// Package config loads the compiler's runtime settings from a YAML file
// via viper, falling back to sensible defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Form   FormConfig   `mapstructure:"form"`
	Output OutputConfig `mapstructure:"output"`
}

// InputConfig names the authoring sources the loaders read from.
type InputConfig struct {
	ChecklistWorkbook string `mapstructure:"checklist_workbook"` // xlsx checklist authoring file
	FacilityRegistry  string `mapstructure:"facility_registry"`  // facility registry JSON export
}

// FormConfig holds XLSForm settings-sheet defaults.
type FormConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
	Style           string `mapstructure:"style"`
	Version         string `mapstructure:"version"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`          // output directory
	FileName    string `mapstructure:"file_name"`    // output file name (without extension)
	WriteReport bool   `mapstructure:"write_report"` // also emit a .docx narrative summary
}

// Load reads the configuration from configPath, or "config.yaml" in the
// current directory when configPath is empty. A missing file is not an
// error; defaults are used instead.
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
			fmt.Println("  Checklist workbook: ./checklist.xlsx")
			fmt.Println("  Facility registry:  ./facilities.json")
			fmt.Println("  Output:             ./output")
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.checklist_workbook", "./checklist.xlsx")
	v.SetDefault("input.facility_registry", "./facilities.json")

	v.SetDefault("form.default_language", "English (en)")
	v.SetDefault("form.style", "pages")
	v.SetDefault("form.version", "1.0.0")

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "mentorship-xlsform")
	v.SetDefault("output.write_report", false)
}

// normalizePaths converts relative paths to absolute paths.
func (c *Config) normalizePaths() error {
	absChecklist, err := filepath.Abs(c.Input.ChecklistWorkbook)
	if err != nil {
		return fmt.Errorf("failed to resolve input.checklist_workbook: %w", err)
	}
	c.Input.ChecklistWorkbook = absChecklist

	absFacilities, err := filepath.Abs(c.Input.FacilityRegistry)
	if err != nil {
		return fmt.Errorf("failed to resolve input.facility_registry: %w", err)
	}
	c.Input.FacilityRegistry = absFacilities

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path for the compiled XLSForm workbook.
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// GetReportPath returns the full path for the optional narrative report.
func (c *Config) GetReportPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".docx")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Input.ChecklistWorkbook); os.IsNotExist(err) {
		return fmt.Errorf("input.checklist_workbook does not exist: %s", c.Input.ChecklistWorkbook)
	}
	if _, err := os.Stat(c.Input.FacilityRegistry); os.IsNotExist(err) {
		return fmt.Errorf("input.facility_registry does not exist: %s", c.Input.FacilityRegistry)
	}
	if c.Form.DefaultLanguage == "" {
		return fmt.Errorf("form.default_language cannot be empty")
	}
	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}
	return nil
}

// Print displays the current configuration.
func (c *Config) Print() {
	fmt.Println("=== Mentorship XLSForm Configuration ===")
	fmt.Printf("Checklist Workbook: %s\n", c.Input.ChecklistWorkbook)
	fmt.Printf("Facility Registry:  %s\n", c.Input.FacilityRegistry)
	fmt.Printf("Default Language:   %s\n", c.Form.DefaultLanguage)
	fmt.Printf("Style:              %s\n", c.Form.Style)
	fmt.Printf("Version:            %s\n", c.Form.Version)
	fmt.Printf("Output Directory:   %s\n", c.Output.Dir)
	fmt.Printf("Output Form:        %s\n", c.GetOutputPath())
	if c.Output.WriteReport {
		fmt.Printf("Output Report:      %s\n", c.GetReportPath())
	}
	fmt.Println("=========================================")
}
