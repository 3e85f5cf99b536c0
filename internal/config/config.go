package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kk-code-lab/trex/internal/preview"
	"gopkg.in/yaml.v3"
)

// Config holds user preferences. It is read at startup and never written back.
type Config struct {
	ShowHidden bool          `yaml:"show_hidden"` // Start with dot-files visible
	Editor     string        `yaml:"editor"`      // Overrides $VISUAL/$EDITOR
	Preview    PreviewConfig `yaml:"preview"`
	Log        LogConfig     `yaml:"log"`
}

// PreviewConfig bounds the preview pane.
type PreviewConfig struct {
	MaxBytes       int64    `yaml:"max_bytes"`
	SniffBytes     int      `yaml:"sniff_bytes"`
	MaxLines       int      `yaml:"max_lines"`
	MaxLineWidth   int      `yaml:"max_line_width"`
	MaxDirEntries  int      `yaml:"max_dir_entries"`
	Highlight      bool     `yaml:"highlight"` // Syntax colouring of text previews
	Style          string   `yaml:"style"`     // Chroma style name
	BinaryPatterns []string `yaml:"binary_patterns"`
}

// LogConfig selects the log sink.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultPath returns ~/.config/trex/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "trex", "config.yaml"), nil
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from path. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ShowHidden: true,
		Preview: PreviewConfig{
			MaxBytes:      preview.DefaultMaxBytes,
			SniffBytes:    preview.DefaultSniffBytes,
			MaxLines:      preview.DefaultMaxLines,
			MaxLineWidth:  preview.DefaultMaxLineRunes,
			MaxDirEntries: preview.DefaultMaxDirEntries,
			Highlight:     true,
			Style:         "dracula",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) normalize() {
	def := Default()
	if c.Preview.MaxBytes <= 0 {
		c.Preview.MaxBytes = def.Preview.MaxBytes
	}
	if c.Preview.SniffBytes <= 0 {
		c.Preview.SniffBytes = def.Preview.SniffBytes
	}
	if c.Preview.MaxLines <= 0 {
		c.Preview.MaxLines = def.Preview.MaxLines
	}
	if c.Preview.MaxLineWidth <= 0 {
		c.Preview.MaxLineWidth = def.Preview.MaxLineWidth
	}
	if c.Preview.MaxDirEntries <= 0 {
		c.Preview.MaxDirEntries = def.Preview.MaxDirEntries
	}
	if c.Preview.Style == "" {
		c.Preview.Style = def.Preview.Style
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Preview.SniffBytes > int(c.Preview.MaxBytes) {
		return fmt.Errorf("preview.sniff_bytes (%d) exceeds preview.max_bytes (%d)", c.Preview.SniffBytes, c.Preview.MaxBytes)
	}
	if _, err := preview.NewGenerator(c.PreviewOptions()); err != nil {
		return err
	}
	return nil
}

// PreviewOptions converts the preview section for the generator.
func (c *Config) PreviewOptions() preview.Options {
	return preview.Options{
		MaxBytes:       c.Preview.MaxBytes,
		SniffBytes:     c.Preview.SniffBytes,
		MaxLines:       c.Preview.MaxLines,
		MaxLineRunes:   c.Preview.MaxLineWidth,
		MaxDirEntries:  c.Preview.MaxDirEntries,
		BinaryPatterns: c.Preview.BinaryPatterns,
	}
}
