package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds the settings that shape the aligned output.
	Format struct {
		// UppercaseKeywords upper-cases clause labels such as "select" or "inner join"
		UppercaseKeywords bool `yaml:"uppercase_keywords,omitempty"`

		// MinWidth is the minimum width of the keyword column
		MinWidth int `yaml:"min_width,omitempty"`
	}

	// Config represents the sqlalign configuration file.
	Config struct {
		// Format contains formatter settings
		Format Format `yaml:"format"`
	}
)

// Default returns the configuration used when no sqlalign.yaml is present.
func Default() *Config {
	return &Config{
		Format: Format{
			UppercaseKeywords: consts.DefaultUppercaseKeywords,
			MinWidth:          consts.DefaultMinWidth,
		},
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted data. Settings that are not present keep
// their default values.
//
// Example:
//
//	yamlData := `
//	format:
//	  uppercase_keywords: true
//	  min_width: 10
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Min width: %d\n", cfg.Format.MinWidth)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Format.MinWidth < 0 {
		return nil, errors.Errorf("min_width must not be negative, got %d", cfg.Format.MinWidth)
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// GetFormatter builds a formatter from the format settings.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(format.FormatterOptions{
		UppercaseKeywords: c.Format.UppercaseKeywords,
		MinWidth:          c.Format.MinWidth,
	})
}
