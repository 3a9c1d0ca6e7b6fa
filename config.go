package dudecheck

import (
	"bytes"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kolkov/dudecheck/internal/astdoc"
)

// Config holds options for loading and reporting.
type Config struct {
	// Format is the input format: "auto" (default), "json", "yaml" or
	// "notation".
	Format string `toml:"format"`

	// ShowPositions prefixes printed diagnostics with the source position
	// of the offending name, when known.
	ShowPositions bool `toml:"show_positions"`

	// Color enables colored diagnostics in the command line tool
	// (default: true).
	Color *bool `toml:"color"`

	// Print makes the command line tool print the verdict as true/false.
	Print bool `toml:"print"`

	// Time makes the command line tool report how long analysis took.
	Time bool `toml:"time"`

	// Output is the writer diagnostics are printed to.
	// If nil, os.Stdout is used.
	Output io.Writer `toml:"-"`

	// Logger receives debug events of the analysis.
	// If nil, nothing is logged.
	Logger *zap.Logger `toml:"-"`
}

// LoadConfig reads a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if _, err := astdoc.ParseFormat(cfg.Format); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// UseColor reports whether colored output is enabled.
func (c *Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "auto"
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
