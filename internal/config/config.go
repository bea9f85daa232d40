// Package config resolves where plots are written and how they are rasterized.
// Values come from built-in defaults, an optional HCL file and the REFL_CODE
// environment variable, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// BaseDirEnv names the environment variable holding the output base directory.
const BaseDirEnv = "REFL_CODE"

// ErrNoBaseDir is returned when no output base directory is configured.
var ErrNoBaseDir = errors.New("config: " + BaseDirEnv + " is not set")

// Config is read once per invocation and passed to the renderer.
type Config struct {
	BaseDir   string
	DPI       int
	Width     float64 // inches
	Height    float64 // inches
	LogLevel  string
	LogFormat string
}

// Default returns matplotlib-like output settings.
func Default() Config {
	return Config{
		DPI:       300,
		Width:     6.4,
		Height:    4.8,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// OutputDir returns the directory plots are saved to. It fails with
// ErrNoBaseDir when neither REFL_CODE nor the config file set a base directory.
func (c Config) OutputDir() (string, error) {
	if c.BaseDir == "" {
		return "", ErrNoBaseDir
	}
	return filepath.Join(c.BaseDir, "Files"), nil
}

// fileConfig mirrors the attributes accepted in a config file.
type fileConfig struct {
	BaseDir   *string  `hcl:"base_dir,optional"`
	DPI       *int     `hcl:"dpi,optional"`
	Width     *float64 `hcl:"width,optional"`
	Height    *float64 `hcl:"height,optional"`
	LogLevel  *string  `hcl:"log_level,optional"`
	LogFormat *string  `hcl:"log_format,optional"`
}

// Load builds the configuration. path may be empty to skip the config file.
// lookup is usually os.LookupEnv. A missing base directory is not an error
// here; it is reported by OutputDir when a plot is about to be written.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if dir, ok := lookup(BaseDirEnv); ok && dir != "" {
		cfg.BaseDir = dir
	}
	return cfg, nil
}

// LoadFile overlays the attributes present in an HCL file onto cfg.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("parse config file %s: %s", path, diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("decode config file %s: %s", path, diags.Error())
	}

	if fc.BaseDir != nil {
		cfg.BaseDir = *fc.BaseDir
	}
	if fc.DPI != nil {
		if *fc.DPI <= 0 {
			return fmt.Errorf("config file %s: dpi must be positive, got %d", path, *fc.DPI)
		}
		cfg.DPI = *fc.DPI
	}
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.Height = *fc.Height
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	return nil
}
