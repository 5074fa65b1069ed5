// Package config loads widget configuration files.
//
// A config file overrides any subset of [logo.Config]; fields it leaves out
// keep their defaults. The format follows the file extension:
//
//   - .toml: decoded with github.com/BurntSushi/toml
//   - .yaml, .yml: decoded with gopkg.in/yaml.v3
//
// Example logo.toml:
//
//	href = "https://kimjansheden.se"
//
//	[tolerances]
//	bottom = 8
//	left = 8
//	right = 8
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kimjansheden/logo/pkg/errors"
	"github.com/kimjansheden/logo/pkg/logo"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath returns the config format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported config file: %s (want .toml, .yaml or .yml)", path)
	}
}

// Load reads path on top of logo.DefaultConfig and validates the result.
func Load(path string) (logo.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return logo.Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return logo.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return logo.Config{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return logo.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return cfg, nil
}

// Decode reads a config in the given format on top of the defaults.
func Decode(r io.Reader, format string) (logo.Config, error) {
	cfg := logo.DefaultConfig()

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return logo.Config{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return logo.Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return logo.Config{}, err
		}
	default:
		return logo.Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return logo.Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg logo.Config, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown config format: %s", format)
	}
}
