// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FormatText prints human-readable, styled output.
	FormatText OutputFormat = "text"
	// FormatJSON prints JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML prints YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML prints TOML.
	FormatTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark guidance style.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light guidance style.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSourceRoot is returned when source_root is empty or whitespace-only.
	ErrInvalidSourceRoot = errors.New("invalid source root")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how commands print their results.
	OutputFormat string

	// InvalidOutputFormatError is returned for unknown output formats.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme selects the glamour style used for guidance.
	ColorScheme string

	// InvalidColorSchemeError is returned for unknown color schemes.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects the field errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// SourceRoot is the LESS source tree checked for base stylesheets.
		SourceRoot string `json:"source_root" yaml:"source_root" toml:"source_root" mapstructure:"source_root"`
		// Catalog is an optional catalog file; empty selects the built-in catalog.
		Catalog string `json:"catalog" yaml:"catalog" toml:"catalog" mapstructure:"catalog"`
		// Distribution is planned when no distribution is named explicitly.
		Distribution string `json:"distribution" yaml:"distribution" toml:"distribution" mapstructure:"distribution"`
		// Format is the default output format.
		Format OutputFormat `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" yaml:"ui" toml:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the guidance rendering style.
		ColorScheme ColorScheme `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SourceRoot:   ".",
		Catalog:      "",
		Distribution: "",
		Format:       FormatText,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid reports whether the Config has valid fields. All field errors are
// collected into a single *InvalidConfigError.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.SourceRoot) == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSourceRoot, c.SourceRoot))
	}
	if valid, fieldErrs := c.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns the *InvalidConfigError from IsValid, or nil.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so both the
// config sentinel and the field sentinels match with errors.Is().
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, yaml, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }
