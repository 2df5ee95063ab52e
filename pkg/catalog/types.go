// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultSizeScheme is the size scheme used when none is requested.
	DefaultSizeScheme = "default"

	// InternalLicense is the license text applied when a module or
	// distribution does not declare one.
	InternalLicense = "For internal use only"
)

var (
	// ErrInvalidCatalog is the sentinel error wrapped by InvalidCatalogError.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrUnsupportedFormat is returned when a catalog file extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

type (
	// ThemeInfo is the shape shared by catalog-wide themes and per-module
	// theme variants: a theme name and its ordered color schemes.
	ThemeInfo struct {
		Name             string   `json:"name"`
		ColorSchemeNames []string `json:"color_schemes,omitempty"`
	}

	// KnownTheme is a theme the catalog knows how to publish.
	KnownTheme struct {
		ThemeInfo
		// PublicName is the name used in published bundle metadata. It may be
		// empty for the flagship theme.
		PublicName string `json:"public_name,omitempty"`
	}

	// ModuleTheme is a module's variant for one theme. LessFiles are relative
	// to the theme's directory under the module's LESS root.
	ModuleTheme struct {
		ThemeInfo
		LessFiles []string `json:"less_files,omitempty"`
	}

	// StyleInfo associates a module with its stylesheet sources.
	StyleInfo struct {
		// LessRoot is the module's directory under the source root.
		LessRoot string `json:"less_root"`
		// CommonLessFiles are relative to {LessRoot}/common.
		CommonLessFiles []string `json:"common_less_files,omitempty"`
		// BaseLessFiles are relative to {LessRoot}/base and are only emitted
		// when they exist on disk.
		BaseLessFiles []string      `json:"base_less_files,omitempty"`
		Themes        []ModuleTheme `json:"themes,omitempty"`
	}

	// Module is a named unit of distributable styles.
	Module struct {
		Name           string     `json:"name"`
		PublicName     string     `json:"public_name,omitempty"`
		LicenseInfo    string     `json:"license_info,omitempty"`
		RequireModules []string   `json:"require_modules,omitempty"`
		StyleInfo      *StyleInfo `json:"style_info,omitempty"`
	}

	// Distribution is a named bundling profile.
	Distribution struct {
		Name        string   `json:"name"`
		PublicName  string   `json:"public_name,omitempty"`
		LicenseInfo string   `json:"license_info,omitempty"`
		Modules     []string `json:"modules,omitempty"`
		// SupportedThemes lists the themes bundled by this distribution. An
		// empty list means the distribution only ships common styles.
		SupportedThemes []string `json:"supported_themes,omitempty"`
		// SupportedSizeSchemes maps a theme to its size schemes. Themes
		// without an entry are built without a size-scheme file.
		SupportedSizeSchemes        map[string][]string `json:"supported_size_schemes,omitempty"`
		ForceCommonsInExternalFiles bool                `json:"force_commons_in_external_files,omitempty"`
		// OmitCommonPostfix names the common bundle without ".common".
		OmitCommonPostfix bool `json:"omit_common_postfix,omitempty"`
	}

	// Definition is the serialized form of a catalog. Declaration order is
	// significant and preserved by [New].
	Definition struct {
		Modules       []Module       `json:"modules"`
		Themes        []KnownTheme   `json:"themes,omitempty"`
		Distributions []Distribution `json:"distributions,omitempty"`
	}

	// InvalidCatalogError collects structural problems found while building a
	// catalog. It wraps ErrInvalidCatalog for errors.Is() compatibility.
	InvalidCatalogError struct {
		Problems []string
	}
)

// Theme returns the module's variant for the named theme.
func (s *StyleInfo) Theme(name string) (*ModuleTheme, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Themes {
		if s.Themes[i].Name == name {
			return &s.Themes[i], true
		}
	}
	return nil, false
}

// ThemeNames returns the module's theme variant names in declaration order.
func (s *StyleInfo) ThemeNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Themes))
	for i := range s.Themes {
		names = append(names, s.Themes[i].Name)
	}
	return names
}

// HasStyles reports whether the module has a stylesheet association.
func (m *Module) HasStyles() bool {
	return m.StyleInfo != nil
}

// SupportsColorScheme reports whether name is one of the theme's color schemes.
func (t ThemeInfo) SupportsColorScheme(name string) bool {
	for _, cs := range t.ColorSchemeNames {
		if cs == name {
			return true
		}
	}
	return false
}

// CommonsInExternalFiles reports whether common styles must be emitted as a
// separate artifact rather than prepended to every theme bundle.
func (d *Distribution) CommonsInExternalFiles() bool {
	return d.ForceCommonsInExternalFiles || len(d.SupportedThemes) != 1
}

// SizeSchemes returns the size schemes listed for a theme, or nil when the
// theme is built without a size-scheme layer.
func (d *Distribution) SizeSchemes(theme string) []string {
	return d.SupportedSizeSchemes[theme]
}

// IsDefaultSizeScheme reports whether value selects the default size scheme.
func IsDefaultSizeScheme(value string) bool {
	return value == "" || value == DefaultSizeScheme
}

// SizeSchemesEqual compares two size schemes, treating "" and "default" alike.
func SizeSchemesEqual(x, y string) bool {
	return IsDefaultSizeScheme(x) && IsDefaultSizeScheme(y) || x == y
}

// Error implements the error interface for InvalidCatalogError.
func (e *InvalidCatalogError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid catalog: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid catalog: %d problems:\n  %s", len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// Unwrap returns ErrInvalidCatalog for errors.Is() compatibility.
func (e *InvalidCatalogError) Unwrap() error { return ErrInvalidCatalog }
