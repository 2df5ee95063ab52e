// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleNotFound is returned when the module is not in the catalog.
	ErrModuleNotFound = errors.New("module not found")
	// ErrNoStyleInfo is returned when the module has no stylesheet association.
	ErrNoStyleInfo = errors.New("module has no styles")
	// ErrThemeNotFound is returned when the module has no variant for the theme.
	ErrThemeNotFound = errors.New("theme not found for module")
)

// ThemeLookupError is returned by ThemeFiles when no file list exists for the
// request. Err is one of ErrModuleNotFound, ErrNoStyleInfo or
// ErrThemeNotFound, for errors.Is() compatibility.
type ThemeLookupError struct {
	Module string
	Theme  string
	Err    error
}

// Error implements the error interface.
func (e *ThemeLookupError) Error() string {
	if errors.Is(e.Err, ErrThemeNotFound) {
		return fmt.Sprintf("module %q: %s %q", e.Module, e.Err, e.Theme)
	}
	return fmt.Sprintf("module %q: %s", e.Module, e.Err)
}

// Unwrap returns the lookup sentinel.
func (e *ThemeLookupError) Unwrap() error { return e.Err }

// IsLookupMiss reports whether err is a ThemeFiles lookup miss rather than a
// failure.
func IsLookupMiss(err error) bool {
	var lookupErr *ThemeLookupError
	return errors.As(err, &lookupErr)
}
