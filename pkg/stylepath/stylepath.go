// SPDX-License-Identifier: MPL-2.0

// Package stylepath canonicalizes the module-local stylesheet paths that the
// catalog declares. Paths are always forward-slash separated and relative to
// the LESS source root, regardless of the host operating system.
package stylepath

import (
	"path"
	"strings"
)

// Normalize collapses "." and ".." segments in a module-local path and strips
// any leading slash. Segments are resolved left to right; ".." segments that
// would climb above the source root are dropped. Backslashes are treated as
// separators. The filesystem is never consulted.
//
//	Normalize("widgets/../framework/x.less") == "framework/x.less"
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimLeft(path.Clean("/"+p), "/")
}

// Join concatenates segments with "/" and normalizes the result. Unlike
// path.Join, empty segments are kept as separators before normalization, so
// Join("widgets", "base", "../ui.less") == "widgets/ui.less".
func Join(elem ...string) string {
	return Normalize(strings.Join(elem, "/"))
}

// IconsPath returns the icons directory that sits next to a source path.
func IconsPath(sourcePath string) string {
	return path.Clean(strings.ReplaceAll(sourcePath, `\`, "/") + "/../icons")
}

// IsNormalized reports whether p is already in canonical form.
func IsNormalized(p string) bool {
	return p == Normalize(p)
}
