// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"os"
	"path/filepath"
)

// ExistsFunc reports whether a normalized, source-root-relative stylesheet
// path exists. It is the resolver's only window onto the filesystem.
type ExistsFunc func(path string) bool

// DirExists returns an ExistsFunc backed by the LESS source tree at root.
// Only regular files count; directories and stat errors report false.
func DirExists(root string) ExistsFunc {
	return func(path string) bool {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(path)))
		return err == nil && info.Mode().IsRegular()
	}
}

// FileSet returns an ExistsFunc that reports true exactly for the given
// paths. It suits tests and callers that already hold a file listing.
func FileSet(paths ...string) ExistsFunc {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return func(path string) bool {
		_, ok := set[path]
		return ok
	}
}

// NoFiles reports false for every path, so no base file is ever emitted.
func NoFiles(string) bool { return false }
