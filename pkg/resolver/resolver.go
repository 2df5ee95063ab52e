// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"fmt"

	"github.com/stylereg/stylereg/pkg/catalog"
	"github.com/stylereg/stylereg/pkg/stylepath"
)

// lessExt is appended to generated color- and size-scheme file names.
const lessExt = ".less"

// Resolver runs resolution queries against a read-only catalog.
type Resolver struct {
	catalog *catalog.Catalog
	exists  ExistsFunc
}

// New returns a Resolver over c. exists filters base files; nil means no base
// file exists.
func New(c *catalog.Catalog, exists ExistsFunc) *Resolver {
	if exists == nil {
		exists = NoFiles
	}
	return &Resolver{catalog: c, exists: exists}
}

// Catalog returns the catalog the resolver reads from.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// ResolveModuleOrder expands names with their transitive requirements and
// returns each known module exactly once, requirements before the modules
// that require them, in order of first appearance.
//
// A module is marked visited before its requirements are expanded, so the
// edge closing a requirement cycle is dropped instead of recursing forever:
// with a requiring b and b requiring a, resolving [a] yields [b a]. Unknown
// names are skipped.
func (r *Resolver) ResolveModuleOrder(names ...string) []string {
	visited := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		m, ok := r.catalog.Module(name)
		if !ok {
			return
		}
		visited[name] = true
		for _, dep := range m.RequireModules {
			visit(dep)
		}
		order = append(order, name)
	}

	for _, name := range names {
		visit(name)
	}
	return order
}

// CommonFiles concatenates the common files of modules, each normalized
// relative to {less_root}/common. Module order is kept, then each module's
// declaration order. Modules without styles, and unknown modules, contribute
// nothing. Callers normally pass the output of ResolveModuleOrder.
func (r *Resolver) CommonFiles(modules []string) []string {
	files := []string{}
	for _, name := range modules {
		m, ok := r.catalog.Module(name)
		if !ok || m.StyleInfo == nil {
			continue
		}
		for _, item := range m.StyleInfo.CommonLessFiles {
			files = append(files, stylepath.Join(m.StyleInfo.LessRoot, "common", item))
		}
	}
	return files
}

// ThemeFiles returns the ordered stylesheet list for one module compiled
// against one theme variant. Later files override earlier ones:
//
//  1. {root}/{theme}/color-schemes/{cs}/{theme}.{cs}.less
//  2. {root}/{theme}/color-schemes/{cs}/{theme}.{cs}.icons.less
//  3. {root}/{theme}/size-schemes/{size}.less, when sizeScheme is not empty
//  4. each {root}/base/{item} that the ExistsFunc reports
//  5. each theme variant file, relative to {root}/{theme}
//
// colorScheme is not checked against the variant's declared schemes. When
// the module is unknown, has no styles, or has no variant for theme, the
// result is a *ThemeLookupError; a found variant always yields a non-nil
// slice.
func (r *Resolver) ThemeFiles(module, theme, colorScheme, sizeScheme string) ([]string, error) {
	m, ok := r.catalog.Module(module)
	if !ok {
		return nil, &ThemeLookupError{Module: module, Theme: theme, Err: ErrModuleNotFound}
	}
	style := m.StyleInfo
	if style == nil {
		return nil, &ThemeLookupError{Module: module, Theme: theme, Err: ErrNoStyleInfo}
	}
	variant, ok := style.Theme(theme)
	if !ok {
		return nil, &ThemeLookupError{Module: module, Theme: theme, Err: ErrThemeNotFound}
	}

	files := make([]string, 0, 3+len(style.BaseLessFiles)+len(variant.LessFiles))

	colorSchemeBase := fmt.Sprintf("%s/%s/color-schemes/%s/%s.%s", style.LessRoot, theme, colorScheme, theme, colorScheme)
	files = append(files, colorSchemeBase+lessExt, colorSchemeBase+".icons"+lessExt)

	if sizeScheme != "" {
		files = append(files, fmt.Sprintf("%s/%s/size-schemes/%s%s", style.LessRoot, theme, sizeScheme, lessExt))
	}

	for _, item := range style.BaseLessFiles {
		if p := stylepath.Join(style.LessRoot, "base", item); r.exists(p) {
			files = append(files, p)
		}
	}

	for _, item := range variant.LessFiles {
		files = append(files, stylepath.Join(style.LessRoot, theme, item))
	}

	return files, nil
}
