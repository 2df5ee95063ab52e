// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/stylereg/stylereg/internal/dag"
	"github.com/stylereg/stylereg/pkg/stylepath"
)

type (
	// Catalog is the immutable registry of modules, themes and distributions.
	// Values returned by its accessors share backing arrays with the catalog
	// and must not be modified.
	Catalog struct {
		modules     map[string]*Module
		moduleNames []string

		themes     map[string]*KnownTheme
		themeNames []string

		distributions     map[string]*Distribution
		distributionNames []string
	}

	// Warning is a non-fatal catalog finding. Resolution tolerates every
	// condition reported here.
	Warning struct {
		// Subject names the module or distribution the finding is about.
		Subject string
		Message string
	}
)

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Subject, w.Message)
}

// New builds a catalog from a definition. The definition is copied, so later
// changes to it do not affect the catalog. Structural problems (empty or
// duplicate names, duplicate theme variants) are reported together as an
// *InvalidCatalogError. Requirements on unknown modules are accepted.
func New(def Definition) (*Catalog, error) {
	c := &Catalog{
		modules:       make(map[string]*Module, len(def.Modules)),
		themes:        make(map[string]*KnownTheme, len(def.Themes)),
		distributions: make(map[string]*Distribution, len(def.Distributions)),
	}

	var problems []string

	for i := range def.Modules {
		m := cloneModule(def.Modules[i])
		switch {
		case m.Name == "":
			problems = append(problems, fmt.Sprintf("modules[%d]: name is required", i))
			continue
		case c.modules[m.Name] != nil:
			problems = append(problems, fmt.Sprintf("modules[%d]: duplicate module %q", i, m.Name))
			continue
		}
		if m.LicenseInfo == "" {
			m.LicenseInfo = InternalLicense
		}
		problems = append(problems, validateStyleInfo(m)...)
		c.modules[m.Name] = m
		c.moduleNames = append(c.moduleNames, m.Name)
	}

	for i := range def.Themes {
		t := def.Themes[i]
		t.ColorSchemeNames = slices.Clone(t.ColorSchemeNames)
		switch {
		case t.Name == "":
			problems = append(problems, fmt.Sprintf("themes[%d]: name is required", i))
			continue
		case c.themes[t.Name] != nil:
			problems = append(problems, fmt.Sprintf("themes[%d]: duplicate theme %q", i, t.Name))
			continue
		}
		c.themes[t.Name] = &t
		c.themeNames = append(c.themeNames, t.Name)
	}

	for i := range def.Distributions {
		d := cloneDistribution(def.Distributions[i])
		if c.distributions[d.Name] != nil {
			problems = append(problems, fmt.Sprintf("distributions[%d]: duplicate distribution %q", i, d.Name))
			continue
		}
		if d.LicenseInfo == "" {
			d.LicenseInfo = InternalLicense
		}
		c.distributions[d.Name] = d
		c.distributionNames = append(c.distributionNames, d.Name)
	}

	if len(problems) > 0 {
		return nil, &InvalidCatalogError{Problems: problems}
	}
	return c, nil
}

// MustNew is like New but panics on error. It is intended for compiled-in
// catalogs whose validity is covered by tests.
func MustNew(def Definition) *Catalog {
	c, err := New(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Module returns the named module.
func (c *Catalog) Module(name string) (*Module, bool) {
	m, ok := c.modules[name]
	return m, ok
}

// ModuleNames returns module names in declaration order.
func (c *Catalog) ModuleNames() []string {
	return slices.Clone(c.moduleNames)
}

// KnownTheme returns the named catalog-wide theme.
func (c *Catalog) KnownTheme(name string) (*KnownTheme, bool) {
	t, ok := c.themes[name]
	return t, ok
}

// KnownThemes returns the catalog-wide themes in declaration order.
func (c *Catalog) KnownThemes() []*KnownTheme {
	out := make([]*KnownTheme, 0, len(c.themeNames))
	for _, name := range c.themeNames {
		out = append(out, c.themes[name])
	}
	return out
}

// Distribution returns the named distribution. The default distribution is
// named "".
func (c *Catalog) Distribution(name string) (*Distribution, bool) {
	d, ok := c.distributions[name]
	return d, ok
}

// DistributionNames returns distribution names in declaration order.
func (c *Catalog) DistributionNames() []string {
	return slices.Clone(c.distributionNames)
}

// Definition returns a copy of the catalog in its serialized form.
func (c *Catalog) Definition() Definition {
	def := Definition{
		Modules:       make([]Module, 0, len(c.moduleNames)),
		Themes:        make([]KnownTheme, 0, len(c.themeNames)),
		Distributions: make([]Distribution, 0, len(c.distributionNames)),
	}
	for _, name := range c.moduleNames {
		def.Modules = append(def.Modules, *cloneModule(*c.modules[name]))
	}
	for _, name := range c.themeNames {
		t := *c.themes[name]
		t.ColorSchemeNames = slices.Clone(t.ColorSchemeNames)
		def.Themes = append(def.Themes, t)
	}
	for _, name := range c.distributionNames {
		def.Distributions = append(def.Distributions, *cloneDistribution(*c.distributions[name]))
	}
	return def
}

// Check reports conditions that resolution silently tolerates: less roots
// that are not in canonical form, requirements on unknown modules,
// requirement cycles, and distributions that reference unknown modules or
// themes.
func (c *Catalog) Check() []Warning {
	var warnings []Warning

	for _, name := range c.moduleNames {
		if style := c.modules[name].StyleInfo; style != nil && !stylepath.IsNormalized(style.LessRoot) {
			warnings = append(warnings, Warning{Subject: name, Message: fmt.Sprintf("less root %q is not canonical (use %q)", style.LessRoot, stylepath.Normalize(style.LessRoot))})
		}
		for _, dep := range c.modules[name].RequireModules {
			if _, ok := c.modules[dep]; !ok {
				warnings = append(warnings, Warning{Subject: name, Message: fmt.Sprintf("requires unknown module %q", dep)})
			}
		}
	}

	g := dag.FromRequirements(c.moduleNames, func(name string) []string {
		return c.modules[name].RequireModules
	})
	if _, err := g.TopologicalSort(); err != nil {
		var cycleErr *dag.CycleError
		if errors.As(err, &cycleErr) {
			for _, name := range cycleErr.Cycle {
				warnings = append(warnings, Warning{Subject: name, Message: "is part of or depends on a requirement cycle"})
			}
		}
	}

	for _, name := range c.distributionNames {
		d := c.distributions[name]
		subject := DistributionLabel(name)
		for _, m := range d.Modules {
			if _, ok := c.modules[m]; !ok {
				warnings = append(warnings, Warning{Subject: subject, Message: fmt.Sprintf("bundles unknown module %q", m)})
			}
		}
		for _, t := range d.SupportedThemes {
			if _, ok := c.themes[t]; !ok {
				warnings = append(warnings, Warning{Subject: subject, Message: fmt.Sprintf("supports unknown theme %q", t)})
			}
		}
		for _, t := range slices.Sorted(maps.Keys(d.SupportedSizeSchemes)) {
			if !slices.Contains(d.SupportedThemes, t) {
				warnings = append(warnings, Warning{Subject: subject, Message: fmt.Sprintf("lists size schemes for unsupported theme %q", t)})
			}
		}
	}

	return warnings
}

// DistributionLabel returns a display name for a distribution, since the
// default distribution's name is empty.
func DistributionLabel(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}

func validateStyleInfo(m *Module) []string {
	if m.StyleInfo == nil {
		return nil
	}
	var problems []string
	if m.StyleInfo.LessRoot == "" {
		problems = append(problems, fmt.Sprintf("module %q: style_info.less_root is required", m.Name))
	}
	seen := make(map[string]bool, len(m.StyleInfo.Themes))
	for i, t := range m.StyleInfo.Themes {
		if t.Name == "" {
			problems = append(problems, fmt.Sprintf("module %q: themes[%d]: name is required", m.Name, i))
			continue
		}
		if seen[t.Name] {
			problems = append(problems, fmt.Sprintf("module %q: duplicate theme variant %q", m.Name, t.Name))
		}
		seen[t.Name] = true
	}
	return problems
}

func cloneModule(m Module) *Module {
	m.RequireModules = slices.Clone(m.RequireModules)
	if m.StyleInfo != nil {
		si := *m.StyleInfo
		si.CommonLessFiles = slices.Clone(si.CommonLessFiles)
		si.BaseLessFiles = slices.Clone(si.BaseLessFiles)
		si.Themes = slices.Clone(si.Themes)
		for i := range si.Themes {
			si.Themes[i].ColorSchemeNames = slices.Clone(si.Themes[i].ColorSchemeNames)
			si.Themes[i].LessFiles = slices.Clone(si.Themes[i].LessFiles)
		}
		m.StyleInfo = &si
	}
	return &m
}

func cloneDistribution(d Distribution) *Distribution {
	d.Modules = slices.Clone(d.Modules)
	d.SupportedThemes = slices.Clone(d.SupportedThemes)
	if d.SupportedSizeSchemes != nil {
		schemes := make(map[string][]string, len(d.SupportedSizeSchemes))
		for theme, names := range d.SupportedSizeSchemes {
			schemes[theme] = slices.Clone(names)
		}
		d.SupportedSizeSchemes = schemes
	}
	return &d
}
