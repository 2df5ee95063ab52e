// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/stylereg/stylereg/pkg/catalog"
	"github.com/stylereg/stylereg/pkg/resolver"
	"github.com/stylereg/stylereg/pkg/stylepath"

	"github.com/charmbracelet/log"
)

const (
	// KindCommon marks the theme-independent bundle.
	KindCommon Kind = "common"
	// KindTheme marks a bundle compiled for one theme variant.
	KindTheme Kind = "theme"

	// baseName prefixes every bundle file name.
	baseName = "dx"
	cssExt   = ".css"
)

// ErrDistributionNotFound is returned when the catalog has no such distribution.
var ErrDistributionNotFound = errors.New("distribution not found")

type (
	// Kind classifies a bundle.
	Kind string

	// Bundle is one compiled stylesheet artifact.
	Bundle struct {
		Name        string   `json:"name" yaml:"name" toml:"name"`
		Kind        Kind     `json:"kind" yaml:"kind" toml:"kind"`
		Theme       string   `json:"theme,omitempty" yaml:"theme,omitempty" toml:"theme,omitempty"`
		ColorScheme string   `json:"color_scheme,omitempty" yaml:"color_scheme,omitempty" toml:"color_scheme,omitempty"`
		SizeScheme  string   `json:"size_scheme,omitempty" yaml:"size_scheme,omitempty" toml:"size_scheme,omitempty"`
		Files       []string `json:"files" yaml:"files" toml:"files"`
		Digest      string   `json:"digest" yaml:"digest" toml:"digest"`
	}

	// Plan lists the bundles of one distribution.
	Plan struct {
		Distribution           string   `json:"distribution" yaml:"distribution" toml:"distribution"`
		PublicName             string   `json:"public_name,omitempty" yaml:"public_name,omitempty" toml:"public_name,omitempty"`
		LicenseInfo            string   `json:"license_info,omitempty" yaml:"license_info,omitempty" toml:"license_info,omitempty"`
		Modules                []string `json:"modules" yaml:"modules" toml:"modules"`
		CommonsInExternalFiles bool     `json:"commons_in_external_files" yaml:"commons_in_external_files" toml:"commons_in_external_files"`
		IconsPath              string   `json:"icons_path,omitempty" yaml:"icons_path,omitempty" toml:"icons_path,omitempty"`
		Bundles                []Bundle `json:"bundles" yaml:"bundles" toml:"bundles"`
	}

	// Planner builds plans from a resolver and its catalog.
	Planner struct {
		resolver   *resolver.Resolver
		logger     *log.Logger
		sourceRoot string
	}

	// PlannerOption configures a Planner.
	PlannerOption func(*Planner)
)

// WithLogger sets the logger used for per-bundle debug output and skipped
// themes. By default nothing is logged.
func WithLogger(logger *log.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSourceRoot records the LESS source root so that plans carry the icons
// directory that sits next to it.
func WithSourceRoot(root string) PlannerOption {
	return func(p *Planner) {
		p.sourceRoot = root
	}
}

// NewPlanner returns a Planner over r.
func NewPlanner(r *resolver.Resolver, opts ...PlannerOption) *Planner {
	p := &Planner{resolver: r, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan builds the bundle plan of the named distribution.
//
// The distribution's modules are expanded with ResolveModuleOrder. When the
// distribution keeps common styles external, the first bundle holds only the
// common files; otherwise the common files are prepended to every theme
// bundle. Theme bundles follow the supported themes in declaration order,
// then the theme's color schemes, then its size schemes. Modules without a
// variant for a theme are skipped in that theme's bundles.
func (p *Planner) Plan(distribution string) (*Plan, error) {
	c := p.resolver.Catalog()
	d, ok := c.Distribution(distribution)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDistributionNotFound, catalog.DistributionLabel(distribution))
	}

	modules := p.resolver.ResolveModuleOrder(d.Modules...)
	common := p.resolver.CommonFiles(modules)
	external := d.CommonsInExternalFiles()
	base := BaseName(distribution)

	plan := &Plan{
		Distribution:           distribution,
		PublicName:             d.PublicName,
		LicenseInfo:            d.LicenseInfo,
		Modules:                modules,
		CommonsInExternalFiles: external,
		Bundles:                []Bundle{},
	}
	if p.sourceRoot != "" {
		plan.IconsPath = stylepath.IconsPath(p.sourceRoot)
	}

	if external {
		plan.Bundles = append(plan.Bundles, p.newBundle(Bundle{
			Name:  CommonBundleName(base, d.OmitCommonPostfix),
			Kind:  KindCommon,
			Files: common,
		}))
	}

	for _, theme := range d.SupportedThemes {
		known, ok := c.KnownTheme(theme)
		if !ok {
			p.logger.Warn("skipping unknown theme", "distribution", catalog.DistributionLabel(distribution), "theme", theme)
			continue
		}
		sizes := uniqueSizeSchemes(d.SizeSchemes(theme))
		if len(sizes) == 0 {
			sizes = []string{""}
		}
		for _, colorScheme := range known.ColorSchemeNames {
			for _, size := range sizes {
				files := make([]string, 0, len(common))
				if !external {
					files = append(files, common...)
				}
				files = append(files, p.themeFiles(modules, theme, colorScheme, size)...)
				plan.Bundles = append(plan.Bundles, p.newBundle(Bundle{
					Name:        ThemeBundleName(base, theme, colorScheme, size),
					Kind:        KindTheme,
					Theme:       theme,
					ColorScheme: colorScheme,
					SizeScheme:  size,
					Files:       files,
				}))
			}
		}
	}

	return plan, nil
}

// uniqueSizeSchemes drops size schemes equivalent to an earlier one, since
// "" and "default" name the same bundle.
func uniqueSizeSchemes(sizes []string) []string {
	out := make([]string, 0, len(sizes))
	for _, size := range sizes {
		if !slices.ContainsFunc(out, func(seen string) bool { return catalog.SizeSchemesEqual(seen, size) }) {
			out = append(out, size)
		}
	}
	return out
}

func (p *Planner) themeFiles(modules []string, theme, colorScheme, size string) []string {
	var files []string
	for _, module := range modules {
		moduleFiles, err := p.resolver.ThemeFiles(module, theme, colorScheme, size)
		if err != nil {
			p.logger.Debug("module not in theme bundle", "module", module, "theme", theme, "reason", err)
			continue
		}
		files = append(files, moduleFiles...)
	}
	return files
}

func (p *Planner) newBundle(b Bundle) Bundle {
	b.Digest = Digest(b.Files)
	p.logger.Debug("planned bundle", "name", b.Name, "files", len(b.Files), "digest", b.Digest[:12])
	return b
}

// BaseName returns the file name prefix of a distribution's bundles.
func BaseName(distribution string) string {
	if distribution == "" {
		return baseName
	}
	return baseName + "." + distribution
}

// CommonBundleName names the external common bundle.
func CommonBundleName(base string, omitPostfix bool) string {
	if omitPostfix {
		return base + cssExt
	}
	return base + ".common" + cssExt
}

// ThemeBundleName names a theme bundle. Default size schemes are omitted.
func ThemeBundleName(base, theme, colorScheme, sizeScheme string) string {
	name := base + "." + theme + "." + colorScheme
	if !catalog.IsDefaultSizeScheme(sizeScheme) {
		name += "." + sizeScheme
	}
	return name + cssExt
}

// Bundle returns the named bundle.
func (p *Plan) Bundle(name string) (*Bundle, bool) {
	for i := range p.Bundles {
		if p.Bundles[i].Name == name {
			return &p.Bundles[i], true
		}
	}
	return nil, false
}
