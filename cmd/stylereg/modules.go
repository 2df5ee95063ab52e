// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/stylereg/stylereg/internal/config"
	"github.com/stylereg/stylereg/pkg/catalog"

	"github.com/spf13/cobra"
)

type (
	moduleView struct {
		Name        string   `json:"name" yaml:"name" toml:"name"`
		PublicName  string   `json:"public_name,omitempty" yaml:"public_name,omitempty" toml:"public_name,omitempty"`
		LicenseInfo string   `json:"license_info" yaml:"license_info" toml:"license_info"`
		Requires    []string `json:"require_modules,omitempty" yaml:"require_modules,omitempty" toml:"require_modules,omitempty"`
		LessRoot    string   `json:"less_root,omitempty" yaml:"less_root,omitempty" toml:"less_root,omitempty"`
		Themes      []string `json:"themes,omitempty" yaml:"themes,omitempty" toml:"themes,omitempty"`
	}

	moduleList struct {
		Modules []moduleView `json:"modules" yaml:"modules" toml:"modules"`
	}

	moduleOrder struct {
		Modules []string `json:"modules" yaml:"modules" toml:"modules"`
	}
)

func newModulesCommand(s *session) *cobra.Command {
	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "Inspect catalog modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog modules",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			r, err := s.loadResolver(cmd.Context())
			if err != nil {
				return err
			}
			f, err := s.format(cmd.Context(), format)
			if err != nil {
				return err
			}
			return listModules(s, r.Catalog(), f)
		}),
	}
	listCmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")

	resolveCmd := &cobra.Command{
		Use:   "resolve <module>...",
		Short: "Print modules and their requirements in dependency order",
		Long: `Print the named modules and everything they require, each module after
its requirements. Unknown names are skipped and requirement cycles are
broken at the edge that closes them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			r, err := s.loadResolver(cmd.Context())
			if err != nil {
				return err
			}
			f, err := s.format(cmd.Context(), format)
			if err != nil {
				return err
			}
			warnUnknownModules(s, r.Catalog(), args)

			order := r.ResolveModuleOrder(args...)
			if f == config.FormatText {
				writeLines(s.app.stdout, order)
				return nil
			}
			return writeStructured(s.app.stdout, moduleOrder{Modules: order}, f)
		}),
	}
	resolveCmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")

	modulesCmd.AddCommand(listCmd, resolveCmd)
	return modulesCmd
}

func listModules(s *session, c *catalog.Catalog, format config.OutputFormat) error {
	views := make([]moduleView, 0, len(c.ModuleNames()))
	for _, name := range c.ModuleNames() {
		m, _ := c.Module(name)
		v := moduleView{Name: m.Name, PublicName: m.PublicName, LicenseInfo: m.LicenseInfo, Requires: m.RequireModules}
		if m.HasStyles() {
			v.LessRoot = m.StyleInfo.LessRoot
			v.Themes = m.StyleInfo.ThemeNames()
		}
		views = append(views, v)
	}

	if format != config.FormatText {
		return writeStructured(s.app.stdout, moduleList{Modules: views}, format)
	}

	w := s.app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Modules"))
	for _, v := range views {
		fmt.Fprintf(w, "\n%s %s\n", NameStyle.Render(v.Name), SubtitleStyle.Render(v.PublicName))
		fmt.Fprintf(w, "  license:  %s\n", v.LicenseInfo)
		fmt.Fprintf(w, "  requires: %s\n", orNone(strings.Join(v.Requires, ", ")))
		if v.LessRoot == "" {
			fmt.Fprintf(w, "  styles:   %s\n", SubtitleStyle.Render("(none)"))
			continue
		}
		fmt.Fprintf(w, "  styles:   %s\n", SuccessStyle.Render(v.LessRoot))
		fmt.Fprintf(w, "  themes:   %s\n", orNone(strings.Join(v.Themes, ", ")))
	}
	return nil
}

func warnUnknownModules(s *session, c *catalog.Catalog, names []string) {
	for _, name := range names {
		if _, ok := c.Module(name); !ok {
			s.log().Warn("unknown module skipped", "module", name)
		}
	}
}
