// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/stylereg/stylereg/internal/config"

	"github.com/spf13/cobra"
)

type (
	themeView struct {
		Name         string   `json:"name" yaml:"name" toml:"name"`
		PublicName   string   `json:"public_name,omitempty" yaml:"public_name,omitempty" toml:"public_name,omitempty"`
		ColorSchemes []string `json:"color_schemes" yaml:"color_schemes" toml:"color_schemes"`
	}

	themeList struct {
		Themes []themeView `json:"themes" yaml:"themes" toml:"themes"`
	}
)

func newThemesCommand(s *session) *cobra.Command {
	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect the themes the catalog publishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List known themes and their color schemes",
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

			known := r.Catalog().KnownThemes()
			views := make([]themeView, 0, len(known))
			for _, t := range known {
				views = append(views, themeView{Name: t.Name, PublicName: t.PublicName, ColorSchemes: t.ColorSchemeNames})
			}
			if f != config.FormatText {
				return writeStructured(s.app.stdout, themeList{Themes: views}, f)
			}

			w := s.app.stdout
			fmt.Fprintln(w, TitleStyle.Render("Themes"))
			for _, v := range views {
				fmt.Fprintf(w, "  %-10s %s\n", NameStyle.Render(v.Name), strings.Join(v.ColorSchemes, ", "))
			}
			return nil
		}),
	}
	listCmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")

	themesCmd.AddCommand(listCmd)
	return themesCmd
}
