// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/stylereg/stylereg/internal/config"
	"github.com/stylereg/stylereg/internal/issue"
	"github.com/stylereg/stylereg/pkg/resolver"

	"github.com/spf13/cobra"
)

func newFilesCommand(s *session) *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "List the LESS files of modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	filesCmd.AddCommand(newFilesCommonCommand(s), newFilesThemeCommand(s))
	return filesCmd
}

func newFilesCommonCommand(s *session) *cobra.Command {
	var (
		noDeps bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "common <module>...",
		Short: "List the theme-independent files of modules",
		Long: `List the common LESS files of the named modules and, unless --no-deps is
given, of everything they require, in dependency order. Modules without
styles contribute nothing.`,
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

			modules := args
			if !noDeps {
				modules = r.ResolveModuleOrder(args...)
			}
			files := r.CommonFiles(modules)

			if f == config.FormatText {
				writeLines(s.app.stdout, files)
				return nil
			}
			return writeStructured(s.app.stdout, fileList{Modules: modules, Files: files}, f)
		}),
	}
	cmd.Flags().BoolVar(&noDeps, "no-deps", false, "use the named modules as given, without their requirements")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")
	return cmd
}

func newFilesThemeCommand(s *session) *cobra.Command {
	var (
		theme       string
		colorScheme string
		sizeScheme  string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "theme <module>",
		Short: "List the files that compile a module for one theme variant",
		Long: `List, in order: the color scheme file and its icons, the size scheme file
when --size-scheme is given, the module's base files that exist below the
source root, and the module's files for the theme.

Exits with status 2 when the module is unknown, has no styles, or has no
variant for the theme.`,
		Args: cobra.ExactArgs(1),
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			r, err := s.loadResolver(cmd.Context())
			if err != nil {
				return err
			}
			f, err := s.format(cmd.Context(), format)
			if err != nil {
				return err
			}

			module := args[0]
			if kt, ok := r.Catalog().KnownTheme(theme); ok && !kt.SupportsColorScheme(colorScheme) {
				s.log().Warn("color scheme not declared for theme", "theme", theme, "color_scheme", colorScheme)
			}

			files, err := r.ThemeFiles(module, theme, colorScheme, sizeScheme)
			if err != nil {
				return lookupMissError(err)
			}

			if f == config.FormatText {
				writeLines(s.app.stdout, files)
				return nil
			}
			return writeStructured(s.app.stdout, fileList{Modules: []string{module}, Files: files}, f)
		}),
	}
	cmd.Flags().StringVar(&theme, "theme", "", "theme name (e.g. generic)")
	cmd.Flags().StringVar(&colorScheme, "color-scheme", "", "color scheme name (e.g. light)")
	cmd.Flags().StringVar(&sizeScheme, "size-scheme", "", "size scheme name (e.g. compact)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")
	_ = cmd.MarkFlagRequired("theme")
	_ = cmd.MarkFlagRequired("color-scheme")
	return cmd
}

// lookupMissError turns a resolver lookup miss into an actionable error
// that exits with ExitLookupMiss.
func lookupMissError(err error) error {
	var lookupErr *resolver.ThemeLookupError
	if !errors.As(err, &lookupErr) {
		return err
	}

	ctx := issue.NewErrorContext().
		WithOperation("list theme files").
		WithResource(lookupErr.Module).
		Wrap(err)
	if errors.Is(err, resolver.ErrModuleNotFound) {
		ctx.WithIssue(issue.ModuleNotFoundId)
	} else {
		ctx.WithIssue(issue.ThemeNotFoundId)
	}
	return &ExitError{Code: ExitLookupMiss, Err: ctx.BuildError()}
}
