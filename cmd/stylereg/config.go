// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/stylereg/stylereg/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCommand(s *session) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stylereg configuration",
		Long: `Manage stylereg configuration.

Configuration is read from the --config file, or from config.cue in:
  - Linux: ~/.config/stylereg/
  - macOS: ~/Library/Application Support/stylereg/
  - Windows: %APPDATA%\stylereg\
  - the working directory

STYLEREG_* environment variables (e.g. STYLEREG_SOURCE_ROOT) override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			cfg, err := s.config(cmd.Context())
			if err != nil {
				return err
			}
			f := cfg.Format
			if format != "" {
				if f, err = s.format(cmd.Context(), format); err != nil {
					return err
				}
			}
			if f != config.FormatText {
				return writeStructured(s.app.stdout, cfg, f)
			}
			showConfig(s, cfg)
			return nil
		}),
	}
	showCmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			path := s.flags.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}

			if force {
				if err := config.Save(config.DefaultConfig(), path); err != nil {
					return err
				}
			} else {
				created, err := config.CreateDefaultConfig(path)
				if err != nil {
					return err
				}
				if !created {
					fmt.Fprintf(s.app.stdout, "%s %s already exists (use --force to overwrite)\n", WarningStyle.Render("!"), path)
					return nil
				}
			}
			fmt.Fprintf(s.app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		}),
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(showCmd, initCmd)
	return cfgCmd
}

func showConfig(s *session, cfg *config.Config) {
	w := s.app.stdout
	keyStyle := NameStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if s.cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), s.cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("source_root"), valueStyle.Render(cfg.SourceRoot))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("catalog"), orNone(cfg.Catalog))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("distribution"), valueStyle.Render(fmt.Sprintf("%q", cfg.Distribution)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("format"), valueStyle.Render(cfg.Format.String()))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
}
