// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/stylereg/stylereg/internal/config"

	"github.com/spf13/cobra"
)

type (
	warningView struct {
		Subject string `json:"subject" yaml:"subject" toml:"subject"`
		Message string `json:"message" yaml:"message" toml:"message"`
	}

	checkReport struct {
		Warnings []warningView `json:"warnings" yaml:"warnings" toml:"warnings"`
	}
)

func newCatalogCommand(s *session) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Check and export the module catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	catalogCmd.AddCommand(newCatalogCheckCommand(s), newCatalogExportCommand(s))
	return catalogCmd
}

func newCatalogCheckCommand(s *session) *cobra.Command {
	var (
		strict bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report dangling requirements, cycles and unknown distribution entries",
		Long: `Report catalog entries that resolve silently but are probably mistakes:
requirements on unknown modules, requirement cycles, and distributions that
name unknown modules or themes. With --strict any warning fails the command.`,
		Args: cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			r, err := s.loadResolver(cmd.Context())
			if err != nil {
				return err
			}
			f, err := s.format(cmd.Context(), format)
			if err != nil {
				return err
			}

			warnings := r.Catalog().Check()
			report := checkReport{Warnings: make([]warningView, 0, len(warnings))}
			for _, w := range warnings {
				report.Warnings = append(report.Warnings, warningView{Subject: w.Subject, Message: w.Message})
			}

			if f != config.FormatText {
				if err := writeStructured(s.app.stdout, report, f); err != nil {
					return err
				}
			} else if len(warnings) == 0 {
				fmt.Fprintf(s.app.stdout, "%s catalog is consistent\n", SuccessStyle.Render("✓"))
			} else {
				for _, w := range warnings {
					fmt.Fprintf(s.app.stdout, "%s %s\n", WarningStyle.Render("!"), w)
				}
			}

			if strict && len(warnings) > 0 {
				return &ExitError{Code: ExitFailure, Err: fmt.Errorf("catalog check found %d warning(s)", len(warnings))}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 when there are warnings")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")
	return cmd
}

func newCatalogExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the active catalog in the JSON catalog format",
		Long: `Print the active catalog (the built-in one unless --catalog is set) as
JSON. The output can be edited and loaded back with --catalog.`,
		Args: cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			r, err := s.loadResolver(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(r.Catalog(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			_, err = fmt.Fprintln(s.app.stdout, string(data))
			return err
		}),
	}
}
