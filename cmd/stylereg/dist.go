// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stylereg/stylereg/internal/config"
	"github.com/stylereg/stylereg/internal/issue"
	"github.com/stylereg/stylereg/pkg/bundle"
	"github.com/stylereg/stylereg/pkg/catalog"

	"github.com/spf13/cobra"
)

type (
	distributionView struct {
		Name                   string   `json:"name" yaml:"name" toml:"name"`
		PublicName             string   `json:"public_name,omitempty" yaml:"public_name,omitempty" toml:"public_name,omitempty"`
		LicenseInfo            string   `json:"license_info" yaml:"license_info" toml:"license_info"`
		Modules                []string `json:"modules" yaml:"modules" toml:"modules"`
		SupportedThemes        []string `json:"supported_themes" yaml:"supported_themes" toml:"supported_themes"`
		CommonsInExternalFiles bool     `json:"commons_in_external_files" yaml:"commons_in_external_files" toml:"commons_in_external_files"`
	}

	distributionList struct {
		Distributions []distributionView `json:"distributions" yaml:"distributions" toml:"distributions"`
	}
)

func newDistCommand(s *session) *cobra.Command {
	distCmd := &cobra.Command{
		Use:   "dist",
		Short: "Inspect and plan CSS distributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	distCmd.AddCommand(newDistListCommand(s), newDistPlanCommand(s))
	return distCmd
}

func newDistListCommand(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List distributions",
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

			c := r.Catalog()
			views := make([]distributionView, 0, len(c.DistributionNames()))
			for _, name := range c.DistributionNames() {
				d, _ := c.Distribution(name)
				views = append(views, distributionView{
					Name:                   d.Name,
					PublicName:             d.PublicName,
					LicenseInfo:            d.LicenseInfo,
					Modules:                d.Modules,
					SupportedThemes:        d.SupportedThemes,
					CommonsInExternalFiles: d.CommonsInExternalFiles(),
				})
			}
			if f != config.FormatText {
				return writeStructured(s.app.stdout, distributionList{Distributions: views}, f)
			}

			w := s.app.stdout
			fmt.Fprintln(w, TitleStyle.Render("Distributions"))
			for _, v := range views {
				fmt.Fprintf(w, "\n%s %s\n", NameStyle.Render(catalog.DistributionLabel(v.Name)), SubtitleStyle.Render(v.PublicName))
				fmt.Fprintf(w, "  modules: %s\n", orNone(strings.Join(v.Modules, ", ")))
				fmt.Fprintf(w, "  themes:  %s\n", orNone(strings.Join(v.SupportedThemes, ", ")))
				fmt.Fprintf(w, "  commons: %s\n", commonsLabel(v.CommonsInExternalFiles))
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")
	return cmd
}

func newDistPlanCommand(s *session) *cobra.Command {
	var (
		format    string
		out       string
		showFiles bool
	)

	cmd := &cobra.Command{
		Use:   "plan [distribution]",
		Short: "Plan the bundles of a distribution",
		Long: `Plan every bundle a distribution publishes with the ordered LESS files
each bundle compiles and a digest of that list. Without an argument the
configured distribution is planned; pass "" for the default distribution.

With --out the plan is written as a manifest (json, yaml or toml, taken from
--format or the file extension) instead of printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: s.runE(func(cmd *cobra.Command, args []string) error {
			cfg, err := s.config(cmd.Context())
			if err != nil {
				return err
			}
			name := cfg.Distribution
			if len(args) == 1 {
				name = args[0]
			}

			plan, err := s.plan(cmd.Context(), name)
			if err != nil {
				return err
			}
			if out != "" {
				return writePlanManifest(s, plan, out, format)
			}

			f, err := s.format(cmd.Context(), format)
			if err != nil {
				return err
			}
			if f != config.FormatText {
				mf, err := bundle.ParseFormat(string(f))
				if err != nil {
					return err
				}
				return bundle.Encode(s.app.stdout, plan, mf)
			}
			printPlan(s, plan, showFiles)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format (text, json, yaml, toml)")
	cmd.Flags().StringVar(&out, "out", "", "write the plan as a manifest file")
	cmd.Flags().BoolVar(&showFiles, "files", false, "list the files of each bundle in text output")
	return cmd
}

// plan loads the resolver and plans the named distribution.
func (s *session) plan(ctx context.Context, name string) (*bundle.Plan, error) {
	planner, err := s.planner(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := planner.Plan(name)
	if errors.Is(err, bundle.ErrDistributionNotFound) {
		return nil, issue.NewErrorContext().
			WithOperation("plan distribution").
			WithResource(catalog.DistributionLabel(name)).
			WithIssue(issue.DistributionNotFoundId).
			Wrap(err).
			BuildError()
	}
	return plan, err
}

func writePlanManifest(s *session, plan *bundle.Plan, path, format string) error {
	var (
		mf  bundle.Format
		err error
	)
	switch {
	case format != "":
		mf, err = bundle.ParseFormat(format)
	default:
		var ok bool
		if mf, ok = bundle.FormatFromPath(path); !ok {
			mf = bundle.FormatJSON
		}
	}
	if err == nil {
		err = bundle.WriteManifest(path, plan, mf)
	}
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("write bundle manifest").
			WithResource(path).
			WithIssue(issue.ManifestWriteFailedId).
			Wrap(err).
			BuildError()
	}

	s.log().Debug("manifest written", "path", path, "format", mf, "bundles", len(plan.Bundles))
	fmt.Fprintf(s.app.stdout, "%s Wrote %d bundles to %s\n", SuccessStyle.Render("✓"), len(plan.Bundles), path)
	return nil
}

func printPlan(s *session, plan *bundle.Plan, showFiles bool) {
	w := s.app.stdout
	fmt.Fprintf(w, "%s %s %s\n", TitleStyle.Render("Distribution"), NameStyle.Render(catalog.DistributionLabel(plan.Distribution)), SubtitleStyle.Render(plan.PublicName))
	fmt.Fprintf(w, "  modules: %s\n", orNone(strings.Join(plan.Modules, ", ")))
	fmt.Fprintf(w, "  commons: %s\n", commonsLabel(plan.CommonsInExternalFiles))
	fmt.Fprintf(w, "  icons:   %s\n\n", orNone(plan.IconsPath))

	for _, b := range plan.Bundles {
		fmt.Fprintf(w, "%s  %s  %d files  %s\n", NameStyle.Render(b.Name), b.Kind, len(b.Files), SubtitleStyle.Render(b.Digest[:12]))
		if showFiles {
			for _, f := range b.Files {
				fmt.Fprintf(w, "    %s\n", f)
			}
		}
	}
}

func commonsLabel(external bool) string {
	if external {
		return "separate bundle"
	}
	return "inlined into theme bundles"
}
