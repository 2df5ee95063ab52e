// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the full command tree for one invocation.
func newRootCommand(app *App) *cobra.Command {
	s := &session{app: app}

	rootCmd := &cobra.Command{
		Use:   "stylereg",
		Short: "Resolve stylesheet file lists for modules, themes and distributions",
		Long: TitleStyle.Render("stylereg") + SubtitleStyle.Render(" - stylesheet registry resolver") + `

stylereg answers the questions a stylesheet build asks a module registry:
which modules a set of modules pulls in, which LESS files make up their
common styles, which files compile a module for a theme, color scheme and
size scheme, and which bundles a distribution publishes.

` + SubtitleStyle.Render("Examples:") + `
  stylereg modules resolve widgets-base          Modules in dependency order
  stylereg files common widgets-base             Common LESS files
  stylereg files theme widgets-base --theme generic --color-scheme light
  stylereg dist plan spa --format json           Bundle plan of a distribution
  stylereg catalog check                         Report catalog problems`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&s.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	flags.StringVar(&s.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/stylereg/config.cue)")
	flags.StringVar(&s.flags.sourceRoot, "source-root", "", "LESS source tree used to check base stylesheets")
	flags.StringVar(&s.flags.catalogPath, "catalog", "", "catalog file (.cue, .json or .jsonc); default is the built-in catalog")

	rootCmd.AddCommand(
		newModulesCommand(s),
		newFilesCommand(s),
		newThemesCommand(s),
		newDistCommand(s),
		newCatalogCommand(s),
		newConfigCommand(s),
	)

	return rootCmd
}

// runE adapts a handler so that failures print their guidance before the
// command runner prints the error itself.
func (s *session) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			s.renderFailure(err)
		}
		return err
	}
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
