// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/stylereg/stylereg/internal/config"
	"github.com/stylereg/stylereg/internal/issue"
	"github.com/stylereg/stylereg/pkg/bundle"
	"github.com/stylereg/stylereg/pkg/catalog"
	"github.com/stylereg/stylereg/pkg/resolver"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and output streams. Command handlers receive an
	// App through the per-invocation session.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// globalFlags holds the persistent root flags.
	globalFlags struct {
		verbose     bool
		configPath  string
		sourceRoot  string
		catalogPath string
	}

	// session is the state of one CLI invocation. Config and resolver are
	// loaded on first use so that config commands work without a catalog.
	session struct {
		app   *App
		flags globalFlags

		cfg      *config.Config
		cfgPath  string
		resolver *resolver.Resolver
		logger   *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{Config: deps.Config, stdout: deps.Stdout, stderr: deps.Stderr}
}

// config loads the configuration once and applies flag overrides on top.
func (s *session) config(ctx context.Context) (*config.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}

	cfg, path, err := s.app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: s.flags.configPath})
	if err != nil {
		return nil, err
	}
	if s.flags.sourceRoot != "" {
		cfg.SourceRoot = s.flags.sourceRoot
	}
	if s.flags.catalogPath != "" {
		cfg.Catalog = s.flags.catalogPath
	}
	if s.flags.verbose {
		cfg.UI.Verbose = true
	}

	s.cfg, s.cfgPath = cfg, path
	s.logger = newLogger(s.app.stderr, cfg.UI.Verbose)
	s.logger.Debug("configuration loaded", "file", path, "source_root", cfg.SourceRoot, "catalog", cfg.Catalog)
	return cfg, nil
}

// verbose reports whether verbose output is on, before or after config load.
func (s *session) verbose() bool {
	if s.cfg != nil {
		return s.cfg.UI.Verbose
	}
	return s.flags.verbose
}

// log returns the session logger, falling back to flag verbosity before
// the configuration is loaded.
func (s *session) log() *log.Logger {
	if s.logger == nil {
		s.logger = newLogger(s.app.stderr, s.flags.verbose)
	}
	return s.logger
}

// loadResolver loads the configured catalog and builds a resolver whose
// existence checks look below the source root.
func (s *session) loadResolver(ctx context.Context) (*resolver.Resolver, error) {
	if s.resolver != nil {
		return s.resolver, nil
	}
	cfg, err := s.config(ctx)
	if err != nil {
		return nil, err
	}

	c, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	if info, statErr := os.Stat(cfg.SourceRoot); statErr != nil || !info.IsDir() {
		if statErr == nil {
			statErr = fmt.Errorf("%s is not a directory", cfg.SourceRoot)
		}
		return nil, issue.NewErrorContext().
			WithOperation("open source root").
			WithResource(cfg.SourceRoot).
			WithIssue(issue.SourceRootNotFoundId).
			Wrap(statErr).
			BuildError()
	}

	s.log().Debug("catalog ready", "modules", len(c.ModuleNames()), "themes", len(c.KnownThemes()), "distributions", len(c.DistributionNames()))
	s.resolver = resolver.New(c, resolver.DirExists(cfg.SourceRoot))
	return s.resolver, nil
}

func (s *session) planner(ctx context.Context) (*bundle.Planner, error) {
	r, err := s.loadResolver(ctx)
	if err != nil {
		return nil, err
	}
	return bundle.NewPlanner(r, bundle.WithLogger(s.log()), bundle.WithSourceRoot(s.cfg.SourceRoot)), nil
}

// format returns the --format flag value, or the configured default.
func (s *session) format(ctx context.Context, flag string) (config.OutputFormat, error) {
	if flag != "" {
		f := config.OutputFormat(flag)
		if valid, errs := f.IsValid(); !valid {
			return "", errs[0]
		}
		return f, nil
	}
	cfg, err := s.config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.Format, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(path)
	if err == nil {
		return c, nil
	}

	ctx := issue.NewErrorContext().WithOperation("load catalog").WithResource(path).Wrap(err)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ctx.WithIssue(issue.CatalogNotFoundId).
			WithSuggestion("Unset --catalog to use the built-in catalog")
	case errors.Is(err, catalog.ErrInvalidCatalog):
		ctx.WithIssue(issue.CatalogInvalidId)
	default:
		ctx.WithIssue(issue.CatalogParseErrorId)
	}
	return nil, ctx.BuildError()
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "stylereg"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// renderFailure prints suggestions, the error chain in verbose mode, and the
// issue guidance of an ActionableError. The one-line message itself is
// printed by the command runner.
func (s *session) renderFailure(err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	w := s.app.stderr

	for _, sug := range ae.Suggestions {
		fmt.Fprintln(w, hintStyle.Render("  • "+sug))
	}
	if s.verbose() {
		depth := 1
		for cause := ae.Cause; cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("  %d. %s", depth, cause)))
			depth++
		}
	}

	if ae.Issue == 0 {
		return
	}
	entry := issue.Get(ae.Issue)
	if entry == nil {
		return
	}
	style := string(config.ColorSchemeAuto)
	if s.cfg != nil {
		style = string(s.cfg.UI.ColorScheme)
	}
	rendered, renderErr := entry.Render(style)
	if renderErr != nil {
		s.log().Warn("failed to render issue guidance", "issue", ae.Issue, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
