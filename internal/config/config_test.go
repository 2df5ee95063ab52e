// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stylereg/stylereg/internal/issue"
	"github.com/stylereg/stylereg/internal/testutil"

	"github.com/google/go-cmp/cmp"
)

// isolate points the config directory and working directory at empty temp
// dirs and clears STYLEREG_* overrides, so only what the test writes is loaded.
func isolate(t *testing.T) (cfgDir, baseDir string) {
	t.Helper()

	cfgDir = t.TempDir()
	baseDir = t.TempDir()
	for _, key := range []string{"STYLEREG_SOURCE_ROOT", "STYLEREG_CATALOG", "STYLEREG_DISTRIBUTION", "STYLEREG_FORMAT", "STYLEREG_UI_VERBOSE", "STYLEREG_UI_COLOR_SCHEME"} {
		testutil.MustUnsetenv(t, key)
	}
	return cfgDir, baseDir
}

func TestLoad_Defaults(t *testing.T) {
	cfgDir, baseDir := isolate(t)

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ConfigDirFile(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	path := testutil.WriteFile(t, cfgDir, "config.cue", `
source_root: "./styles"
distribution: "spa"
format: "yaml"
ui: verbose: true
`)

	cfg, gotPath, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}

	want := DefaultConfig()
	want.SourceRoot = "./styles"
	want.Distribution = "spa"
	want.Format = FormatYAML
	want.UI.Verbose = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BaseDirFallback(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	testutil.WriteFile(t, baseDir, "config.cue", `catalog: "catalog.jsonc"`)

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if filepath.Dir(path) != baseDir {
		t.Errorf("path = %q, want file in %q", path, baseDir)
	}
	if cfg.Catalog != "catalog.jsonc" {
		t.Errorf("Catalog = %q, want %q", cfg.Catalog, "catalog.jsonc")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	testutil.WriteFile(t, cfgDir, "config.cue", `format: "json"`+"\n"+`source_root: "file-root"`)
	testutil.MustSetenv(t, "STYLEREG_SOURCE_ROOT", "/env/root")
	testutil.MustSetenv(t, "STYLEREG_UI_VERBOSE", "true")

	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SourceRoot != "/env/root" {
		t.Errorf("SourceRoot = %q, want env value", cfg.SourceRoot)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want file value", cfg.Format)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose should come from STYLEREG_UI_VERBOSE")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantInError string
	}{
		{"syntax error", `format: "json`, "config.cue"},
		{"unknown field", `colour: "red"`, "colour"},
		{"schema violation", `format: "xml"`, "format"},
		{"empty source root", `source_root: ""`, "source_root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgDir, baseDir := isolate(t)
			testutil.WriteFile(t, cfgDir, "config.cue", tt.content)

			_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
			if err == nil {
				t.Fatal("Load() should fail")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T: %v", err, err)
			}
			if ae.Issue != issue.ConfigLoadFailedId {
				t.Errorf("Issue = %d, want ConfigLoadFailedId", ae.Issue)
			}
			if !strings.Contains(err.Error(), tt.wantInError) {
				t.Errorf("error %q should mention %q", err, tt.wantInError)
			}
		})
	}
}

func TestLoad_EnvValidation(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	testutil.MustSetenv(t, "STYLEREG_FORMAT", "xml")

	_, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: cfgDir, BaseDir: baseDir})
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Fatalf("Load() error = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	testutil.WriteFile(t, cfgDir, "config.cue", `format: "yaml"`)
	explicit := testutil.WriteFile(t, t.TempDir(), "custom.cue", `format: "toml"`)

	cfg, path, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: explicit, ConfigDirPath: cfgDir, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != explicit || cfg.Format != FormatTOML {
		t.Errorf("loaded %q with format %q, want %q with toml", path, cfg.Format, explicit)
	}

	_, _, err = NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: filepath.Join(cfgDir, "missing.cue")})
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || !ae.HasSuggestions() {
		t.Fatalf("missing explicit file should yield an actionable error, got %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := NewProvider().Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestConfigDir(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if runtime.GOOS == "linux" {
		testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/xdg")
		dir, err := ConfigDir()
		if err != nil {
			t.Fatal(err)
		}
		if dir != filepath.Join("/tmp/xdg", AppName) {
			t.Errorf("ConfigDir() = %q", dir)
		}
	}

	SetConfigDirOverride("/override")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/override" {
		t.Errorf("ConfigDir() with override = %q", dir)
	}
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/override", "config.cue") {
		t.Errorf("DefaultConfigPath() = %q", path)
	}
}

func TestCreateDefaultConfig_RoundTrip(t *testing.T) {
	cfgDir, baseDir := isolate(t)
	path := filepath.Join(cfgDir, "nested", "config.cue")

	created, err := CreateDefaultConfig(path)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %v, %v", created, err)
	}
	created, err = CreateDefaultConfig(path)
	if err != nil || created {
		t.Fatalf("second CreateDefaultConfig() = %v, %v, want no write", created, err)
	}

	cfg, _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path, BaseDir: baseDir})
	if err != nil {
		t.Fatalf("generated config should load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCUE(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Catalog = "catalog.cue"
	out := GenerateCUE(cfg)

	for _, want := range []string{`source_root: "."`, `catalog: "catalog.cue"`, `format: "text"`, "verbose: false", `color_scheme: "auto"`} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(GenerateCUE(DefaultConfig()), "catalog:") {
		t.Error("empty catalog should be omitted")
	}
}
