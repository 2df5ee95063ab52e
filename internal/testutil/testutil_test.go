// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMustSetenv_RestoresOnCleanup(t *testing.T) {
	const key = "STYLEREG_TESTUTIL_SETENV"
	_ = os.Unsetenv(key)

	t.Run("inner", func(t *testing.T) {
		MustSetenv(t, key, "value")
		if got := os.Getenv(key); got != "value" {
			t.Errorf("Getenv = %q, want %q", got, "value")
		}
	})

	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after the subtest")
	}
}

func TestMustUnsetenv_RestoresOnCleanup(t *testing.T) {
	const key = "STYLEREG_TESTUTIL_UNSETENV"
	MustSetenv(t, key, "kept")

	t.Run("inner", func(t *testing.T) {
		MustUnsetenv(t, key)
		if _, ok := os.LookupEnv(key); ok {
			t.Error("variable should be unset")
		}
	})

	if got := os.Getenv(key); got != "kept" {
		t.Errorf("Getenv = %q, want %q", got, "kept")
	}
}

func TestSetHomeDir(t *testing.T) {
	dir := t.TempDir()
	SetHomeDir(t, dir)

	key := "HOME"
	if runtime.GOOS == "windows" {
		key = "USERPROFILE"
	}
	if got := os.Getenv(key); got != dir {
		t.Errorf("%s = %q, want %q", key, got, dir)
	}
}

func TestMustChdir(t *testing.T) {
	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	t.Run("inner", func(t *testing.T) {
		MustChdir(t, dir)
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		resolved, _ := filepath.EvalSymlinks(dir)
		if wd != dir && wd != resolved {
			t.Errorf("Getwd = %q, want %q", wd, dir)
		}
	})

	if wd, _ := os.Getwd(); wd != original {
		t.Errorf("Getwd after cleanup = %q, want %q", wd, original)
	}
}

func TestWriteSourceTree(t *testing.T) {
	t.Parallel()

	root := WriteSourceTree(t, "widgets/base/a.less", "widgets/generic/list.generic.less")

	for _, rel := range []string{"widgets/base/a.less", "widgets/generic/list.generic.less"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("Stat(%s) error = %v", rel, err)
			continue
		}
		if !info.Mode().IsRegular() {
			t.Errorf("%s is not a regular file", rel)
		}
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	full := WriteFile(t, root, "a/b/config.cue", "format: \"json\"\n")

	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "format: \"json\"\n" {
		t.Errorf("content = %q", data)
	}
}
