// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Theme: {
	name:           string & !=""
	color_schemes?: [...string]
	compact?:       bool
}
`

type testTheme struct {
	Name         string   `json:"name"`
	ColorSchemes []string `json:"color_schemes,omitempty"`
	Compact      bool     `json:"compact,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name: "generic"
color_schemes: ["light", "dark"]
`)
		result, err := ParseAndDecode[testTheme]([]byte(testSchema), data, "#Theme")
		if err != nil {
			t.Fatalf("ParseAndDecode failed: %v", err)
		}
		if result.Value.Name != "generic" {
			t.Errorf("name = %q, want %q", result.Value.Name, "generic")
		}
		if len(result.Value.ColorSchemes) != 2 || result.Value.ColorSchemes[1] != "dark" {
			t.Errorf("color_schemes = %v, want [light dark]", result.Value.ColorSchemes)
		}
		if result.Value.Compact {
			t.Error("compact should default to false")
		}
	})

	t.Run("constraint violation reports path", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testTheme]([]byte(testSchema), []byte(`name: ""`), "#Theme", WithFilename("theme.cue"))
		if err == nil {
			t.Fatal("expected error for empty name")
		}
		if !strings.Contains(err.Error(), "theme.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
		if !strings.Contains(err.Error(), "name") {
			t.Errorf("error should name the field, got: %v", err)
		}
	})

	t.Run("unknown field rejected by closed definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testTheme]([]byte(testSchema), []byte(`name: "x", shade: 3`), "#Theme")
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testTheme]([]byte(testSchema), []byte(`name: "x`), "#Theme")
		if err == nil {
			t.Fatal("expected syntax error")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testTheme]([]byte(testSchema), []byte(`name: "generic"`), "#Theme", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Fatalf("expected size error, got %v", err)
		}
	})

	t.Run("missing schema definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testTheme]([]byte(testSchema), []byte(`name: "x"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "#Missing") {
			t.Fatalf("expected missing definition error, got %v", err)
		}
	})
}
