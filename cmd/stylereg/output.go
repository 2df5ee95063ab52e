// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/stylereg/stylereg/internal/config"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileList is the structured form of a file-list query.
type fileList struct {
	Modules []string `json:"modules" yaml:"modules" toml:"modules"`
	Files   []string `json:"files" yaml:"files" toml:"files"`
}

// writeStructured encodes v for the json, yaml and toml formats. TOML needs
// a table at the top level, so v should be a struct or map.
func writeStructured(w io.Writer, v any, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q is not a structured format", config.ErrInvalidOutputFormat, format)
	}
}

// writeLines prints one item per line for text output.
func writeLines(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}

func orNone(s string) string {
	if s == "" {
		return SubtitleStyle.Render("(none)")
	}
	return s
}
