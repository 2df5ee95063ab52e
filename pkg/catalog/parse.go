// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stylereg/stylereg/pkg/cueutil"

	"github.com/tidwall/jsonc"
)

//go:embed catalog_schema.cue
var catalogSchema []byte

// Parse decodes a catalog file and builds the catalog. The format is chosen
// by the extension of filename: ".cue" files are validated against the
// embedded #Catalog schema; ".json" and ".jsonc" files may contain comments
// and trailing commas, and unknown fields are rejected.
func Parse(data []byte, filename string) (*Catalog, error) {
	var def *Definition

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".cue":
		result, err := cueutil.ParseAndDecode[Definition](catalogSchema, data, "#Catalog", cueutil.WithFilename(filename))
		if err != nil {
			return nil, err
		}
		def = result.Value
	case ".json", ".jsonc":
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		def = &Definition{}
		if err := dec.Decode(def); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q (use .cue, .json or .jsonc)", filename, ErrUnsupportedFormat, ext)
	}

	c, err := New(*def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data, path)
}

// MarshalJSON encodes the catalog in the ".json" catalog format.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Definition())
}
