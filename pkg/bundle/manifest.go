// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrInvalidFormat is returned for manifest formats other than json, yaml and toml.
var ErrInvalidFormat = errors.New("invalid manifest format")

type (
	// Format is a manifest encoding.
	Format string

	// InvalidFormatError reports an unsupported manifest format.
	InvalidFormatError struct {
		Value string
	}
)

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid manifest format %q (expected json, yaml or toml)", e.Value)
}

func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// ParseFormat parses a manifest format name. "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", &InvalidFormatError{Value: s}
	}
}

// FormatFromPath infers a manifest format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

// Encode writes plan to w in the given format.
func Encode(w io.Writer, plan *Plan, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(plan)
	default:
		return &InvalidFormatError{Value: string(format)}
	}
}

// Decode reads a manifest previously written by Encode.
func Decode(r io.Reader, format Format) (*Plan, error) {
	var plan Plan
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&plan)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&plan)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&plan)
	default:
		return nil, &InvalidFormatError{Value: string(format)}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s manifest: %w", format, err)
	}
	return &plan, nil
}

// WriteManifest encodes plan to path. Concurrent writers are serialized by
// an advisory lock on "{path}.lock", and the file is replaced atomically so
// readers never observe a partial manifest.
func WriteManifest(path string, plan *Plan, format Format) (err error) {
	if _, err = ParseFormat(string(format)); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err = lock.Lock(); err != nil {
		return fmt.Errorf("lock manifest: %w", err)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("unlock manifest: %w", unlockErr)
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = Encode(tmp, plan, format); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp manifest: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod manifest: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
