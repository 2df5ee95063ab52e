// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stylereg/stylereg/pkg/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"text", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.in, err)
				}
				var formatErr *InvalidFormatError
				if !errors.As(err, &formatErr) || formatErr.Value != tt.in {
					t.Errorf("error = %#v, want InvalidFormatError{%q}", err, tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	if f, ok := FormatFromPath("out/manifest.yaml"); !ok || f != FormatYAML {
		t.Errorf("FormatFromPath(yaml) = %q, %v", f, ok)
	}
	if _, ok := FormatFromPath("manifest.txt"); ok {
		t.Error("FormatFromPath(txt) should fail")
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	plan, err := defaultPlanner().Plan(catalog.DistributionExporter)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Encode(&buf, plan, format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !strings.Contains(buf.String(), "dx.exporter.generic.dark.css") {
				t.Errorf("encoded manifest lacks bundle name:\n%s", buf.String())
			}

			got, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(plan, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_InvalidFormat(t *testing.T) {
	t.Parallel()

	err := Encode(&bytes.Buffer{}, &Plan{}, "xml")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Encode() error = %v, want ErrInvalidFormat", err)
	}
}

func TestWriteManifest(t *testing.T) {
	t.Parallel()

	plan, err := defaultPlanner().Plan(catalog.DistributionSPA)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "out", "spa.json")

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Go(func() {
			errs[i] = WriteManifest(path, plan, FormatJSON)
		})
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("WriteManifest() #%d error = %v", i, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer f.Close()

	got, err := Decode(f, FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(plan, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".spa.json.") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestWriteManifest_InvalidFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.xml")
	if err := WriteManifest(path, &Plan{}, "xml"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("WriteManifest() error = %v, want ErrInvalidFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("manifest should not exist, stat err = %v", err)
	}
}
