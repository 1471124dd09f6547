package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	erperrors "github.com/IES-git/integratedentrysystems-erp-sub001/pkg/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseManifestValid(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
version: "1.0"
name: Q3 renovation bids
documents:
  - id: doc-001
    source_file: kitchen-remodel.pdf
  - source_file: bathroom-tile.xlsx
    notes: vendor quote attached
settings:
  max_visible: 6
`)

	m, err := ParseManifest(path)
	require.NoError(t, err)
	require.Equal(t, "Q3 renovation bids", m.Name)
	require.Len(t, m.Documents, 2)
	require.Equal(t, "doc-001", m.Documents[0].ID)
	require.NotEmpty(t, m.Documents[1].ID, "unnamed documents should receive a generated id")
	require.Equal(t, 6, m.Settings.MaxVisible)
}

func TestParseManifestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest(filepath.Join(t.TempDir(), "nope.yaml"))

	var parseErr *erperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseManifestMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "version: [unclosed")

	_, err := ParseManifest(path)

	var parseErr *erperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), "batch.yaml")
}

func TestParseManifestValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		fragment string
	}{
		{
			name: "missing version",
			content: `
name: bids
documents:
  - source_file: a.pdf
`,
			fragment: "Version",
		},
		{
			name: "no documents",
			content: `
version: "1.0"
name: bids
documents: []
`,
			fragment: "Documents",
		},
		{
			name: "blank source file",
			content: `
version: "1.0"
name: bids
documents:
  - source_file: ""
`,
			fragment: "SourceFile",
		},
		{
			name: "illegal document id",
			content: `
version: "1.0"
name: bids
documents:
  - id: "not ok"
    source_file: a.pdf
`,
			fragment: "ID",
		},
		{
			name: "max_visible out of range",
			content: `
version: "1.0"
name: bids
documents:
  - source_file: a.pdf
settings:
  max_visible: 100
`,
			fragment: "MaxVisible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseManifest(writeManifest(t, tt.content))

			var validationErr *erperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, err.Error(), tt.fragment)
		})
	}
}

func TestParseManifestDuplicateIDs(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
version: "1.0"
name: bids
documents:
  - id: doc-001
    source_file: a.pdf
  - id: doc-001
    source_file: b.pdf
`)

	_, err := ParseManifest(path)

	var validationErr *erperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "documents[1].id", validationErr.Field)
	require.Contains(t, validationErr.Message, "doc-001")
}

func TestManifestEstimatesPreserveOrder(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Version: "1.0",
		Name:    "bids",
		Documents: []Document{
			{ID: "a", SourceFile: "first.pdf"},
			{ID: "b", SourceFile: "second.pdf", Notes: "rush"},
		},
	}

	estimates := m.Estimates()
	require.Len(t, estimates, 2)
	require.Equal(t, "first.pdf", estimates[0].DisplayName())
	require.Equal(t, "second.pdf", estimates[1].DisplayName())
	require.Equal(t, "rush", estimates[1].Notes)
	require.False(t, estimates[0].CreatedAt.IsZero())
}
