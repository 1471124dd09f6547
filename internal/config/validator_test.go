package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	erperrors "github.com/IES-git/integratedentrysystems-erp-sub001/pkg/errors"
)

func validManifest() *Manifest {
	return &Manifest{
		Version: "1.0",
		Name:    "bids",
		Documents: []Document{
			{ID: "doc-001", SourceFile: "a.pdf"},
			{ID: "doc-002", SourceFile: "b.pdf"},
		},
	}
}

func TestValidateManifestAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateManifest(validManifest()))
}

func TestValidateManifestRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidateManifest(nil)

	var validationErr *erperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "manifest", validationErr.Field)
}

func TestValidateManifestSemverVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"two part version", "1.0", false},
		{"three part version", "1.2.3", false},
		{"prerelease", "1.0.0-beta.1", false},
		{"garbage", "latest", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := validManifest()
			m.Version = tt.version

			err := ValidateManifest(m)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateManifestDocumentIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"kebab id", "doc-001", false},
		{"ulid", "01J5XPKJ3Q2W4R8T9V0ABCDEFG", false},
		{"underscores", "doc_one", false},
		{"spaces rejected", "doc 1", true},
		{"slashes rejected", "docs/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := validManifest()
			m.Documents[0].ID = tt.id

			err := ValidateManifest(m)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
