package config

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/IES-git/integratedentrysystems-erp-sub001/internal/model"
)

// Manifest represents one batch of source documents queued for estimate
// review.
type Manifest struct {
	Version   string     `yaml:"version" validate:"required,semver"`
	Name      string     `yaml:"name" validate:"required,min=1,max=100"`
	Documents []Document `yaml:"documents" validate:"required,min=1,dive"`
	Settings  Settings   `yaml:"settings,omitempty"`
}

// Document is a single uploaded file in the batch.
type Document struct {
	ID         string `yaml:"id,omitempty" validate:"omitempty,doc_id"`
	SourceFile string `yaml:"source_file" validate:"required,min=1,max=255"`
	Notes      string `yaml:"notes,omitempty"`
}

// Settings holds display parameters for the wizard.
type Settings struct {
	MaxVisible int `yaml:"max_visible,omitempty" validate:"omitempty,min=1,max=64"`
	Width      int `yaml:"width,omitempty" validate:"omitempty,min=20,max=200"`
}

// assignIDs fills in a ULID for every document the manifest left unnamed.
func (m *Manifest) assignIDs() {
	for i := range m.Documents {
		if m.Documents[i].ID == "" {
			m.Documents[i].ID = ulid.Make().String()
		}
	}
}

// Estimates materializes the batch as domain entities, in manifest order.
func (m *Manifest) Estimates() []model.Estimate {
	now := time.Now()
	estimates := make([]model.Estimate, 0, len(m.Documents))
	for _, doc := range m.Documents {
		estimates = append(estimates, model.Estimate{
			ID:         doc.ID,
			SourceFile: doc.SourceFile,
			Notes:      doc.Notes,
			CreatedAt:  now,
		})
	}
	return estimates
}
