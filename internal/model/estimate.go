package model

import "time"

// Estimate represents one source document moving through an intake batch.
// The wizard builds one estimate per uploaded file; the progress tracker
// only ever sees the identifier and the original file name.
type Estimate struct {
	ID         string
	SourceFile string
	Notes      string
	CreatedAt  time.Time
}

// ItemID returns the stable identifier used by list components.
func (e Estimate) ItemID() string {
	return e.ID
}

// DisplayName returns the name shown in progress rows: the original
// source-file name.
func (e Estimate) DisplayName() string {
	return e.SourceFile
}
