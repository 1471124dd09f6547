package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateDisplayName(t *testing.T) {
	t.Parallel()

	e := Estimate{ID: "01J5", SourceFile: "kitchen-remodel.pdf"}
	require.Equal(t, "01J5", e.ItemID())
	require.Equal(t, "kitchen-remodel.pdf", e.DisplayName())
}
