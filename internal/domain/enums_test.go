package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase(" Design ")
	require.NoError(t, err)
	assert.Equal(t, PhaseDesign, p)

	p, err = ParsePhase("PRODUCTION")
	require.NoError(t, err)
	assert.Equal(t, PhaseProduction, p)

	_, err = ParsePhase("review")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phase")
}

func TestPhase_OrderMatchesAllPhases(t *testing.T) {
	for i, p := range AllPhases {
		assert.Equal(t, i, p.Order(), "phase %s", p)
	}
	assert.Equal(t, len(AllPhases), Phase("bogus").Order())
}

func TestPhase_Colors(t *testing.T) {
	assert.Equal(t, "#4A90E2", PhaseDesign.Color())
	assert.Equal(t, "#50C878", PhaseEstimating.Color())
	assert.Equal(t, "#FF6B6B", PhaseProduction.Color())
}

func TestPhase_Title(t *testing.T) {
	assert.Equal(t, "Design Phase", PhaseDesign.Title())
	assert.Equal(t, "Estimating Phase", PhaseEstimating.Title())
	assert.Equal(t, "Production Phase", PhaseProduction.Title())
}
