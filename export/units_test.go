package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnits(t *testing.T) {
	v, err := ConvertUnits(25.4, "millimeter", "inch")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)

	v, err = ConvertUnits(1, "meter", "kilometer")
	require.NoError(t, err)
	assert.InDelta(t, 0.001, v, 1e-12)

	v, err = ConvertUnits(3, "foot", "inch")
	require.NoError(t, err)
	assert.InDelta(t, 36.0, v, 1e-9)
}

func TestConvertUnitsUnknown(t *testing.T) {
	_, err := ConvertUnits(1, "cubit", "meter")
	assert.Error(t, err)
	_, err = ConvertUnits(1, "meter", "cubit")
	assert.Error(t, err)
}

func TestMMToInch(t *testing.T) {
	assert.InDelta(t, 1.0, mmToInch(25.4), 1e-12)
	// the default 36mm film back
	assert.InDelta(t, 1.4173228346456692, mmToInch(36), 1e-12)
}
