package tc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	l, err := NewLinear(40)
	require.NoError(t, err)

	assert.Equal(t, float32(40), l.Slope())
	assert.Equal(t, float32(2), l.AbsTemperature(80))
	assert.Equal(t, float32(80), l.AbsVoltage(2))
	assert.False(t, l.Compensated())

	roundTrip(t, l, l.MinTemperature(), l.MaxTemperature(), 0.5, 1e-3)
}

func TestNewLinear_invalid(t *testing.T) {
	for _, slope := range []float32{0, -5} {
		_, err := NewLinear(slope)
		assert.ErrorIs(t, err, ErrInvalidSlope)
	}
}
