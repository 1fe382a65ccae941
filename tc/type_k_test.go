//go:build !notypek

package tc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeK_tables(t *testing.T) {
	checkTable(t, "direct", typeKDirect)
	checkTable(t, "inverse", typeKInverse)
}

func TestTypeK_reference(t *testing.T) {
	var k TypeK

	// NIST ITS-90 type K table values
	points := map[float32]float32{
		-200: -5.891,
		-100: -3.554,
		0:    0,
		100:  4.096,
		250:  10.153,
		500:  20.644,
		1000: 41.276,
		1372: 54.886,
	}
	for c, mV := range points {
		assert.InDeltaf(t, mV, k.AbsVoltage(c), 0.002, "AbsVoltage(%v)", c)
		assert.InDeltaf(t, c, k.AbsTemperature(mV), 0.1, "AbsTemperature(%v)", mV)
	}

	assert.Equal(t, float32(0), k.AbsTemperature(0))
	assert.True(t, k.Compensated())
}

func TestTypeK_roundTrip(t *testing.T) {
	roundTrip(t, TypeK{}, -200, 1372, 0.5, 0.1)
}

func TestTypeK_envelope(t *testing.T) {
	var k TypeK

	assert.Equal(t, float32(-5.891), k.MinVoltage())
	assert.Equal(t, float32(54.886), k.MaxVoltage())
	assert.Equal(t, float32(-270), k.MinTemperature())
	assert.Equal(t, float32(1372), k.MaxTemperature())
}

func TestSensor_coldJunctionTypeK(t *testing.T) {
	s := NewSensor(TypeK{})

	for _, mV := range []float32{-2, 0, 1.5, 10, 30} {
		want := s.TemperatureC(mV+s.VoltageC(25), 0)
		assert.InDeltaf(t, want, s.TemperatureC(mV, 25), 1e-3, "%v mV", mV)
	}

	// thermocouple at ambient reads 0 mV
	assert.InDelta(t, 25, s.TemperatureC(0, 25), 0.1)
	assert.InDelta(t, 77, s.TemperatureF(0, 77), 0.2)
	assert.InDelta(t, 0, s.TemperatureC(0, 0), 1e-3)
}

func TestSensor_typeKOutOfRangeClamps(t *testing.T) {
	s := NewSensor(TypeK{})

	below := s.MinVoltage() - 1
	assert.False(t, s.InRangeVoltage(below))
	// extrapolates the lowest inverse row
	assert.Equal(t, typeKInverse[0].eval(below), s.Model().AbsTemperature(below))

	above := s.MaxVoltage() + 5
	assert.False(t, s.InRangeVoltage(above))
	assert.Equal(t, typeKInverse[2].eval(above), s.Model().AbsTemperature(above))
}

// Below -200 °C the inverse extrapolates its first row.
func TestTypeK_belowInverseTable(t *testing.T) {
	m := TypeK{}
	got := m.AbsTemperature(m.AbsVoltage(m.MinTemperature()))
	assert.Less(t, got, float32(-200))
	assert.Greater(t, got, m.MinTemperature())
}
