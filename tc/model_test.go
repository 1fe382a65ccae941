package tc

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Kind
		wantErr bool
	}{
		"linear":        {in: "linear", want: KindLinear},
		"upper K":       {in: "K", want: KindK},
		"lower t":       {in: "t", want: KindT},
		"type prefix":   {in: "type J", want: KindJ},
		"type no space": {in: "typeK", want: KindK},
		"pt100":         {in: "Pt100", want: KindPt},
		"pt alias":      {in: "pt", want: KindPt},
		"rtd alias":     {in: " RTD ", want: KindPt},
		"unknown type":  {in: "S", wantErr: true},
		"empty":         {in: "", wantErr: true},
		"garbage":       {in: "thermistor", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			k, err := ParseKind(test.in)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, k)
		})
	}
}

func TestKind_String(t *testing.T) {
	for k := KindLinear; k < kindCount; k++ {
		back, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestLookup(t *testing.T) {
	_, err := Lookup(KindLinear)
	assert.ErrorIs(t, err, ErrInvalidSlope)

	_, err = Lookup(Kind(200))
	assert.ErrorIs(t, err, ErrUnknownKind)

	compiled := Compiled()
	assert.Equal(t, KindLinear, compiled[0])
	for k := KindLinear + 1; k < kindCount; k++ {
		m, err := Lookup(k)
		if !slices.Contains(compiled, k) {
			assert.ErrorIs(t, err, ErrNotCompiled, k.String())
			continue
		}
		require.NoError(t, err, k.String())
		assert.NotNil(t, m)
	}
}

func TestNew(t *testing.T) {
	s, err := New(KindLinear, 40)
	require.NoError(t, err)
	assert.Equal(t, float32(2), s.TemperatureC(80, 0))

	_, err = New(KindLinear, 0)
	assert.ErrorIs(t, err, ErrInvalidSlope)

	_, err = New(KindLinear, float32(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidSlope)
}

// Every compiled model must stay finite for inputs well past its envelope.
func TestModels_outOfDomainIsFinite(t *testing.T) {
	lin, err := NewLinear(40)
	require.NoError(t, err)
	models := map[string]Model{"linear": lin}
	for _, k := range Compiled() {
		if m, err := Lookup(k); err == nil {
			models[k.String()] = m
		}
	}

	for name, m := range models {
		t.Run(name, func(t *testing.T) {
			for _, mV := range []float32{m.MinVoltage() - 1, m.MinVoltage() - 10, m.MaxVoltage() + 10, 0} {
				v := float64(m.AbsTemperature(mV))
				assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "AbsTemperature(%v) = %v", mV, v)
			}
			for _, c := range []float32{m.MinTemperature() - 50, m.MaxTemperature() + 100, 0} {
				v := float64(m.AbsVoltage(c))
				assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "AbsVoltage(%v) = %v", c, v)
			}
		})
	}
}

// Any voltage an ADC behind a 3.3 V reference can produce converts to a finite value.
func TestModels_adcSpanIsFinite(t *testing.T) {
	for _, k := range Compiled() {
		m, err := Lookup(k)
		if err != nil {
			continue
		}
		for mV := float32(-3300); mV <= 3300; mV += 100 {
			v := float64(m.AbsTemperature(mV))
			if !assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "%v: AbsTemperature(%v) = %v", k, mV, v) {
				break
			}
		}
	}
}

func TestModels_envelope(t *testing.T) {
	for _, k := range Compiled() {
		m, err := Lookup(k)
		if err != nil {
			continue
		}
		assert.LessOrEqual(t, m.MinVoltage(), m.MaxVoltage(), k.String())
		assert.LessOrEqual(t, m.MinTemperature(), m.MaxTemperature(), k.String())
	}
}

// roundTrip checks AbsTemperature(AbsVoltage(c)) ≈ c over [from, to].
func roundTrip(t *testing.T, m Model, from, to, step, eps float32) {
	t.Helper()
	for c := from; c <= to; c += step {
		got := m.AbsTemperature(m.AbsVoltage(c))
		if !assert.InDeltaf(t, c, got, float64(eps), "round trip at %v °C", c) {
			return
		}
	}
	got := m.AbsTemperature(m.AbsVoltage(to))
	assert.InDeltaf(t, to, got, float64(eps), "round trip at %v °C", to)
}
