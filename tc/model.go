// Package tc converts thermocouple and RTD voltages to temperatures and back.
//
// Every sensor characteristic implements Model. Thermocouple types K, T and J
// use the NIST ITS-90 reference polynomials, Pt is a two-constant Pt100
// relation and Linear is a fixed mV/°C slope. All arithmetic is float32.
//
// Fixed models are compiled in unless excluded with a build tag
// (notypek, notypet, notypej, notypept) to save flash on small targets.
package tc

import "strings"

// Model is a sensor characteristic referenced to 0 °C.
type Model interface {
	// AbsTemperature returns the temperature in °C for a reading referenced to 0 °C.
	AbsTemperature(mV float32) float32
	// AbsVoltage returns the expected reading in mV for a temperature, referenced to 0 °C.
	AbsVoltage(c float32) float32

	MinVoltage() float32
	MaxVoltage() float32
	MinTemperature() float32
	MaxTemperature() float32

	// Compensated reports whether the reading is relative to a cold junction.
	Compensated() bool
}

// Kind enumerates the supported sensor characteristics.
type Kind uint8

const (
	KindLinear Kind = iota
	KindK
	KindT
	KindJ
	KindPt

	kindCount
)

var kindNames = [kindCount]string{
	KindLinear: "linear",
	KindK:      "K",
	KindT:      "T",
	KindJ:      "J",
	KindPt:     "Pt100",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind accepts the kind names case-insensitively, plus "Pt" and "type K" style aliases.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "type")
	s = strings.TrimSpace(s)
	switch s {
	case "pt", "rtd":
		return KindPt, nil
	}
	for k, name := range kindNames {
		if strings.ToLower(name) == s {
			return Kind(k), nil
		}
	}
	return 0, ErrUnknownKind
}

// fixed holds the parameterless models registered by their build-tagged files.
var fixed [kindCount]Model

func register(k Kind, m Model) {
	fixed[k] = m
}

// Lookup returns the fixed model for k. Linear has no fixed instance; use NewLinear.
func Lookup(k Kind) (Model, error) {
	if k >= kindCount {
		return nil, ErrUnknownKind
	}
	if k == KindLinear {
		return nil, ErrInvalidSlope
	}
	if fixed[k] == nil {
		return nil, ErrNotCompiled
	}
	return fixed[k], nil
}

// Compiled lists the kinds available in this build.
func Compiled() []Kind {
	kinds := []Kind{KindLinear}
	for k := KindLinear + 1; k < kindCount; k++ {
		if fixed[k] != nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// New returns a Sensor for k. mVperC is only used by KindLinear.
func New(k Kind, mVperC float32) (Sensor, error) {
	if k == KindLinear {
		l, err := NewLinear(mVperC)
		if err != nil {
			return Sensor{}, err
		}
		return NewSensor(l), nil
	}
	m, err := Lookup(k)
	if err != nil {
		return Sensor{}, err
	}
	return NewSensor(m), nil
}
