package dev

import "math"

type number interface {
	float32 | float64
}

// Approximator converts a raw ADC count into millivolts at the sensor terminals.
type Approximator[T number] interface {
	Millivolts(raw uint16) T
}

// Calibration is a linear ADC front end: mV = gain·raw + offset.
type Calibration[T number] struct {
	gain   T // mV per count
	offset T // mV at count 0
}

// NewCalibration creates a calibration directly from gain and offset.
func NewCalibration[T number](gain, offset T) Calibration[T] {
	return Calibration[T]{gain: gain, offset: offset}
}

// NewCalibrationFromPoints creates a calibration from two measured points
// (raw1, mV1) and (raw2, mV2).
func NewCalibrationFromPoints[T number](raw1 uint16, mV1 T, raw2 uint16, mV2 T) (Calibration[T], error) {
	if raw1 == raw2 {
		return Calibration[T]{}, ErrInvalidPoints
	}
	gain := (mV2 - mV1) / (T(raw2) - T(raw1))
	return Calibration[T]{
		gain:   gain,
		offset: mV1 - gain*T(raw1),
	}, nil
}

// NewReferenceCalibration derives the gain from the ADC reference voltage (V),
// its full scale count and the amplifier gain in front of it.
// TinyGo scales every ADC reading to 16 bits, so full scale is usually 0xFFFF.
func NewReferenceCalibration[T number](reference T, fullScale uint16, amplification T) Calibration[T] {
	return Calibration[T]{
		gain: reference * 1000 / T(fullScale) / amplification,
	}
}

// Millivolts transforms a raw ADC count into millivolts.
func (c Calibration[T]) Millivolts(raw uint16) T {
	return c.gain*T(raw) + c.offset
}

// Raw returns the ADC count expected for mV, clamped to the uint16 range.
func (c Calibration[T]) Raw(mV T) uint16 {
	if c.gain == 0 {
		return 0
	}
	return clampRaw((mV - c.offset) / c.gain)
}

func clampRaw[T number](x T) uint16 {
	switch {
	case math.IsNaN(float64(x)) || x < 0:
		return 0
	case x > T(math.MaxUint16):
		return math.MaxUint16
	}
	return uint16(x + 0.5)
}
