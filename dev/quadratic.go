package dev

import "math"

// QuadraticCalibration models a front end with a bent transfer curve,
// for example an amplifier near its output rail: mV = a·raw² + b·raw + c.
type QuadraticCalibration[T number] struct {
	a T // Coefficient of raw²
	b T // Coefficient of raw
	c T // Constant term
}

// NewQuadraticCalibrationFromPoints fits the curve through three measured points.
func NewQuadraticCalibrationFromPoints[T number](
	x1 uint16, y1 T,
	x2 uint16, y2 T,
	x3 uint16, y3 T) (QuadraticCalibration[T], error) {

	tx1, tx2, tx3 := T(x1), T(x2), T(x3)

	// Cramer's rule over y = a·x² + b·x + c
	denominator := (tx1 - tx2) * (tx1 - tx3) * (tx2 - tx3)
	if denominator == 0 {
		return QuadraticCalibration[T]{}, ErrInvalidPoints
	}

	a := (tx3*(y2-y1) + tx2*(y1-y3) + tx1*(y3-y2)) / denominator
	b := (tx3*tx3*(y1-y2) + tx2*tx2*(y3-y1) + tx1*tx1*(y2-y3)) / denominator
	c := (tx2*tx3*(tx2-tx3)*y1 + tx1*tx3*(tx3-tx1)*y2 + tx1*tx2*(tx1-tx2)*y3) / denominator

	return QuadraticCalibration[T]{a: a, b: b, c: c}, nil
}

// NewQuadraticCalibration creates a calibration from known coefficients.
func NewQuadraticCalibration[T number](a, b, c T) QuadraticCalibration[T] {
	return QuadraticCalibration[T]{a: a, b: b, c: c}
}

func (q QuadraticCalibration[T]) Millivolts(raw uint16) T {
	x := T(raw)
	return q.a*x*x + q.b*x + q.c
}

// Raw finds the ADC count that produces mV, picking the smallest
// non-negative root. Targets the curve never reaches clamp to 0 or MaxUint16.
func (q QuadraticCalibration[T]) Raw(mV T) uint16 {
	a, b, c := q.a, q.b, q.c-mV

	if a == 0 {
		if b == 0 {
			return 0
		}
		return clampRaw(-c / b)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		if c < 0 {
			return math.MaxUint16
		}
		return 0
	}

	sq := T(math.Sqrt(float64(discriminant)))
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)

	result := x2
	if x1 >= 0 && (x2 < 0 || x1 < x2) {
		result = x1
	}
	return clampRaw(result)
}
