//go:build !notypek

package tc

import "math"

func init() { register(KindK, TypeK{}) }

// TypeK is the ITS-90 characteristic of a type K (chromel/alumel) thermocouple.
// The inverse equation starts at -200 °C; colder readings extrapolate its
// first row and are only approximate.
type TypeK struct{}

var (
	typeKDirect = table{
		{lo: -270, hi: 0, c: []float32{
			0.000000000000e+00,
			0.394501280250e-01,
			0.236223735980e-04,
			-0.328589067840e-06,
			-0.499048287770e-08,
			-0.675090591730e-10,
			-0.574103274280e-12,
			-0.310888728940e-14,
			-0.104516093650e-16,
			-0.198892668780e-19,
			-0.163226974860e-22,
		}},
		{lo: 0, hi: 1372, c: []float32{
			-0.176004136860e-01,
			0.389212049750e-01,
			0.185587700320e-04,
			-0.994575928740e-07,
			0.318409457190e-09,
			-0.560728448890e-12,
			0.560750590590e-15,
			-0.320207200030e-18,
			0.971511471520e-22,
			-0.121047212750e-25,
		}},
	}

	// a0·exp(a1·(t−a2)²), added to the direct polynomial above 0 °C
	typeKExp = [3]float32{0.118597600000e+00, -0.118343200000e-03, 0.126968600000e+03}

	typeKInverse = table{
		{lo: -5.891, hi: 0, c: []float32{
			0.0000000e+00,
			2.5173462e+01,
			-1.1662878e+00,
			-1.0833638e+00,
			-8.9773540e-01,
			-3.7342377e-01,
			-8.6632643e-02,
			-1.0450598e-02,
			-5.1920577e-04,
		}},
		{lo: 0, hi: 20.644, c: []float32{
			0.000000e+00,
			2.508355e+01,
			7.860106e-02,
			-2.503131e-01,
			8.315270e-02,
			-1.228034e-02,
			9.804036e-04,
			-4.413030e-05,
			1.057734e-06,
			-1.052755e-08,
		}},
		{lo: 20.644, hi: 54.886, c: []float32{
			-1.318058e+02,
			4.830222e+01,
			-1.646031e+00,
			5.464731e-02,
			-9.650715e-04,
			8.802193e-06,
			-3.110810e-08,
		}},
	}
)

func (TypeK) AbsTemperature(mV float32) float32 {
	return typeKInverse.eval(mV)
}

func (TypeK) AbsVoltage(c float32) float32 {
	i := typeKDirect.row(c)
	mV := typeKDirect[i].eval(c)
	if i > 0 {
		d := c - typeKExp[2]
		mV += typeKExp[0] * float32(math.Exp(float64(typeKExp[1]*d*d)))
	}
	return mV
}

func (TypeK) MinVoltage() float32     { return typeKInverse.min() }
func (TypeK) MaxVoltage() float32     { return typeKInverse.max() }
func (TypeK) MinTemperature() float32 { return typeKDirect.min() }
func (TypeK) MaxTemperature() float32 { return typeKDirect.max() }
func (TypeK) Compensated() bool       { return true }
