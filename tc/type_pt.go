//go:build !notypept

package tc

func init() { register(KindPt, TypePt{}) }

// TypePt is a Pt100 RTD read as a voltage proportional to its resistance
// under fixed excitation. The zero offset and span depend on the board
// excitation voltage, selected at build time (see pt_5v.go, pt_3v3.go).
type TypePt struct{}

const (
	ptCoefficient float32 = 3.85 // mV/°C
	ptMaxVoltage  float32 = 2000
)

func (TypePt) AbsTemperature(mV float32) float32 { return (mV - ptOffset) / ptCoefficient }
func (TypePt) AbsVoltage(c float32) float32      { return c*ptCoefficient + ptOffset }

func (TypePt) MinVoltage() float32     { return ptOffset }
func (TypePt) MaxVoltage() float32     { return ptMaxVoltage }
func (TypePt) MinTemperature() float32 { return 0 }
func (TypePt) MaxTemperature() float32 { return ptMaxTemperature }
func (TypePt) Compensated() bool       { return false }
