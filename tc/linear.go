package tc

// Linear is the fallback characteristic: temperature proportional to voltage.
// Bounds match the range of an AD849x thermocouple amplifier.
type Linear struct {
	slope float32
}

// NewLinear returns a Linear model with the given mV/°C slope.
func NewLinear(mVperC float32) (Linear, error) {
	if !(mVperC > 0) {
		return Linear{}, ErrInvalidSlope
	}
	return Linear{slope: mVperC}, nil
}

func (l Linear) Slope() float32 { return l.slope }

func (l Linear) AbsTemperature(mV float32) float32 { return mV / l.slope }
func (l Linear) AbsVoltage(c float32) float32      { return c * l.slope }

func (Linear) MinVoltage() float32     { return 0 }
func (Linear) MaxVoltage() float32     { return 2000 }
func (Linear) MinTemperature() float32 { return 0 }
func (Linear) MaxTemperature() float32 { return 400 }
func (Linear) Compensated() bool       { return false }
