package tc

// CtoF converts Celsius to Fahrenheit.
func CtoF(c float32) float32 { return 1.8*c + 32 }

// FtoC converts Fahrenheit to Celsius.
func FtoC(f float32) float32 { return (f - 32) / 1.8 }

// Sensor applies cold-junction compensation and unit conversion on top of a Model.
// Conversions never refuse out-of-range input; use the InRange checks to decide
// whether a result is within the reference span.
type Sensor struct {
	m Model
}

func NewSensor(m Model) Sensor {
	return Sensor{m: m}
}

func (s Sensor) Model() Model { return s.m }

// TemperatureC returns the temperature in °C for a reading taken against a
// cold junction at coldC. Uncompensated models ignore coldC.
func (s Sensor) TemperatureC(mV, coldC float32) float32 {
	if s.m.Compensated() {
		mV += s.m.AbsVoltage(coldC)
	}
	return s.m.AbsTemperature(mV)
}

// TemperatureF is TemperatureC in Fahrenheit, cold junction given in °F.
func (s Sensor) TemperatureF(mV, coldF float32) float32 {
	return CtoF(s.TemperatureC(mV, FtoC(coldF)))
}

// VoltageC returns the expected reading for c referenced to 0 °C.
func (s Sensor) VoltageC(c float32) float32 {
	return s.m.AbsVoltage(c)
}

// VoltageF returns the expected reading for f referenced to 32 °F.
func (s Sensor) VoltageF(f float32) float32 {
	return s.m.AbsVoltage(FtoC(f))
}

func (s Sensor) InRangeVoltage(mV float32) bool {
	return mV >= s.m.MinVoltage() && mV <= s.m.MaxVoltage()
}

func (s Sensor) InRangeC(c float32) bool {
	return c >= s.m.MinTemperature() && c <= s.m.MaxTemperature()
}

func (s Sensor) InRangeF(f float32) bool {
	return s.InRangeC(FtoC(f))
}

func (s Sensor) MinVoltage() float32     { return s.m.MinVoltage() }
func (s Sensor) MaxVoltage() float32     { return s.m.MaxVoltage() }
func (s Sensor) MinTemperature() float32 { return s.m.MinTemperature() }
func (s Sensor) MaxTemperature() float32 { return s.m.MaxTemperature() }
