package dev

import "github.com/itohio/thermocouple/tc"

// Sampler is a single ADC input. machine.ADC satisfies it.
type Sampler interface {
	Get() uint16
}

// Channel binds an ADC input to its front end calibration and sensor characteristic.
type Channel struct {
	Sampler      Sampler
	Approximator Approximator[float32]
	Sensor       tc.Sensor
}

// Thermometer reads temperatures from multiple ADC channels.
// It reuses internal buffers and is not safe for concurrent use.
type Thermometer struct {
	channels []Channel
	filters  []Filter
	raw      []uint32
	voltages []float32 // last reading in mV per channel
	readings []float32 // last filtered temperature in °C per channel
	cold     func() float32
	ambient  float32
	samples  uint8 // Number of samples to average per reading
}

// NewThermometer creates a thermometer over the given channels. cold returns
// the cold junction temperature in °C; nil means the junction sits at 0 °C.
func NewThermometer(samples uint8, cold func() float32, channels ...Channel) (*Thermometer, error) {
	if samples == 0 {
		return nil, ErrInvalidSamples
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	for _, ch := range channels {
		if ch.Sampler == nil || ch.Approximator == nil || ch.Sensor.Model() == nil {
			return nil, ErrInvalidChannel
		}
	}

	return &Thermometer{
		channels: channels,
		filters:  make([]Filter, len(channels)),
		raw:      make([]uint32, len(channels)),
		voltages: make([]float32, len(channels)),
		readings: make([]float32, len(channels)),
		cold:     cold,
		samples:  samples,
	}, nil
}

func (t *Thermometer) Len() int { return len(t.channels) }

func (t *Thermometer) Channel(i int) (Channel, error) {
	if i < 0 || i >= len(t.channels) {
		return Channel{}, ErrInvalidIndex
	}
	return t.channels[i], nil
}

// SetFilter sets the smoothing level of channel i in percent.
func (t *Thermometer) SetFilter(i int, level uint8) error {
	if i < 0 || i >= len(t.filters) {
		return ErrInvalidIndex
	}
	f, err := NewFilter(level)
	if err != nil {
		return err
	}
	t.filters[i] = f
	return nil
}

func (t *Thermometer) readRaw(buf []uint32, N int) []uint32 {
	for i := range buf {
		buf[i] = 0
	}
	for ; N > 0; N-- {
		for i := range buf {
			buf[i] += uint32(t.channels[i].Sampler.Get())
		}
	}

	return buf
}

// ReadRaw accumulates N samples per channel into buf without converting them.
func (t *Thermometer) ReadRaw(buf []uint32, N int) []uint32 {
	if len(buf) > len(t.channels) {
		buf = buf[:len(t.channels)]
	}
	if buf == nil {
		buf = t.raw
	}

	return t.readRaw(buf, N)
}

func (t *Thermometer) read(buf []float32) []float32 {
	t.ambient = 0
	if t.cold != nil {
		t.ambient = t.cold()
	}

	t.raw = t.readRaw(t.raw, int(t.samples))
	for i := range t.channels {
		ch := &t.channels[i]
		mV := ch.Approximator.Millivolts(uint16(t.raw[i] / uint32(t.samples)))
		t.voltages[i] = mV
		t.readings[i] = t.filters[i].Apply(ch.Sensor.TemperatureC(mV, t.ambient))
	}
	copy(buf, t.readings)

	return buf
}

// Read samples and converts every channel and returns cold junction
// compensated temperatures in °C. A buf shorter than Len receives the
// leading channels only. Out of range channels still report a value;
// check InRange to decide whether to trust it.
func (t *Thermometer) Read(buf []float32) []float32 {
	if len(buf) > len(t.channels) {
		buf = buf[:len(t.channels)]
	}
	if buf == nil {
		buf = t.readings
	}

	return t.read(buf)
}

// Temperatures samples all channels into the internal buffer.
func (t *Thermometer) Temperatures() []float32 {
	return t.read(t.readings)
}

// Ambient is the cold junction temperature used by the last Read.
func (t *Thermometer) Ambient() float32 { return t.ambient }

// Voltages are the channel readings in mV from the last Read.
func (t *Thermometer) Voltages() []float32 { return t.voltages }

func (t *Thermometer) Raw() []uint32 { return t.raw }

// InRange reports whether the last reading of channel i is inside the
// sensor's reference voltage span.
func (t *Thermometer) InRange(i int) (bool, error) {
	if i < 0 || i >= len(t.channels) {
		return false, ErrInvalidIndex
	}
	return t.channels[i].Sensor.InRangeVoltage(t.voltages[i]), nil
}

// RawRange returns the ADC counts that bound the sensor voltage span of
// channel i. The channel approximator must provide Raw(mV) uint16.
func (t *Thermometer) RawRange(i int) (lo, hi uint16, err error) {
	if i < 0 || i >= len(t.channels) {
		return 0, 0, ErrInvalidIndex
	}
	ch := t.channels[i]
	inv, ok := ch.Approximator.(interface{ Raw(float32) uint16 })
	if !ok {
		return 0, 0, ErrNotInvertible
	}
	lo, hi = inv.Raw(ch.Sensor.MinVoltage()), inv.Raw(ch.Sensor.MaxVoltage())
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}
