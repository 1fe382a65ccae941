package dev

// Filter is a first-order IIR low pass. Level is the weight of the previous
// output in percent: 0 passes readings through, 90 smooths heavily.
type Filter struct {
	level  uint8
	value  float32
	primed bool
}

func NewFilter(level uint8) (Filter, error) {
	if level > 100 {
		return Filter{}, ErrInvalidLevel
	}
	return Filter{level: level}, nil
}

func (f *Filter) Level() uint8 { return f.level }

// Apply feeds x through the filter. The first sample primes the output.
func (f *Filter) Apply(x float32) float32 {
	if !f.primed || f.level == 0 {
		f.value = x
		f.primed = true
		return x
	}
	k := float32(f.level) / 100
	f.value = k*f.value + (1-k)*x
	return f.value
}

func (f *Filter) Reset() {
	f.primed = false
	f.value = 0
}
