//go:build !notypept && pt3v3

package tc

// 3.3 V excitation.
const (
	ptOffset         float32 = 733 // mV at 0 °C
	ptMaxTemperature float32 = 329
)
