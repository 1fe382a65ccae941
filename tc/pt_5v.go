//go:build !notypept && !pt3v3

package tc

// 5 V excitation.
const (
	ptOffset         float32 = 1111 // mV at 0 °C
	ptMaxTemperature float32 = 230
)
