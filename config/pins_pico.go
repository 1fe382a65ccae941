//go:build rp2040

package config

import "machine"

var (
	// AD8495 amplifier output, 5 mV/°C
	Probe1 = machine.ADC{Pin: machine.ADC0}
	// bare type K thermocouple behind an instrumentation amplifier
	Probe2 = machine.ADC{Pin: machine.ADC1}
	// Pt100 divider
	Probe3 = machine.ADC{Pin: machine.ADC2}

	Button = machine.GP15
)

const (
	ADCReference  = 3.3    // V
	ADCFullScale  = 0xFFFF // TinyGo scales every reading to 16 bits
	Probe1Slope   = 5      // mV/°C
	Probe2Gain    = 50
	Oversampling  = 16
	DisplayWidth  = 128
	DisplayHeight = 64
)
