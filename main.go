//go:build tinygo

package main

import (
	"image/color"
	"machine"
	"strconv"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/itohio/thermocouple/artisan"
	"github.com/itohio/thermocouple/config"
	"github.com/itohio/thermocouple/dev"
	"github.com/itohio/thermocouple/tc"
)

// Pt100 channel expects the 3.3 V excitation constants.
//go:generate tinygo flash -target=pico -tags pt3v3

var (
	white = color.RGBA{255, 255, 255, 255}
)

func main() {
	machine.InitADC()
	config.Probe1.Configure(machine.ADCConfig{})
	config.Probe2.Configure(machine.ADCConfig{})
	config.Probe3.Configure(machine.ADCConfig{})
	config.Button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	meter, err := configureThermometer()
	if err != nil {
		println("Thermometer failed: " + err.Error())
		return
	}
	for i := 0; i < meter.Len(); i++ {
		if lo, hi, err := meter.RawRange(i); err == nil {
			println("probe", i+1, "raw span", lo, hi)
		}
	}
	handler := artisan.NewHandler(meter)

	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	// the delay is needed for display start from a cold reboot, not sure why
	time.Sleep(time.Second)
	display := ssd1306.NewI2C(machine.I2C0)
	cfg := ssd1306.Config{Width: config.DisplayWidth, Height: config.DisplayHeight, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC}
	display.Configure(cfg)
	display.ClearDisplay()

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	var (
		lines artisan.Lines
		temps = make([]float32, meter.Len())
	)
	ticker := time.NewTicker(time.Millisecond * 250)
	for range ticker.C {
		// Artisan polls with READ; commands share the sampling loop with the display
		for machine.Serial.Buffered() > 0 {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			line, err := lines.Feed(b)
			if err != nil {
				println("# " + err.Error())
				continue
			}
			if line == "" {
				continue
			}
			reply, err := handler.Handle(line)
			switch {
			case err != nil:
				println("# " + err.Error())
			case reply != "":
				println(reply)
			}
		}

		// a pressed button shows Fahrenheit
		fahrenheit := !config.Button.Get()
		temps = meter.Read(temps)

		display.ClearBuffer()
		drawLine(&display, 0, "Amb", meter.Ambient(), fahrenheit, true)
		for i, t := range temps {
			ok, _ := meter.InRange(i)
			drawLine(&display, i+1, "T"+strconv.Itoa(i+1), t, fahrenheit, ok)
		}
		display.Display()
		machine.Watchdog.Update()
	}
}

func configureThermometer() (*dev.Thermometer, error) {
	probe1, err := tc.New(tc.KindLinear, config.Probe1Slope)
	if err != nil {
		return nil, err
	}
	probe2, err := tc.New(tc.KindK, 0)
	if err != nil {
		return nil, err
	}
	probe3, err := tc.New(tc.KindPt, 0)
	if err != nil {
		return nil, err
	}

	meter, err := dev.NewThermometer(config.Oversampling, coldJunction,
		dev.Channel{
			Sampler:      config.Probe1,
			Approximator: dev.NewReferenceCalibration[float32](config.ADCReference, config.ADCFullScale, 1),
			Sensor:       probe1,
		},
		dev.Channel{
			Sampler:      config.Probe2,
			Approximator: dev.NewReferenceCalibration[float32](config.ADCReference, config.ADCFullScale, config.Probe2Gain),
			Sensor:       probe2,
		},
		dev.Channel{
			Sampler:      config.Probe3,
			Approximator: dev.NewReferenceCalibration[float32](config.ADCReference, config.ADCFullScale, 1),
			Sensor:       probe3,
		},
	)
	if err != nil {
		return nil, err
	}

	for i := 0; i < meter.Len(); i++ {
		if err := meter.SetFilter(i, 70); err != nil {
			return nil, err
		}
	}
	return meter, nil
}

// coldJunction reads the on-chip sensor, which sits next to the probe terminals.
func coldJunction() float32 {
	return float32(machine.ReadTemperature()) / 1000
}

func drawLine(display *ssd1306.Device, row int, label string, c float32, fahrenheit, ok bool) {
	unit := "C"
	if fahrenheit {
		c, unit = tc.CtoF(c), "F"
	}
	text := label + " " + strconv.FormatFloat(float64(c), 'f', 1, 32) + unit
	if !ok {
		text += " !"
	}
	y := int16(row+1) * 14
	tinyfont.WriteLine(display, &proggy.TinySZ8pt7b, 0, y, text, white)
}
