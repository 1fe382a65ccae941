package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/itohio/thermocouple/profile"
	"github.com/itohio/thermocouple/tc"
)

var (
	errStep    = errors.New("step must be positive")
	errBounds  = errors.New("from, to and step must be finite")
	errRows    = errors.New("too many table rows")
	errReading = errors.New("reading must look like name=mV")
)

const maxTableRows = 10000

// SensorOptions selects the sensor characteristic.
type SensorOptions struct {
	Type       string  `short:"t" long:"type" default:"K" description:"sensor type: linear, K, T, J, Pt100"`
	Slope      float32 `long:"mv-per-c" default:"5" description:"slope of the linear model in mV/°C"`
	Fahrenheit bool    `short:"F" long:"fahrenheit" description:"temperatures in °F"`
}

func (o SensorOptions) sensor() (tc.Sensor, error) {
	k, err := tc.ParseKind(o.Type)
	if err != nil {
		return tc.Sensor{}, fmt.Errorf("type %q: %w", o.Type, err)
	}
	return tc.New(k, o.Slope)
}

func (o SensorOptions) unit() string {
	if o.Fahrenheit {
		return "°F"
	}
	return "°C"
}

func formatTemp(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

func formatMV(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}

type tempCommand struct {
	SensorOptions
	Cold float32 `short:"c" long:"cold" default:"0" description:"cold junction temperature"`
	Args struct {
		MV []float32 `positional-arg-name:"mV" required:"1"`
	} `positional-args:"yes"`

	env *env
}

func (c *tempCommand) Execute([]string) error {
	s, err := c.sensor()
	if err != nil {
		return err
	}
	c.env.log.Debug("converting readings", "type", c.Type, "cold", c.Cold, "count", len(c.Args.MV))

	for _, mV := range c.Args.MV {
		var t float32
		if c.Fahrenheit {
			t = s.TemperatureF(mV, c.Cold)
		} else {
			t = s.TemperatureC(mV, c.Cold)
		}
		if !s.InRangeVoltage(mV) {
			c.env.log.Warn("reading outside the reference span",
				"mV", mV, "min", s.MinVoltage(), "max", s.MaxVoltage())
		}
		fmt.Fprintf(c.env.out, "%s mV\t%s %s\n", formatMV(mV), formatTemp(t), c.unit())
	}
	return nil
}

type voltCommand struct {
	SensorOptions
	Args struct {
		Temp []float32 `positional-arg-name:"temperature" required:"1"`
	} `positional-args:"yes"`

	env *env
}

func (c *voltCommand) Execute([]string) error {
	s, err := c.sensor()
	if err != nil {
		return err
	}

	for _, t := range c.Args.Temp {
		var mV float32
		var ok bool
		if c.Fahrenheit {
			mV, ok = s.VoltageF(t), s.InRangeF(t)
		} else {
			mV, ok = s.VoltageC(t), s.InRangeC(t)
		}
		if !ok {
			c.env.log.Warn("temperature outside the reference span",
				"temperature", t, "min", s.MinTemperature(), "max", s.MaxTemperature())
		}
		fmt.Fprintf(c.env.out, "%s %s\t%s mV\n", formatTemp(t), c.unit(), formatMV(mV))
	}
	return nil
}

type tableCommand struct {
	SensorOptions
	From float32 `long:"from" default:"0" description:"first temperature"`
	To   float32 `long:"to" default:"100" description:"last temperature"`
	Step float32 `long:"step" default:"10" description:"temperature increment"`

	env *env
}

func (c *tableCommand) Execute([]string) error {
	if !finite(c.From) || !finite(c.To) || !finite(c.Step) {
		return errBounds
	}
	if !(c.Step > 0) {
		return errStep
	}
	if (float64(c.To)-float64(c.From))/float64(c.Step) >= maxTableRows {
		return errRows
	}
	s, err := c.sensor()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.env.out, "%s\tmV\n", c.unit())
	for i := 0; i <= maxTableRows; i++ {
		t := c.From + float32(i)*c.Step
		if t > c.To {
			break
		}
		mV := s.VoltageC(t)
		if c.Fahrenheit {
			mV = s.VoltageF(t)
		}
		fmt.Fprintf(c.env.out, "%s\t%s\n", formatTemp(t), formatMV(mV))
	}
	return nil
}

type convertCommand struct {
	Profile string  `short:"p" long:"profile" required:"yes" description:"channel profile (YAML)"`
	Cold    float32 `short:"c" long:"cold" default:"0" description:"cold junction temperature in °C"`
	Args    struct {
		Readings []string `positional-arg-name:"name=mV" required:"1"`
	} `positional-args:"yes"`

	env *env
}

func (c *convertCommand) Execute([]string) error {
	p, err := profile.LoadFile(c.Profile)
	if err != nil {
		return err
	}
	c.env.log.Debug("loaded profile", "path", c.Profile, "channels", len(p.Channels))

	for _, r := range c.Args.Readings {
		name, value, ok := strings.Cut(r, "=")
		if !ok {
			return fmt.Errorf("%q: %w", r, errReading)
		}
		mV, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%q: %w", r, errReading)
		}
		ch, ok := p.Lookup(name)
		if !ok {
			return fmt.Errorf("%q: unknown channel", name)
		}
		s, err := ch.Sensor()
		if err != nil {
			return fmt.Errorf("channel %q: %w", name, err)
		}

		t := s.TemperatureC(float32(mV), c.Cold)
		unit := "°C"
		if ch.Fahrenheit() {
			t, unit = tc.CtoF(t), "°F"
		}
		if !s.InRangeVoltage(float32(mV)) {
			c.env.log.Warn("reading outside the reference span", "channel", name, "mV", mV)
		}
		fmt.Fprintf(c.env.out, "%s\t%s %s\n", name, formatTemp(t), unit)
	}
	return nil
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
