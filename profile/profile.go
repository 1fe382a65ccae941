// Package profile loads named channel definitions used by the host tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/itohio/thermocouple/tc"
)

// Channel describes one sensor input.
type Channel struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	MVPerC float32 `yaml:"mv_per_c,omitempty"` // linear sensors only
	Units  string  `yaml:"units,omitempty"`    // C or F, default C
}

// Profile is a set of channels.
type Profile struct {
	Channels []Channel `yaml:"channels"`
}

var errNoName = errors.New("channel without name")

// Load parses a YAML profile, applies defaults and validates every channel.
func Load(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	applyDefaults(&p)

	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads and parses the profile at path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func applyDefaults(p *Profile) {
	for i := range p.Channels {
		ch := &p.Channels[i]
		ch.Name = strings.TrimSpace(ch.Name)
		ch.Units = strings.ToUpper(strings.TrimSpace(ch.Units))
		if ch.Units == "" {
			ch.Units = "C"
		}
	}
}

func (p *Profile) validate() error {
	seen := make(map[string]bool, len(p.Channels))
	for i, ch := range p.Channels {
		if ch.Name == "" {
			return fmt.Errorf("channel #%d: %w", i+1, errNoName)
		}
		if seen[ch.Name] {
			return fmt.Errorf("channel %q: duplicate name", ch.Name)
		}
		seen[ch.Name] = true

		if ch.Units != "C" && ch.Units != "F" {
			return fmt.Errorf("channel %q: unknown units %q", ch.Name, ch.Units)
		}
		if _, err := ch.Sensor(); err != nil {
			return fmt.Errorf("channel %q: %w", ch.Name, err)
		}
	}
	return nil
}

func (ch Channel) Fahrenheit() bool { return ch.Units == "F" }

// Sensor builds the conversion for the channel.
func (ch Channel) Sensor() (tc.Sensor, error) {
	k, err := tc.ParseKind(ch.Type)
	if err != nil {
		return tc.Sensor{}, fmt.Errorf("type %q: %w", ch.Type, err)
	}
	return tc.New(k, ch.MVPerC)
}

// Lookup returns the channel with the given name.
func (p *Profile) Lookup(name string) (Channel, bool) {
	for _, ch := range p.Channels {
		if ch.Name == name {
			return ch, true
		}
	}
	return Channel{}, false
}
