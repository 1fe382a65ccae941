package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/thermocouple/tc"
)

var roasterKinds = []tc.Kind{tc.KindK, tc.KindJ, tc.KindPt}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		args       []string
		wantCode   int
		wantOut    string
		wantStderr string
		needs      []tc.Kind
	}{
		"temp linear": {
			args:    []string{"temp", "-t", "linear", "--mv-per-c", "40", "80"},
			wantOut: "80.000 mV\t2.00 °C\n",
		},
		"temp type K at zero": {
			args:    []string{"temp", "-t", "K", "--", "0"},
			wantOut: "0.000 mV\t0.00 °C\n",
			needs:   []tc.Kind{tc.KindK},
		},
		"temp out of range warns": {
			args:       []string{"temp", "-t", "K", "60"},
			wantStderr: "reading outside the reference span",
			needs:      []tc.Kind{tc.KindK},
		},
		"volt linear": {
			args:    []string{"volt", "-t", "linear", "--mv-per-c", "40", "2"},
			wantOut: "2.00 °C\t80.000 mV\n",
		},
		"volt fahrenheit": {
			args:    []string{"volt", "-t", "K", "-F", "32"},
			wantOut: "32.00 °F\t0.000 mV\n",
			needs:   []tc.Kind{tc.KindK},
		},
		"table": {
			args:    []string{"table", "-t", "linear", "--mv-per-c", "10", "--from", "0", "--to", "20", "--step", "10"},
			wantOut: "°C\tmV\n0.00\t0.000\n10.00\t100.000\n20.00\t200.000\n",
		},
		"table bad step": {
			args:       []string{"table", "--step", "0"},
			wantCode:   1,
			wantStderr: "step must be positive",
		},
		"table NaN bound": {
			args:       []string{"table", "-t", "linear", "--to", "NaN"},
			wantCode:   1,
			wantStderr: "must be finite",
		},
		"table infinite bound": {
			args:       []string{"table", "-t", "linear", "--to", "Inf"},
			wantCode:   1,
			wantStderr: "must be finite",
		},
		"table NaN step": {
			args:       []string{"table", "-t", "linear", "--step", "NaN"},
			wantCode:   1,
			wantStderr: "must be finite",
		},
		"table too long": {
			args:       []string{"table", "-t", "linear", "--to", "1e6", "--step", "0.001"},
			wantCode:   1,
			wantStderr: "too many table rows",
		},
		"convert": {
			args:    []string{"convert", "-p", "../../profile/testdata/roaster.yaml", "amp=100", "exhaust=0"},
			wantOut: "amp\t20.00 °C\nexhaust\t32.00 °F\n",
			needs:   roasterKinds,
		},
		"convert bad reading": {
			args:       []string{"convert", "-p", "../../profile/testdata/roaster.yaml", "amp"},
			wantCode:   1,
			wantStderr: "name=mV",
			needs:      roasterKinds,
		},
		"convert unknown channel": {
			args:       []string{"convert", "-p", "../../profile/testdata/roaster.yaml", "oven=1"},
			wantCode:   1,
			wantStderr: "unknown channel",
			needs:      roasterKinds,
		},
		"unknown type": {
			args:       []string{"temp", "-t", "S", "1"},
			wantCode:   1,
			wantStderr: "unknown sensor type",
		},
		"no command": {
			args:     nil,
			wantCode: 1,
		},
		"help": {
			args:    []string{"--help"},
			wantOut: "Usage:",
		},
		"debug": {
			args:       []string{"-d", "temp", "-t", "J", "1"},
			wantStderr: "converting readings",
			needs:      []tc.Kind{tc.KindJ},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			skipUnlessCompiled(t, test.needs...)
			var stdout, stderr bytes.Buffer

			code := run(test.args, &stdout, &stderr)

			assert.Equal(t, test.wantCode, code, stderr.String())
			if test.wantOut != "" {
				if name == "help" {
					assert.Contains(t, stdout.String(), test.wantOut)
				} else {
					assert.Equal(t, test.wantOut, stdout.String())
				}
			}
			if test.wantStderr != "" {
				assert.Contains(t, stderr.String(), test.wantStderr)
			}
		})
	}
}

func skipUnlessCompiled(t *testing.T, kinds ...tc.Kind) {
	t.Helper()
	for _, k := range kinds {
		if _, err := tc.Lookup(k); err != nil {
			t.Skipf("%v is not compiled in", k)
		}
	}
}
