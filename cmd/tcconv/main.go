// Command tcconv converts thermocouple and RTD readings on the host.
//
//	tcconv temp -t K -c 25 -- 4.096 -1.2
//	tcconv volt -t J -F 212 400
//	tcconv table -t T --from -200 --to 400 --step 50
//	tcconv convert -p roaster.yaml bean=8.1 exhaust=11.3
//
// Negative readings must follow "--" so they are not taken for flags.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
)

type env struct {
	out io.Writer
	log *slog.Logger
}

type options struct {
	Debug bool `short:"d" long:"debug" description:"debug logging"`

	Temp    tempCommand    `command:"temp" description:"convert readings in mV to temperatures"`
	Volt    voltCommand    `command:"volt" description:"convert temperatures to expected readings in mV"`
	Table   tableCommand   `command:"table" description:"print a temperature to mV reference table"`
	Convert convertCommand `command:"convert" description:"convert name=mV readings using a channel profile"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	e := &env{out: stdout, log: newLogger(stderr, false)}

	var opts options
	opts.Temp.env = e
	opts.Volt.env = e
	opts.Table.env = e
	opts.Convert.env = e

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "tcconv"
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		e.log = newLogger(stderr, opts.Debug)
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		e.log.Error(err.Error())
		return 1
	}
	return 0
}
