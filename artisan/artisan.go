// Package artisan answers the TC4 style serial commands that the Artisan
// roasting software sends to a thermocouple board.
//
// Commands are ';' separated; the console also accepts spaces:
//
//	READ           -> ambient,t1[,t2,...] in the current units
//	UNITS;F        -> report in Fahrenheit (C for Celsius)
//	CHAN;1200      -> output slots 1 and 2 read physical channels 1 and 2
//	FILT;85;85     -> smoothing level in percent per physical channel
package artisan

import (
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/itohio/thermocouple/tc"
)

// Error is a protocol error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnknownCommand = Error("unknown command")
	ErrBadArgument    = Error("bad argument")
	ErrLineTooLong    = Error("line too long")
)

// Slots is the number of logical output slots Artisan reads.
const Slots = 4

// Reader is the acquisition side; dev.Thermometer implements it.
type Reader interface {
	Read(buf []float32) []float32
	Ambient() float32
	SetFilter(i int, level uint8) error
	Len() int
}

// Handler keeps the protocol state between commands.
type Handler struct {
	r          Reader
	fahrenheit bool
	slots      [Slots]uint8 // 1-based physical channel per slot, 0 = off
	buf        []float32
	out        []byte
}

// NewHandler maps the first channels to the output slots in order and reports in Celsius.
func NewHandler(r Reader) *Handler {
	h := &Handler{
		r:   r,
		buf: make([]float32, r.Len()),
	}
	for i := 0; i < Slots && i < r.Len(); i++ {
		h.slots[i] = uint8(i + 1)
	}
	return h
}

func (h *Handler) Fahrenheit() bool { return h.fahrenheit }

// Mapping returns the current slot to channel mapping in CHAN form.
func (h *Handler) Mapping() string {
	var b [Slots]byte
	for i, s := range h.slots {
		b[i] = '0' + s
	}
	return string(b[:])
}

// Handle executes one command line and returns the reply without a line terminator.
// Blank lines produce an empty reply.
func (h *Handler) Handle(line string) (string, error) {
	args, err := shlex.Split(strings.ReplaceAll(line, ";", " "))
	if err != nil {
		return "", ErrBadArgument
	}
	if len(args) == 0 {
		return "", nil
	}

	switch strings.ToUpper(args[0]) {
	case "READ":
		return h.read(), nil
	case "UNITS":
		return h.units(args[1:])
	case "CHAN":
		return h.channels(args[1:])
	case "FILT":
		return h.filt(args[1:])
	}
	return "", ErrUnknownCommand
}

func (h *Handler) temp(c float32) float32 {
	if h.fahrenheit {
		return tc.CtoF(c)
	}
	return c
}

func (h *Handler) read() string {
	temps := h.r.Read(h.buf)

	h.out = h.out[:0]
	h.out = strconv.AppendFloat(h.out, float64(h.temp(h.r.Ambient())), 'f', 1, 32)
	for _, s := range h.slots {
		if s == 0 {
			continue
		}
		h.out = append(h.out, ',')
		h.out = strconv.AppendFloat(h.out, float64(h.temp(temps[s-1])), 'f', 1, 32)
	}
	return string(h.out)
}

func (h *Handler) units(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrBadArgument
	}
	switch strings.ToUpper(args[0]) {
	case "C":
		h.fahrenheit = false
		return "#OK Celsius", nil
	case "F":
		h.fahrenheit = true
		return "#OK Fahrenheit", nil
	}
	return "", ErrBadArgument
}

func (h *Handler) channels(args []string) (string, error) {
	if len(args) != 1 || len(args[0]) == 0 || len(args[0]) > Slots {
		return "", ErrBadArgument
	}

	var slots [Slots]uint8
	for i, c := range []byte(args[0]) {
		if c < '0' || c > '9' || int(c-'0') > h.r.Len() {
			return "", ErrBadArgument
		}
		slots[i] = c - '0'
	}
	h.slots = slots
	return "# Active channels set to " + h.Mapping(), nil
}

func (h *Handler) filt(args []string) (string, error) {
	if len(args) == 0 || len(args) > h.r.Len() {
		return "", ErrBadArgument
	}

	levels := make([]uint8, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 8)
		if err != nil || v > 100 {
			return "", ErrBadArgument
		}
		levels[i] = uint8(v)
	}
	for i, l := range levels {
		if err := h.r.SetFilter(i, l); err != nil {
			return "", err
		}
	}
	return "#OK", nil
}
