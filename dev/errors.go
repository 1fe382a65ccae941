package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoChannels     = Error("no channels")
	ErrInvalidChannel = Error("channel needs a sampler and an approximator")
	ErrInvalidSamples = Error("sample count must be positive")
	ErrInvalidIndex   = Error("invalid channel index")
	ErrInvalidLevel   = Error("filter level exceeds 100")
	ErrInvalidPoints  = Error("calibration points must differ")
	ErrNotInvertible  = Error("calibration cannot be inverted")
)
