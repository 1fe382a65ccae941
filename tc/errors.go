package tc

// Error is a constant error value.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnknownKind  = Error("unknown sensor type")
	ErrNotCompiled  = Error("sensor type not compiled in")
	ErrInvalidSlope = Error("linear slope must be positive")
)
