package artisan

// MaxLine is the longest command line Lines accepts.
const MaxLine = 64

// Lines assembles serial input into command lines in a fixed buffer.
// A line longer than MaxLine is dropped up to its terminating newline.
type Lines struct {
	buf      [MaxLine]byte
	n        int
	overflow bool
}

// Feed adds one byte. It returns the line once b terminates it,
// and ErrLineTooLong in place of an overlong line.
func (l *Lines) Feed(b byte) (string, error) {
	if b != '\n' && b != '\r' {
		if l.n == len(l.buf) {
			l.overflow = true
			return "", nil
		}
		l.buf[l.n] = b
		l.n++
		return "", nil
	}

	line, overflow := string(l.buf[:l.n]), l.overflow
	l.n, l.overflow = 0, false
	if overflow {
		return "", ErrLineTooLong
	}
	return line, nil
}
