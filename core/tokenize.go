package core

const (
	// MaxLineLen is the received line buffer capacity in bytes. Bytes
	// beyond this on a single line are dropped until the terminator.
	MaxLineLen = 64

	// MaxTokens is the token capacity per line. Extra tokens on a line
	// are silently truncated.
	MaxTokens = 20
)

// lineBuffer accumulates received bytes until a carriage return completes
// a command line. Overlong lines are truncated rather than overflowing.
type lineBuffer struct {
	buf []byte
}

// feed consumes one received byte. When b completes a line, feed returns
// the line contents (without the terminator) and true. Line feeds are
// treated the same as carriage returns so CRLF terminals work unchanged.
func (l *lineBuffer) feed(b byte) (string, bool) {
	if b == '\r' || b == '\n' {
		line := string(l.buf)
		l.buf = l.buf[:0]
		return line, true
	}
	if len(l.buf) < MaxLineLen {
		l.buf = append(l.buf, b)
	}
	return "", false
}

// Tokenize splits a command line on the single-space delimiter into at
// most MaxTokens tokens. Consecutive spaces yield empty tokens and an
// empty line yields a single empty token; token case is preserved.
func Tokenize(line string) []string {
	tokens := make([]string, 0, 4)
	start := 0
	for i := 0; i <= len(line); i++ {
		if i == len(line) || line[i] == ' ' {
			if len(tokens) == MaxTokens {
				break
			}
			tokens = append(tokens, line[start:i])
			start = i + 1
		}
	}
	return tokens
}
