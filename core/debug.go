package core

// DebugWriter is a function type for writing debug messages.
// Platforms redirect debug output to UART, a logger, etc.
type DebugWriter func(string)

// SetDebugWriter sets the debug output function for this controller.
func (c *Controller) SetDebugWriter(writer DebugWriter) {
	c.debug = writer
}

func (c *Controller) debugLog(s string) {
	if c.debug != nil {
		c.debug(s)
	}
}
