package serial

import (
	"io"
)

// Port represents a serial port interface.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - On-chip UART/USB-CDC for TinyGo targets
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyAMA0", "COM3")
	Device string

	// Baud rate; the command protocol runs 8N1 at 115200
	Baud int

	// Read timeout in milliseconds. The control loop relies on a short
	// timeout to poll for bytes between ticks, so 0 (blocking) is only
	// useful for interactive tools.
	ReadTimeout int
}

// DefaultConfig returns a configuration for the command protocol
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 5,
	}
}
