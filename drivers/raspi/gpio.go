//go:build linux

// Package raspi implements the controller's hardware interfaces on the
// Raspberry Pi GPIO header using go-rpio, with an MCP3008 over SPI0
// providing the analog inputs the Pi lacks.
package raspi

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"triax/core"
)

const maxBCMPin = 27

// GPIO implements core.GPIODriver on the Pi's memory-mapped GPIO.
// Pin numbers are BCM numbering.
type GPIO struct{}

// OpenGPIO maps the GPIO registers. Callers must Close when done.
func OpenGPIO() (*GPIO, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to map gpio memory: %w", err)
	}
	return &GPIO{}, nil
}

func (g *GPIO) Close() error {
	return rpio.Close()
}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	if pin > maxBCMPin {
		return fmt.Errorf("pin %d outside BCM header range", pin)
	}
	p := rpio.Pin(pin)
	p.Output()
	p.Low()
	return nil
}

func (g *GPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	if pin > maxBCMPin {
		return fmt.Errorf("pin %d outside BCM header range", pin)
	}
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	p := rpio.Pin(pin)
	if value {
		p.High()
	} else {
		p.Low()
	}
	return nil
}

func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	return rpio.Pin(pin).Read() == rpio.High
}
