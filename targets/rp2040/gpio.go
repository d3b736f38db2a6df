//go:build rp2040

package main

import (
	"errors"
	"machine"

	"triax/core"
)

// mcuGPIO implements core.GPIODriver using TinyGo's machine package.
// Pin numbers map directly onto the RP2040's GPIO numbering.
type mcuGPIO struct{}

const maxRPPin = 29

func (mcuGPIO) ConfigureOutput(pin core.GPIOPin) error {
	if pin > maxRPPin {
		return errors.New("pin outside RP2040 GPIO range")
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return nil
}

func (mcuGPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	if pin > maxRPPin {
		return errors.New("pin outside RP2040 GPIO range")
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (mcuGPIO) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (mcuGPIO) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}
