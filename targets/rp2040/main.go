//go:build rp2040

package main

import (
	"machine"
	"time"

	"triax/core"
)

// Pin assignment for the Pico build. Step/dir pairs feed the three
// driver modules; the jog switches are wired to ground with the
// internal pull-ups enabled.
var picoPins = core.PinMap{
	Step:    [core.NumAxes]core.GPIOPin{2, 3, 4},
	Dir:     [core.NumAxes]core.GPIOPin{5, 6, 7},
	Forward: [core.NumAxes]core.GPIOPin{8, 9, 10},
	Reverse: [core.NumAxes]core.GPIOPin{11, 12, 13},

	Speed:      0, // GPIO26: speed potentiometer
	ModeSelect: 1, // GPIO27: manual/remote select
}

// ledBlink blinks the LED a specific number of times for diagnostics
func ledBlink(count int) {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < count; i++ {
		led.High()
		time.Sleep(150 * time.Millisecond)
		led.Low()
		time.Sleep(150 * time.Millisecond)
	}
}

func main() {
	// Commands arrive over USB CDC; the configured baud rate is
	// irrelevant there but the wire protocol is still 115200 8N1 when
	// built for a hardware UART.
	time.Sleep(500 * time.Millisecond)

	ctrl, err := core.NewController(mcuGPIO{}, newMCUADC(), core.RealClock{}, picoPins)
	if err != nil {
		// Misconfigured pins leave nothing to run; signal and halt.
		for {
			ledBlink(3)
			time.Sleep(time.Second)
		}
	}

	// 1 blink: pins configured, controller idle and listening.
	ledBlink(1)

	for {
		for machine.Serial.Buffered() > 0 {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			ctrl.ProcessByte(b)
		}

		ctrl.Tick()

		if out := ctrl.GetOutput(); out != nil {
			machine.Serial.Write(out)
		}
	}
}
