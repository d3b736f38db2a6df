package core

// Manual jog path: direct switch-driven stepping. This path bypasses the
// commanded/queued step counts entirely; holding a switch just streams
// pulses at the pot-selected rate for as long as it is held.

// manualTick reads the forward/reverse switch pair for each axis and
// emits one pulse per axis with exactly one switch pressed. The switches
// are pulled up, so a pressed switch reads low. Both or neither pressed
// is a no-op for that axis, not an error.
func (c *Controller) manualTick(speed ADCValue) {
	var pulsed [NumAxes]bool
	any := false
	for i := 0; i < NumAxes; i++ {
		forward := !c.gpio.ReadPin(c.pins.Forward[i])
		reverse := !c.gpio.ReadPin(c.pins.Reverse[i])
		if forward == reverse {
			continue
		}
		c.setPin(c.pins.Dir[i], forward)
		c.setPin(c.pins.Step[i], true)
		pulsed[i] = true
		any = true
	}
	if !any {
		return
	}

	c.clock.Sleep(StepPulseWidth)
	for i := 0; i < NumAxes; i++ {
		if pulsed[i] {
			c.setPin(c.pins.Step[i], false)
		}
	}
	c.clock.Sleep(stepDelay(speed))
}
