package core

import "time"

// Motion executor: seeds the per-axis step queues at GO and runs them
// down one step per tick until every axis is drained.

// StepPulseWidth is how long step lines are held high per pulse. The
// downstream driver modules register the rising edge; the hold just has
// to exceed their minimum pulse time.
const StepPulseWidth = 1 * time.Millisecond

// Inter-tick delay range the speed potentiometer maps onto. Full scale
// selects the fastest stepping rate.
const (
	minStepDelay = 200 * time.Microsecond
	maxStepDelay = 2 * time.Millisecond
)

// startMove commits the commanded step counts as a move, all axes at
// once: the queue takes the magnitude, the direction lines latch the
// sign. The direction outputs are written here and held for the whole
// move. The controller is Running from this point even if every
// commanded count is zero.
func (c *Controller) startMove() {
	for i := 0; i < NumAxes; i++ {
		steps := int64(c.commanded[i])
		c.direction[i] = steps >= 0
		if steps < 0 {
			steps = -steps
		}
		c.queued[i] = uint32(steps)
		c.setPin(c.pins.Dir[i], c.direction[i])
	}
	c.state = StateRunning
	c.debugLog("move start: " + itoa(int(c.queued[0])) + " " +
		itoa(int(c.queued[1])) + " " + itoa(int(c.queued[2])) + " steps")
}

// motionTick emits one step pulse on every axis that still has queued
// steps, decrements those axes, and completes the move once all three
// queues are drained. Axes are not synchronized to finish together; an
// axis commanded for fewer steps simply stops pulsing earlier.
func (c *Controller) motionTick(speed ADCValue) {
	var pulsed [NumAxes]bool
	any := false
	for i := 0; i < NumAxes; i++ {
		if c.queued[i] > 0 {
			c.setPin(c.pins.Step[i], true)
			pulsed[i] = true
			any = true
		}
	}
	if any {
		c.clock.Sleep(StepPulseWidth)
		for i := 0; i < NumAxes; i++ {
			if pulsed[i] {
				c.setPin(c.pins.Step[i], false)
				c.queued[i]--
			}
		}
	}

	if c.queued[0]+c.queued[1]+c.queued[2] == 0 {
		c.state = StateIdle
		c.commanded = [NumAxes]int32{}
		c.respond("Moves complete!")
		c.debugLog("move complete")
		return
	}

	c.clock.Sleep(stepDelay(speed))
}

// readSpeed samples the speed potentiometer. Sampling happens once per
// tick, so turning the pot changes the stepping rate mid-move.
func (c *Controller) readSpeed() ADCValue {
	v, err := c.adc.ReadRaw(c.pins.Speed)
	if err != nil {
		c.debugLog("adc: " + err.Error())
		return 0
	}
	return v
}

// stepDelay maps a raw speed reading onto the inter-tick delay, linearly
// from maxStepDelay at zero to minStepDelay at full scale.
func stepDelay(speed ADCValue) time.Duration {
	span := uint64(maxStepDelay - minStepDelay)
	return maxStepDelay - time.Duration(span*uint64(speed)/uint64(ADCFullScale))
}
