package core

// ModeThreshold is the half-full-scale compare point for the mode select
// input. Readings strictly above it select Remote; the midpoint itself
// selects Manual. There is no debounce or hysteresis: the mode is
// recomputed from scratch every tick.
const ModeThreshold ADCValue = 0x7FFF

// readMode arbitrates the input mode for the current tick. The chosen
// mode only gates which path is evaluated this tick; a flip never clears
// queued steps, so a move in progress resumes when Remote is reselected.
//
// The polarity of the select input relative to the front-panel labeling
// has not been verified against hardware; see TestModeSelectPolarity.
func (c *Controller) readMode() Mode {
	v, err := c.adc.ReadRaw(c.pins.ModeSelect)
	if err != nil {
		c.debugLog("adc: " + err.Error())
		return ModeManual
	}
	if v > ModeThreshold {
		return ModeRemote
	}
	return ModeManual
}
