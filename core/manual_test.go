package core

import "testing"

func manualMode(adc *mockADC) {
	adc.values[testPins.ModeSelect] = 0
}

func TestManualForwardJog(t *testing.T) {
	c, gpio, adc, _ := newTestController(t)
	manualMode(adc)

	gpio.press(testPins.Forward[1])
	c.Tick()
	c.Tick()
	c.Tick()

	if got := gpio.rises[testPins.Step[1]]; got != 3 {
		t.Errorf("axis 1 pulses = %d, want 3", got)
	}
	if !gpio.level[testPins.Dir[1]] {
		t.Error("forward jog did not set forward direction")
	}
	for _, axis := range []int{0, 2} {
		if gpio.rises[testPins.Step[axis]] != 0 {
			t.Errorf("idle axis %d pulsed", axis)
		}
	}
}

func TestManualReverseJog(t *testing.T) {
	c, gpio, adc, _ := newTestController(t)
	manualMode(adc)

	gpio.press(testPins.Reverse[0])
	c.Tick()

	if gpio.rises[testPins.Step[0]] != 1 {
		t.Errorf("axis 0 pulses = %d, want 1", gpio.rises[testPins.Step[0]])
	}
	if gpio.level[testPins.Dir[0]] {
		t.Error("reverse jog set forward direction")
	}
}

// Both switches pressed is ambiguous input and must be a no-op, exactly
// like neither pressed.
func TestManualAmbiguousSwitchesAreNoOp(t *testing.T) {
	c, gpio, adc, clock := newTestController(t)
	manualMode(adc)

	gpio.press(testPins.Forward[2])
	gpio.press(testPins.Reverse[2])
	c.Tick()

	if gpio.rises[testPins.Step[2]] != 0 {
		t.Error("ambiguous switch state emitted a pulse")
	}
	if len(clock.slept) != 0 {
		t.Error("idle manual tick performed waits")
	}
}

func TestManualJogBypassesStepQueues(t *testing.T) {
	c, gpio, adc, _ := newTestController(t)
	manualMode(adc)

	gpio.press(testPins.Forward[0])
	for i := 0; i < 5; i++ {
		c.Tick()
	}

	if c.commanded != [NumAxes]int32{} {
		t.Errorf("manual jog touched commanded steps: %v", c.commanded)
	}
	if c.queued != [NumAxes]uint32{} {
		t.Errorf("manual jog touched queued steps: %v", c.queued)
	}
	if c.state != StateIdle {
		t.Error("manual jog changed run state")
	}
}

func TestManualJogAppliesSpeedDelay(t *testing.T) {
	c, gpio, adc, clock := newTestController(t)
	manualMode(adc)
	adc.values[testPins.Speed] = ADCFullScale

	gpio.press(testPins.Forward[0])
	c.Tick()

	if len(clock.slept) != 2 {
		t.Fatalf("expected pulse hold and inter-step delay, got %v", clock.slept)
	}
	if clock.slept[0] != StepPulseWidth || clock.slept[1] != minStepDelay {
		t.Errorf("waits = %v, want [%v %v]", clock.slept, StepPulseWidth, minStepDelay)
	}
}
