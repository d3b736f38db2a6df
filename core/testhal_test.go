package core

import (
	"testing"
	"time"
)

// mockGPIO is a test implementation of GPIODriver. It tracks pin levels
// and counts rising edges so tests can assert exact pulse counts.
type mockGPIO struct {
	level map[GPIOPin]bool
	rises map[GPIOPin]int
}

func newMockGPIO() *mockGPIO {
	return &mockGPIO{
		level: make(map[GPIOPin]bool),
		rises: make(map[GPIOPin]int),
	}
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) error {
	m.level[pin] = false
	return nil
}

func (m *mockGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	// Pulled-up inputs read high when idle.
	m.level[pin] = true
	return nil
}

func (m *mockGPIO) SetPin(pin GPIOPin, value bool) error {
	if value && !m.level[pin] {
		m.rises[pin]++
	}
	m.level[pin] = value
	return nil
}

func (m *mockGPIO) ReadPin(pin GPIOPin) bool {
	return m.level[pin]
}

// press simulates holding a pulled-up switch down.
func (m *mockGPIO) press(pin GPIOPin)   { m.level[pin] = false }
func (m *mockGPIO) release(pin GPIOPin) { m.level[pin] = true }

// mockADC is a test implementation of ADCDriver with settable readings.
type mockADC struct {
	values map[ADCChannelID]ADCValue
}

func newMockADC() *mockADC {
	return &mockADC{values: make(map[ADCChannelID]ADCValue)}
}

func (m *mockADC) ConfigureChannel(ch ADCChannelID) error { return nil }

func (m *mockADC) ReadRaw(ch ADCChannelID) (ADCValue, error) {
	return m.values[ch], nil
}

// fakeClock records requested sleeps instead of blocking.
type fakeClock struct {
	slept []time.Duration
}

func (f *fakeClock) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
}

var testPins = PinMap{
	Step:       [NumAxes]GPIOPin{2, 3, 4},
	Dir:        [NumAxes]GPIOPin{5, 6, 7},
	Forward:    [NumAxes]GPIOPin{8, 9, 10},
	Reverse:    [NumAxes]GPIOPin{11, 12, 13},
	Speed:      0,
	ModeSelect: 1,
}

// newTestController builds a controller on mock hardware, defaulting to
// remote mode at mid-scale speed.
func newTestController(t *testing.T) (*Controller, *mockGPIO, *mockADC, *fakeClock) {
	t.Helper()

	gpio := newMockGPIO()
	adc := newMockADC()
	clock := &fakeClock{}
	adc.values[testPins.ModeSelect] = ADCFullScale
	adc.values[testPins.Speed] = 0x8000

	c, err := NewController(gpio, adc, clock, testPins)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return c, gpio, adc, clock
}

// sendLine feeds a CR-terminated command line into the receive buffer.
func sendLine(c *Controller, line string) {
	for i := 0; i < len(line); i++ {
		c.ProcessByte(line[i])
	}
	c.ProcessByte('\r')
}
