package core

// Three-axis actuator controller core: command interpretation and the
// motion-execution state machine. All hardware access goes through the
// GPIODriver/ADCDriver interfaces and all waits go through the Clock, so
// the whole controller runs under test with mock drivers.

// NumAxes is the number of independently controlled actuators.
const NumAxes = 3

// RunState tracks whether a commanded move is in progress.
type RunState uint8

const (
	StateIdle RunState = iota
	StateRunning
)

// Mode selects which input path drives the actuators for one tick.
type Mode uint8

const (
	ModeManual Mode = iota
	ModeRemote
)

const crlf = "\r\n"

// Controller owns all mutable controller state. It is not safe for
// concurrent use; the control loop is a single goroutine by design and
// one tick always runs to completion before the next begins.
type Controller struct {
	gpio  GPIODriver
	adc   ADCDriver
	clock Clock
	pins  PinMap

	// Commanded step counts, as last set via A1/A2/A3. Sign encodes
	// direction. Reset to zero when a move completes.
	commanded [NumAxes]int32

	// Steps remaining for the move in progress, seeded from
	// abs(commanded) at GO. Each axis counts down independently.
	queued [NumAxes]uint32

	// Direction levels latched at GO, held for the whole move.
	// true selects the non-negative polarity.
	direction [NumAxes]bool

	state RunState

	// Received bytes not yet consumed. While a move is running the
	// pending bytes are held here unread, so a line received mid-move
	// dispatches only after the move completes.
	rx   []byte
	line lineBuffer

	out   []byte
	debug DebugWriter
}

// NewController configures the controller's pins through the supplied
// drivers and returns a controller in the idle state.
func NewController(gpio GPIODriver, adc ADCDriver, clock Clock, pins PinMap) (*Controller, error) {
	c := &Controller{
		gpio:  gpio,
		adc:   adc,
		clock: clock,
		pins:  pins,
	}

	for i := 0; i < NumAxes; i++ {
		if err := gpio.ConfigureOutput(pins.Step[i]); err != nil {
			return nil, err
		}
		if err := gpio.ConfigureOutput(pins.Dir[i]); err != nil {
			return nil, err
		}
		if err := gpio.ConfigureInputPullUp(pins.Forward[i]); err != nil {
			return nil, err
		}
		if err := gpio.ConfigureInputPullUp(pins.Reverse[i]); err != nil {
			return nil, err
		}
	}
	if err := adc.ConfigureChannel(pins.Speed); err != nil {
		return nil, err
	}
	if err := adc.ConfigureChannel(pins.ModeSelect); err != nil {
		return nil, err
	}

	return c, nil
}

// ProcessByte feeds one received serial byte to the controller. Bytes are
// only buffered here; lines are tokenized and dispatched from idle ticks.
func (c *Controller) ProcessByte(b byte) {
	c.rx = append(c.rx, b)
}

// State returns the current run state.
func (c *Controller) State() RunState {
	return c.state
}

// Tick runs one pass of the control loop: arbitrate the input mode, then
// either run the manual jog path or advance the serial-command path. The
// speed potentiometer is sampled once per tick and shared by both paths.
func (c *Controller) Tick() {
	speed := c.readSpeed()

	if c.readMode() == ModeManual {
		c.manualTick(speed)
		return
	}

	if c.state == StateRunning {
		c.motionTick(speed)
		return
	}
	c.drainInput()
}

// drainInput consumes buffered receive bytes, dispatching each completed
// line in order. Dispatching stops as soon as a command starts a move so
// later lines wait for the move to finish.
func (c *Controller) drainInput() {
	for len(c.rx) > 0 && c.state == StateIdle {
		b := c.rx[0]
		c.rx = c.rx[1:]
		if line, ok := c.line.feed(b); ok && line != "" {
			c.dispatchLine(line)
		}
	}
}

func (c *Controller) dispatchLine(line string) {
	cmd, err := ParseCommand(Tokenize(line))
	if err != nil {
		c.respond("Unrecognized command!")
		c.debugLog("rx: " + line + " (unrecognized)")
		return
	}
	c.apply(cmd)
}

func (c *Controller) apply(cmd Command) {
	switch cmd.Kind {
	case CmdSetSteps:
		c.commanded[cmd.Axis] = cmd.Steps
		c.respond("A" + itoa(cmd.Axis+1) + " set to " + itoa(int(cmd.Steps)))
	case CmdStart:
		c.startMove()
		c.respond("Moving!")
	case CmdReport:
		for i := 0; i < NumAxes; i++ {
			c.respond("A" + itoa(i+1) + " = " + itoa(int(c.commanded[i])))
		}
	}
}

// respond appends one CRLF-terminated status line to the output buffer.
func (c *Controller) respond(s string) {
	c.out = append(c.out, s...)
	c.out = append(c.out, crlf...)
}

// GetOutput returns any pending response text and clears the buffer.
func (c *Controller) GetOutput() []byte {
	if len(c.out) == 0 {
		return nil
	}
	out := make([]byte, len(c.out))
	copy(out, c.out)
	c.out = c.out[:0]
	return out
}

// setPin drives a configured output; driver errors on a configured pin
// are reported on the debug channel rather than aborting a tick.
func (c *Controller) setPin(pin GPIOPin, value bool) {
	if err := c.gpio.SetPin(pin, value); err != nil {
		c.debugLog("gpio: " + err.Error())
	}
}
