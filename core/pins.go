package core

// PinMap describes the hardware wiring of the controller: one step and one
// direction output per axis, forward/reverse jog switches per axis, and the
// two analog inputs. Core code never hardcodes pin numbers; platform code
// fills this in.
type PinMap struct {
	Step    [NumAxes]GPIOPin // step pulse outputs
	Dir     [NumAxes]GPIOPin // direction level outputs
	Forward [NumAxes]GPIOPin // jog-forward switches, pulled up, active low
	Reverse [NumAxes]GPIOPin // jog-reverse switches, pulled up, active low

	Speed      ADCChannelID // speed potentiometer input
	ModeSelect ADCChannelID // manual/remote select input
}
