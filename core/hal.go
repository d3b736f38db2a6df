package core

// GPIOPin identifies a hardware GPIO pin number.
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output driven low.
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with
	// pull-up resistor. Switch inputs read high when idle.
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false).
	SetPin(pin GPIOPin, value bool) error

	// ReadPin reads the current pin state.
	ReadPin(pin GPIOPin) bool
}

// ADCChannelID identifies a logical ADC channel.
type ADCChannelID uint8

// ADCValue is the "raw" ADC reading as seen by the rest of the controller.
// Convention here: 16-bit value, even if underlying hardware resolves
// fewer bits (implementations left-shift up to full scale).
type ADCValue uint16

// ADCFullScale is the maximum ADCValue.
const ADCFullScale ADCValue = 0xFFFF

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set the pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw performs a one-shot sample from the given channel.
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
