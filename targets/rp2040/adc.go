//go:build rp2040

package main

import (
	"errors"
	"machine"

	"triax/core"
)

// mcuADC implements core.ADCDriver on the RP2040's on-chip ADC. Channel
// 0 is GPIO26, channel 1 is GPIO27. machine.ADC already scales the
// 12-bit conversions up to the 16-bit convention core expects.
type mcuADC struct {
	channels map[core.ADCChannelID]machine.ADC
}

func newMCUADC() *mcuADC {
	machine.InitADC()
	return &mcuADC{channels: make(map[core.ADCChannelID]machine.ADC)}
}

func adcChannelPin(ch core.ADCChannelID) (machine.Pin, bool) {
	switch ch {
	case 0:
		return machine.ADC0, true
	case 1:
		return machine.ADC1, true
	case 2:
		return machine.ADC2, true
	}
	return 0, false
}

func (a *mcuADC) ConfigureChannel(ch core.ADCChannelID) error {
	pin, ok := adcChannelPin(ch)
	if !ok {
		return errors.New("no ADC channel on this pin")
	}
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	a.channels[ch] = adc
	return nil
}

func (a *mcuADC) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	adc, ok := a.channels[ch]
	if !ok {
		return 0, errors.New("ADC channel not configured")
	}
	return core.ADCValue(adc.Get()), nil
}
