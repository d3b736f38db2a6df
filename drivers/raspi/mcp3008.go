//go:build linux

package raspi

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"triax/core"
)

const mcp3008Channels = 8

// MCP3008 implements core.ADCDriver with an MCP3008 8-channel 10-bit ADC
// on SPI0. Readings are left-shifted to the controller's 16-bit scale.
type MCP3008 struct{}

// OpenMCP3008 claims SPI0 and configures it for the converter. The
// MCP3008 samples correctly anywhere below 1.35MHz at 3.3V supply.
func OpenMCP3008() (*MCP3008, error) {
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		return nil, fmt.Errorf("failed to claim spi0: %w", err)
	}
	rpio.SpiSpeed(1350000)
	rpio.SpiChipSelect(0)
	return &MCP3008{}, nil
}

func (m *MCP3008) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return nil
}

func (m *MCP3008) ConfigureChannel(ch core.ADCChannelID) error {
	if ch >= mcp3008Channels {
		return fmt.Errorf("mcp3008 has no channel %d", ch)
	}
	return nil
}

// ReadRaw performs a single-ended conversion on the given channel.
func (m *MCP3008) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	if ch >= mcp3008Channels {
		return 0, fmt.Errorf("mcp3008 has no channel %d", ch)
	}

	// Start bit, single-ended mode + channel, then one clock-out byte.
	buf := []byte{0x01, 0x80 | byte(ch)<<4, 0x00}
	rpio.SpiExchange(buf)

	raw := uint16(buf[1]&0x03)<<8 | uint16(buf[2])
	return core.ADCValue(raw << 6), nil
}
