//go:build linux

package main

import (
	"flag"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"triax/config"
	"triax/core"
	"triax/drivers/raspi"
	"triax/serial"
)

var (
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	configPath = flag.String("config", "", "JSON configuration file")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to read config file")
		}
		cfg, err = config.Load(data)
		if err != nil {
			log.WithError(err).Fatal("Failed to parse config file")
		}
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	gpio, err := raspi.OpenGPIO()
	if err != nil {
		log.WithError(err).Fatal("Failed to open GPIO")
	}
	defer gpio.Close()

	adc, err := raspi.OpenMCP3008()
	if err != nil {
		log.WithError(err).Fatal("Failed to open MCP3008")
	}
	defer adc.Close()

	portCfg := serial.DefaultConfig(cfg.Device)
	portCfg.Baud = cfg.Baud
	port, err := serial.Open(portCfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to open serial port")
	}
	defer port.Close()

	ctrl, err := core.NewController(gpio, adc, core.RealClock{}, cfg.PinMap())
	if err != nil {
		log.WithError(err).Fatal("Failed to configure controller pins")
	}
	ctrl.SetDebugWriter(func(s string) { log.Debug(s) })

	log.WithFields(log.Fields{
		"device": cfg.Device,
		"baud":   cfg.Baud,
	}).Info("Actuator controller ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	run(ctrl, port, sigCh)
	log.Info("Shutting down")
}

// run is the cooperative control loop: poll received bytes, run one
// controller tick, flush any response text. One tick always finishes
// before the next begins; the serial read timeout keeps the poll from
// blocking the tick rate.
func run(ctrl *core.Controller, port serial.Port, sigCh <-chan os.Signal) {
	buf := make([]byte, 64)
	for {
		select {
		case <-sigCh:
			return
		default:
		}

		n, err := port.Read(buf)
		if err != nil {
			log.WithError(err).Warn("Serial read failed")
		}
		for _, b := range buf[:n] {
			ctrl.ProcessByte(b)
		}

		ctrl.Tick()

		if out := ctrl.GetOutput(); out != nil {
			if _, err := port.Write(out); err != nil {
				log.WithError(err).Warn("Serial write failed")
			}
		}
	}
}
