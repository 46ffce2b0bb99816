package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gpstime/internal/config"
	"gpstime/internal/serialport"
	"gpstime/internal/sysclock"
	"gpstime/internal/timesync"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var baud int

	cmd := &cobra.Command{
		Use:   "gpstime <device>",
		Short: "Set the system clock from a serial GPS receiver",
		Long: `Read NMEA sentences from a serial GPS receiver, decode an absolute
UTC timestamp, and set the system clock once.

$GPZDA/$GNZDA sentences carry a full date and time and are used as soon
as one arrives. If five $GPGGA fixes go by without one, the time of day
from the fifth $GPGGA is combined with the current UTC date instead.

Example:
  gpstime /dev/ttyACM0
  gpstime -r 38400 /dev/ttyUSB0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], baud)
		},
	}

	cmd.Flags().IntVarP(&baud, "baud-rate", "r", 0, "serial baud rate override")

	return cmd
}

func run(device string, baud int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if baud == 0 {
		baud = cfg.Baud
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	port, err := serialport.Open(device, baud)
	if err != nil {
		return fmt.Errorf("opening gps device %s: %w", device, err)
	}
	defer port.Close()
	log.Debug().Str("device", device).Int("baud", baud).Msg("gps device open")

	driver := &timesync.Driver{
		Clock:   sysclock.New(),
		Log:     log,
		Timeout: time.Duration(cfg.ReadTimeout),
	}
	if err := driver.Run(port); err != nil {
		return err
	}

	fmt.Println("Successfully set time!")
	return nil
}
