package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bmscap/internal/capture"
	"bmscap/internal/serialport"
)

func newCaptureCommand(ctx *commandContext) *cobra.Command {
	var port string
	var outputPath string
	var baudRate int
	var durationText string
	var maxFrames int
	var waitDevice bool
	var faultSource string
	var strict bool
	var noProgress bool
	var noSessionLog bool

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture frames live from a serial port into CSV",
		Long: "Capture frames live from a serial port into CSV.\n\n" +
			"The capture runs until end of input, a --duration or --max-frames\n" +
			"bound is reached, or Ctrl-C; all three end the run cleanly with a\n" +
			"summary. Frame counts include malformed frames that were skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			device := strings.TrimSpace(port)
			if device == "" {
				device = cfg.Serial.Port
			}
			if device == "" {
				return fmt.Errorf("%w: no serial port given (use --port or set serial.port)", capture.ErrConfiguration)
			}

			baud := baudRate
			if baud == 0 {
				baud = cfg.Serial.BaudRate
			}

			var duration time.Duration
			if durationText != "" {
				duration, err = capture.ParseDuration(durationText)
				if err != nil {
					return err
				}
			}

			if waitDevice {
				timeout := time.Duration(cfg.Serial.WaitDeviceTimeout) * time.Second
				if err := serialport.WaitForDevice(cmd.Context(), logger, device, timeout); err != nil {
					return fmt.Errorf("%w: %v", capture.ErrInput, err)
				}
			}

			conn, err := serialport.Open(serialport.Config{
				Device:      device,
				BaudRate:    baud,
				ReadTimeout: time.Duration(cfg.Serial.ReadTimeoutMS) * time.Millisecond,
			})
			if err != nil {
				return fmt.Errorf("%w: %v", capture.ErrInput, err)
			}
			defer conn.Close()

			return runPipeline(cmd.Context(), ctx, runParams{
				mode:        "capture",
				source:      device,
				output:      outputPath,
				reader:      conn,
				faultSource: faultSource,
				sessionLog:  !noSessionLog,
				opts: capture.Options{
					Strict:    strict,
					MaxFrames: maxFrames,
					Duration:  duration,
					Progress:  capture.NewProgress(noProgress, maxFrames, duration),
				},
			})
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Serial port (example: /dev/ttyUSB0)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path")
	cmd.Flags().IntVar(&baudRate, "baud", 0, "Baud rate (default from config)")
	cmd.Flags().StringVar(&durationText, "duration", "", "Capture duration bound (examples: 20s, 5m, 4h)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 0, "Maximum number of frames to capture")
	cmd.Flags().BoolVar(&waitDevice, "wait-device", false, "Wait for the serial device to appear before opening")
	cmd.Flags().StringVar(&faultSource, "fault-source", "", "Firmware source used to extract fault column names")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first malformed frame instead of skipping it")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the live progress display")
	cmd.Flags().BoolVar(&noSessionLog, "no-session-log", false, "Do not record this run in the session journal")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
