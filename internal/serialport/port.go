package serialport

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

const defaultReadTimeout = 50 * time.Millisecond

// Config describes the serial connection for a live capture.
type Config struct {
	Device      string
	BaudRate    int
	ReadTimeout time.Duration
}

// Open connects to the serial device. Reads return (0, nil) when the timeout
// expires with no bytes; the short timeout keeps the capture loop responsive
// to duration bounds and cancellation while the device is quiet. An open
// failure is fatal to the run.
func Open(cfg Config) (io.ReadCloser, error) {
	mode := &serial.Mode{BaudRate: cfg.BaudRate}
	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}

	timeout := cfg.ReadTimeout
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", cfg.Device, err)
	}

	return port, nil
}
