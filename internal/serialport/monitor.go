package serialport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pilebones/go-udev/netlink"

	"bmscap/internal/logging"
)

// WaitForDevice blocks until the serial device node exists, watching udev
// netlink events for tty add actions. It returns immediately when the node
// is already present, and fails once the timeout expires (zero means wait
// indefinitely) or the context is canceled.
func WaitForDevice(ctx context.Context, logger *slog.Logger, device string, timeout time.Duration) error {
	log := logging.NewComponentLogger(logger, "port-monitor")

	if deviceExists(device) {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return fmt.Errorf("connect to netlink socket: %w", err)
	}
	defer conn.Close()

	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, ttyMatcher())
	defer close(monitorQuit)

	log.Info("waiting for serial device",
		logging.String(logging.FieldPort, device),
		logging.Duration("timeout", timeout),
	)

	var expire <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expire = timer.C
	}

	// Poll alongside netlink: the node can appear without a matching
	// uevent, e.g. when it existed but permissions were still settling.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-expire:
			return fmt.Errorf("serial device %s did not appear within %s", device, timeout)
		case <-ticker.C:
			if deviceExists(device) {
				log.Info("serial device appeared", logging.String(logging.FieldPort, device))
				return nil
			}
		case uevent := <-queue:
			if eventDeviceName(uevent) == device {
				log.Info("serial device appeared", logging.String(logging.FieldPort, device))
				return nil
			}
		case err := <-errs:
			log.Warn("netlink monitor error", logging.Error(err))
		}
	}
}

func deviceExists(device string) bool {
	_, err := os.Stat(device)
	return err == nil
}

// ttyMatcher matches add/change events for tty-class devices, which covers
// both built-in UARTs and USB serial adapters.
func ttyMatcher() netlink.Matcher {
	action := "add|change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "tty",
		},
	})
	return rules
}

// eventDeviceName gets the device path from a uevent.
func eventDeviceName(uevent netlink.UEvent) string {
	if devname := uevent.Env["DEVNAME"]; devname != "" {
		if strings.HasPrefix(devname, "/") {
			return devname
		}
		return "/dev/" + devname
	}

	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	return "/dev/" + parts[len(parts)-1]
}
