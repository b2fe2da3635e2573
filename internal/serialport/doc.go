// Package serialport opens the live capture transport: a serial connection
// to the chain controller, plus an optional udev-backed wait for the device
// node to appear before opening.
package serialport
