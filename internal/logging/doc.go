// Package logging builds the slog loggers used across bmscap.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for captures that run under supervision. Helper constructors
// and standardized field keys keep structured attributes consistent between
// the capture pipeline, the serial transport, and the CLI.
package logging
