// Package sessionlog records capture runs in SQLite so past sessions can be
// listed from the CLI.
//
// The journal is best-effort bookkeeping: a run proceeds unchanged when the
// database cannot be opened or written, and callers log journal failures as
// warnings rather than propagating them.
package sessionlog
