// Package capture drives the frame pipeline for one run: it drains a byte
// source through the accumulator, validates each completed frame, and emits
// accepted frames to the CSV writer in arrival order.
//
// The run loop enforces the error policy (lenient skips versus strict
// abort), the optional duration and frame-count bounds, and holds an
// advisory lock on the output file so two runs cannot interleave rows in
// one CSV. Memory stays bounded regardless of capture length: only the
// accumulator's partial-frame buffer and the current record are retained.
package capture
