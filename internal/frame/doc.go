// Package frame reconstructs and validates BMS chain telemetry frames.
//
// The chain controller emits one frame per device as semicolon-delimited
// text closed by the ENDData terminator. The Accumulator reassembles
// complete frames from arbitrarily chunked input, Parse validates each
// frame against the fixed section layout, and the fault-name helpers
// resolve column names for the 187 diagnostic flags carried per frame.
//
// The section layout is fixed by the device firmware: section order, labels,
// and token counts never vary between frames, which is what lets validation
// run as a single data-driven pass over the layout table.
package frame
