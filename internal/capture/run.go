package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bmscap/internal/csvout"
	"bmscap/internal/frame"
	"bmscap/internal/logging"
)

const defaultChunkSize = 4096

// Options controls a single run of the pipeline.
type Options struct {
	// Strict aborts on the first invalid frame instead of skipping it.
	Strict bool

	// MaxFrames stops the run once this many frames have been attempted.
	// Zero means unbounded. Attempted frames are counted, not only
	// accepted ones, so a stream of rejects still terminates.
	MaxFrames int

	// Duration stops the run once this much wall-clock time has elapsed.
	// Zero means unbounded. Frames already completed by the accumulator
	// when the bound trips are still validated and flushed.
	Duration time.Duration

	// ChunkSize is the read buffer size. Zero selects a default.
	ChunkSize int

	// Progress, when non-nil, receives an update after every attempted
	// frame.
	Progress Reporter
}

// Result summarizes a finished run.
type Result struct {
	Attempted      int
	Accepted       int
	Skipped        int
	Elapsed        time.Duration
	LastDiagnostic string
}

// Run drains src through the frame pipeline into out. Frames are emitted in
// the exact order their terminators appear in the input. A nil error means
// the run ended cleanly: end of input, a bound was reached, or the context
// was canceled. Validation failures only become errors in strict mode;
// write failures are always fatal.
//
// src may return (0, nil) when no bytes are available, as the serial
// transport does on read timeout; the loop treats that as an idle poll and
// rechecks bounds and cancellation.
func Run(ctx context.Context, src io.Reader, out *csvout.Writer, logger *slog.Logger, opts Options) (*Result, error) {
	log := logging.NewComponentLogger(logger, "capture")

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	start := time.Now()
	var deadline time.Time
	if opts.Duration > 0 {
		deadline = start.Add(opts.Duration)
	}

	var acc frame.Accumulator
	res := &Result{}
	buf := make([]byte, chunkSize)

	defer func() {
		res.Elapsed = time.Since(start)
	}()

reading:
	for {
		if ctx.Err() != nil {
			log.Debug("capture canceled, stopping cleanly")
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			log.Debug("duration bound reached", logging.Duration("bound", opts.Duration))
			break
		}
		if opts.MaxFrames > 0 && res.Attempted >= opts.MaxFrames {
			break
		}

		n, err := src.Read(buf)
		if n > 0 {
			for _, raw := range acc.Push(string(buf[:n])) {
				res.Attempted++
				if procErr := processFrame(raw, res, out, log, opts.Strict); procErr != nil {
					return res, procErr
				}
				if opts.Progress != nil {
					opts.Progress.Update(res.Accepted, res.Skipped)
				}
				if opts.MaxFrames > 0 && res.Attempted >= opts.MaxFrames {
					log.Debug("frame-count bound reached", logging.Int("bound", opts.MaxFrames))
					break reading
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return res, fmt.Errorf("%w: read source: %v", ErrInput, err)
		}
	}

	if pending := acc.Pending(); pending != "" {
		// Text after the last terminator never becomes a frame.
		log.Debug("discarding incomplete trailing frame text", logging.Int("bytes", len(pending)))
	}

	return res, nil
}

// processFrame is the error-policy gate between the validator and the
// emitter. Lenient mode reports and skips; strict mode turns the first
// validation failure into a run-fatal error. Emitter failures are fatal in
// both modes.
func processFrame(raw string, res *Result, out *csvout.Writer, log *slog.Logger, strict bool) error {
	rec, err := frame.Parse(raw)
	if err != nil {
		res.Skipped++
		res.LastDiagnostic = fmt.Sprintf("frame %d: %v", res.Attempted, err)
		if strict {
			return fmt.Errorf("%w: frame %d: %v", ErrValidation, res.Attempted, err)
		}
		log.Warn("skipping malformed frame",
			logging.Int(logging.FieldFrame, res.Attempted),
			logging.Error(err),
		)
		return nil
	}

	if err := out.WriteRow(rec.Row(res.Attempted)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	res.Accepted++
	return nil
}
