package capture

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter receives frame-count updates while a run is in flight.
type Reporter interface {
	Update(accepted, skipped int)
	Finish()
}

// NewProgress returns a spinner-style progress reporter on stderr, or nil
// when progress is disabled or stderr is not a terminal. Logging also goes
// to stderr, so the bar redraws on its own line rather than fighting log
// output on a pipe.
func NewProgress(disabled bool, maxFrames int, duration time.Duration) Reporter {
	if disabled {
		return nil
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("capturing"),
		progressbar.OptionThrottle(250*time.Millisecond),
	)
	return &spinnerReporter{bar: bar, start: time.Now(), maxFrames: maxFrames, duration: duration}
}

type spinnerReporter struct {
	bar       *progressbar.ProgressBar
	start     time.Time
	maxFrames int
	duration  time.Duration
}

func (p *spinnerReporter) Update(accepted, skipped int) {
	elapsed := time.Since(p.start)
	desc := fmt.Sprintf("capturing frames=%d skipped=%d elapsed=%.1fs", accepted, skipped, elapsed.Seconds())
	if p.duration > 0 {
		remaining := p.duration - elapsed
		if remaining < 0 {
			remaining = 0
		}
		desc += fmt.Sprintf(" remaining=%.1fs", remaining.Seconds())
	}
	if p.maxFrames > 0 {
		desc += fmt.Sprintf(" target=%d/%d", accepted+skipped, p.maxFrames)
	}
	p.bar.Describe(desc)
	_ = p.bar.Add(1)
}

func (p *spinnerReporter) Finish() {
	_ = p.bar.Finish()
	fmt.Fprintln(os.Stderr)
}
