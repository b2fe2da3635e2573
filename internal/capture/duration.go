package capture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([smhSMH]?)\s*$`)

// ParseDuration parses a capture duration bound such as "20s", "5m", "4h",
// or a bare number of seconds.
func ParseDuration(text string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid duration %q (use forms like 20s, 5m, 4h, or 30)", ErrConfiguration, text)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q: %v", ErrConfiguration, text, err)
	}
	switch strings.ToLower(m[2]) {
	case "", "s":
		return time.Duration(value * float64(time.Second)), nil
	case "m":
		return time.Duration(value * float64(time.Minute)), nil
	case "h":
		return time.Duration(value * float64(time.Hour)), nil
	}
	return 0, fmt.Errorf("%w: unsupported duration unit %q", ErrConfiguration, m[2])
}
