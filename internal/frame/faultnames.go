package frame

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"bmscap/internal/logging"
)

// faultSourceFile is the firmware translation unit that assembles the serial
// frame; the fault flags it serializes appear in the same order they arrive
// on the wire.
const faultSourceFile = "AEK_POW_BMS63CHAIN_app_mng.c"

const firmwarePrefix = "AEK_POW_BMS63CHAIN_"

var (
	serialStepPattern = regexp.MustCompile(`(?s)void\s+AEK_POW_BMS63CHAIN_app_serialStep_GUI\s*\([^)]*\)\s*\{(.*?)sendMessage\("ENDData"\)`)
	fastDiagPattern   = regexp.MustCompile(`AEK_POW_BMS63CHAIN_fastDiag\[[^\]]+\]\.([A-Za-z0-9_]+)`)
)

// FallbackFaultNames returns the deterministic positional column names used
// when no firmware source is available: fault_001 through fault_187.
func FallbackFaultNames() []string {
	names := make([]string, FaultCount)
	for i := range names {
		names[i] = fmt.Sprintf("fault_%03d", i+1)
	}
	return names
}

// ExtractFaultNames reads the firmware source and returns the fault field
// names in serialization order. It scopes the scan to the serial-step
// function body when that function is found, skips // comment lines, and
// strips the firmware's type prefix from each name.
func ExtractFaultNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	body := string(data)
	if m := serialStepPattern.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var names []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, m := range fastDiagPattern.FindAllStringSubmatch(line, -1) {
			names = append(names, strings.TrimPrefix(m[1], firmwarePrefix))
		}
	}
	return names, nil
}

// ResolveFaultColumns builds the fault column names for a run. When the
// firmware source yields exactly FaultCount names the columns become
// fault_NNN_<name>; on a missing or unreadable source, or any count
// mismatch, every column falls back to its positional name. The result is
// all-resolved or all-fallback, never a mix, and a shortfall is an
// informational note rather than an error.
func ResolveFaultColumns(path string, logger *slog.Logger) []string {
	log := logging.NewComponentLogger(logger, "fault-names")

	if strings.TrimSpace(path) == "" {
		log.Info("no fault-name source configured, using positional fault columns")
		return FallbackFaultNames()
	}

	names, err := ExtractFaultNames(path)
	if err != nil {
		log.Info("fault-name source unreadable, using positional fault columns",
			logging.String("path", path),
			logging.Error(err),
		)
		return FallbackFaultNames()
	}
	if len(names) != FaultCount {
		log.Info("fault-name source yielded unexpected count, using positional fault columns",
			logging.String("path", path),
			logging.Int("found", len(names)),
			logging.Int("expected", FaultCount),
		)
		return FallbackFaultNames()
	}

	columns := make([]string, FaultCount)
	for i, name := range names {
		columns[i] = fmt.Sprintf("fault_%03d_%s", i+1, name)
	}
	return columns
}

// DiscoverFaultSource probes conventional locations for the firmware source
// relative to the working directory. Returns an empty string when nothing is
// found; resolution then falls back to positional names.
func DiscoverFaultSource() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(cwd, "source", faultSourceFile),
		filepath.Join(cwd, faultSourceFile),
		filepath.Join(filepath.Dir(cwd), "source", faultSourceFile),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
