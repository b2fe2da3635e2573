package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bmscap/internal/capture"
	"bmscap/internal/config"
	"bmscap/internal/csvout"
	"bmscap/internal/frame"
	"bmscap/internal/logging"
	"bmscap/internal/schema"
	"bmscap/internal/sessionlog"
)

// runParams describes one pipeline invocation shared by convert and capture.
type runParams struct {
	mode        string // "convert" or "capture"
	source      string // input path or serial device, for diagnostics
	output      string
	reader      io.Reader
	faultSource string
	sessionLog  bool
	opts        capture.Options
}

// runPipeline resolves the schema, opens the output under a lock, runs the
// frame pipeline, and reports the outcome. It is the single code path both
// input modes funnel through.
func runPipeline(ctx context.Context, cctx *commandContext, p runParams) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return err
	}

	faultColumns := frame.ResolveFaultColumns(resolveFaultSource(p.faultSource, cfg), logger)
	sch, err := schema.Build(faultColumns)
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputPath(p.output, cfg)
	if err != nil {
		return err
	}

	lock, err := capture.LockOutput(outputPath)
	if err != nil {
		return err
	}
	defer capture.ReleaseOutput(lock)

	writer, err := csvout.Create(outputPath, sch)
	if err != nil {
		return err
	}

	store, sessionID := beginSession(ctx, cfg, logger, p, outputPath)
	if store != nil {
		defer store.Close()
	}

	res, runErr := capture.Run(ctx, p.reader, writer, logger, p.opts)
	if p.opts.Progress != nil {
		p.opts.Progress.Finish()
	}
	closeErr := writer.Close()

	finishSession(store, sessionID, logger, res, runErr)

	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %v", capture.ErrOutput, closeErr)
	}
	if res.Accepted == 0 {
		return fmt.Errorf("no valid frames could be parsed from %s", p.source)
	}

	logger.Info("wrote CSV",
		logging.String(logging.FieldOutput, outputPath),
		logging.Int("frames", res.Accepted),
		logging.Int("skipped", res.Skipped),
		logging.Duration("elapsed", res.Elapsed.Round(time.Millisecond)),
	)
	printRunSummary(outputPath, res)
	return nil
}

func resolveFaultSource(flagValue string, cfg *config.Config) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if strings.TrimSpace(cfg.Faults.Source) != "" {
		return cfg.Faults.Source
	}
	return frame.DiscoverFaultSource()
}

func resolveOutputPath(output string, cfg *config.Config) (string, error) {
	if cfg.Output.Directory != "" && !filepath.IsAbs(output) && !strings.HasPrefix(output, "~") {
		return config.ExpandPath(filepath.Join(cfg.Output.Directory, output))
	}
	return config.ExpandPath(output)
}

// beginSession opens the session journal and records the run start. The
// journal is best-effort: failures are logged and the run proceeds without
// it.
func beginSession(ctx context.Context, cfg *config.Config, logger *slog.Logger, p runParams, outputPath string) (*sessionlog.Store, string) {
	if !p.sessionLog || !cfg.SessionLog.Enabled {
		return nil, ""
	}

	store, err := sessionlog.Open(cfg.SessionLog.Path)
	if err != nil {
		logger.Warn("session journal unavailable",
			logging.String("path", cfg.SessionLog.Path),
			logging.Error(err),
		)
		return nil, ""
	}

	sessionID, err := store.Begin(ctx, p.mode, p.source, outputPath)
	if err != nil {
		logger.Warn("session journal write failed", logging.Error(err))
		_ = store.Close()
		return nil, ""
	}
	return store, sessionID
}

func finishSession(store *sessionlog.Store, sessionID string, logger *slog.Logger, res *capture.Result, runErr error) {
	if store == nil || sessionID == "" {
		return
	}

	status := sessionlog.StatusCompleted
	if runErr != nil {
		status = sessionlog.StatusFailed
	}

	// Finish with a fresh context: the run context may already be canceled
	// when a bound or Ctrl-C ended the capture.
	finishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Finish(finishCtx, sessionID, res.Accepted, res.Skipped, status); err != nil {
		logger.Warn("session journal update failed",
			logging.String(logging.FieldSession, sessionID),
			logging.Error(err),
		)
	}
}

func printRunSummary(outputPath string, res *capture.Result) {
	rows := [][]string{
		{"output", outputPath},
		{"frames", strconv.Itoa(res.Accepted)},
		{"skipped", strconv.Itoa(res.Skipped)},
		{"elapsed", res.Elapsed.Round(time.Millisecond).String()},
	}
	fmt.Println(renderTable([]string{"field", "value"}, rows))
}
