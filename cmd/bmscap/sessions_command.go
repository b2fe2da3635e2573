package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"bmscap/internal/sessionlog"
)

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded capture sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := sessionlog.Open(cfg.SessionLog.Path)
			if err != nil {
				return fmt.Errorf("open session journal: %w", err)
			}
			defer store.Close()

			sessions, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No recorded sessions.")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				rows = append(rows, []string{
					shortID(session.ID),
					session.Mode,
					session.StartedAt.Local().Format("2006-01-02 15:04:05"),
					sessionDuration(session),
					strconv.Itoa(session.Accepted),
					strconv.Itoa(session.Skipped),
					session.Status,
					session.Output,
				})
			}
			fmt.Println(renderTable(
				[]string{"id", "mode", "started", "duration", "frames", "skipped", "status", "output"},
				rows,
				4, 5, 6,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to list")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sessionDuration(session sessionlog.Session) string {
	if session.FinishedAt.IsZero() {
		return "-"
	}
	return session.FinishedAt.Sub(session.StartedAt).Round(time.Second).String()
}
