package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/service"
	"github.com/Harshitk-cp/veritas/internal/store"
)

var (
	historyLimit     int
	historyPruneDays int
)

// historyCmd browses recorded analysis runs
var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Browse recorded analysis runs",
	Long: `Lists recorded analysis runs from the history database, newest first.
Pass a run ID to print its stored report. Requires DATABASE_URL.

Examples:
  veritas history
  veritas history --limit 50
  veritas history 4f6b1c0a-8f2d-4f4e-9a51-7b9f6f3f2a10
  veritas history --prune-days 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	dsn := config.DatabaseURL()
	if dsn == "" {
		return fmt.Errorf("%w (set DATABASE_URL)", service.ErrHistoryDisabled)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	history := service.NewHistoryService(store.NewAnalysisStore(pool), logger)

	if historyPruneDays > 0 {
		deleted, err := history.Prune(ctx, time.Duration(historyPruneDays)*24*time.Hour)
		if err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}
		fmt.Printf("Deleted %d runs older than %d days\n", deleted, historyPruneDays)
		return nil
	}

	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid analysis id %q", args[0])
		}
		record, err := history.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get analysis: %w", err)
		}
		switch {
		case record.Report != "":
			fmt.Print(record.Report)
		case record.Result != nil:
			fmt.Print(service.Serialize(record.Result))
		default:
			return printJSON(record)
		}
		return nil
	}

	records, err := history.List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	renderHistory(records)
	return nil
}
