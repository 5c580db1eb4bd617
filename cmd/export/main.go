// Package main implements the message export CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ytareq/portfolio/internal/models"
	"github.com/ytareq/portfolio/internal/repositories"
	"github.com/ytareq/portfolio/internal/services"
	"github.com/ytareq/portfolio/pkg/database"
)

var (
	dbPath  string
	outPath string
	since   string
	status  string
	limit   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contact messages to an Excel workbook",
	Long: `Export writes the stored contact messages to an .xlsx workbook,
newest first, one row per message.

Examples:
  # Export everything
  export --db ./portfolio.db --out messages.xlsx

  # Only unread messages received since the first of March
  export --status unread --since 2024-03-01`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "./portfolio.db", "SQLite database path")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "messages.xlsx", "Output workbook path")
	rootCmd.Flags().StringVar(&since, "since", "", "Only messages created on or after this date (YYYY-MM-DD or RFC3339)")
	rootCmd.Flags().StringVar(&status, "status", "", "Only messages with this status")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of messages (0 for all)")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts := models.ListOptions{
		Status: models.MessageStatus(status),
		Limit:  limit,
	}
	if since != "" {
		t, err := parseSince(since)
		if err != nil {
			return err
		}
		opts.Since = &t
	}
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	exporter := services.NewExportService(repositories.NewMessageRepository(db))
	count, err := exporter.WriteFile(context.Background(), outPath, opts)
	if err != nil {
		return fmt.Errorf("failed to export messages: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d messages to %s\n", count, outPath)
	return nil
}

func parseSince(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: want YYYY-MM-DD or RFC3339", value)
	}
	return t, nil
}
