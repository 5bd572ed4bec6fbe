package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagSession      string
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent screen commands",
	Long: `List the latest navigation and settings commands recorded by the
game, newest first. Every client records its commands under a session id.

Examples:
  starfall history
  starfall history --limit 50
  starfall history --session alice-1700000000`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagSession, "session", "", "Only show this session")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of events to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	events, err := store.RecentEvents(flagSession, flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No commands recorded yet.")
		return nil
	}
	fmt.Println(historyTable(events))
	return nil
}

var failedStyle = cellStyle.Foreground(lipgloss.Color("9"))

// historyTable formats command events as a bordered table.
func historyTable(events []storage.CommandEvent) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Time", "Session", "Event", "Command", "Cursor", "Error").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case events[row].Error != "":
				return failedStyle
			}
			return cellStyle
		})
	for _, e := range events {
		t.Row(e.CreatedAt.Format("01-02 15:04:05"), e.Session, e.Kind, e.Command, strconv.Itoa(e.Cursor), e.Error)
	}
	return t.String()
}
