package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagBrowse bool
	flagAll    bool
	flagClear  bool
	flagLimit  int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores for a difficulty preset (default: normal).

Examples:
  starfall scores
  starfall scores hard
  starfall scores --all
  starfall scores --browse
  starfall scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse every difficulty interactively")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every difficulty that has scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the difficulty")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	preset := config.DifficultyNormal
	if len(args) == 1 {
		p, err := parsePreset(args[0])
		if err != nil {
			return err
		}
		preset = p
	}
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(string(preset)); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", preset)
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, preset, width, height)

	case flagAll:
		return printAllScores(store)
	}

	scores, err := store.TopScores(string(preset), flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", preset)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starfall play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Println(scoreTable(scores))
	fmt.Printf("\nBest: %d\n", scores[0].Score)
	return nil
}

// printAllScores prints one table per difficulty with recorded scores.
func printAllScores(store *storage.Store) error {
	modes, err := store.Modes()
	if err != nil {
		return err
	}
	if len(modes) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}
	for _, mode := range modes {
		scores, err := store.TopScores(mode, flagLimit)
		if err != nil {
			return fmt.Errorf("retrieve %s scores: %w", mode, err)
		}
		fmt.Printf("High Scores - %s\n", mode)
		fmt.Println(scoreTable(scores))
		fmt.Println()
	}
	return nil
}

// scoreTable formats scores as a bordered table.
func scoreTable(scores []storage.ScoreEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Rank", "Score", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, e := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return t.String()
}
