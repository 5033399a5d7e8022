package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent navigation attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Nav.History() == nil {
				fmt.Println("Navigation history is disabled.")
				return nil
			}

			entries, err := app.Nav.History().Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No history yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %-8s  %s -> %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Outcome, e.Path, e.Landed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")

	return cmd
}
