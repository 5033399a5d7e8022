package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopd-dev/shopd/internal/guard"
)

// NewOpenCmd creates the open command
func NewOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Navigate to a destination, e.g. /user/products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision := app.Nav.Navigate(args[0])
			switch decision.Action {
			case guard.Allow:
				fmt.Printf("You are on %s\n", app.Nav.Current())
			case guard.Redirect:
				fmt.Printf("Redirected to %s\n", app.Nav.Current())
			case guard.Deny:
				fmt.Printf("Staying on %s\n", app.Nav.Current())
			}
			return nil
		},
	}
}
