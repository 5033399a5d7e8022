package commands

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Sessions.Current()
			if !snap.LoggedIn() {
				fmt.Println("Not logged in.")
				fmt.Printf("Destination: %s\n", app.Nav.Current())
				return nil
			}

			fmt.Printf("Logged in as role: %s\n", snap.Role)
			if snap.UserID != "" {
				fmt.Printf("User ID: %s\n", snap.UserID)
			}
			fmt.Printf("Destination: %s\n", app.Nav.Current())

			// Display only: the token is treated as opaque everywhere else,
			// and nothing refreshes or revokes it.
			if exp, ok := tokenExpiry(snap.Token); ok {
				fmt.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
			}
			return nil
		},
	}
}

// tokenExpiry reads the exp claim without verifying the signature. The client
// has no key material; this is informational only.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
