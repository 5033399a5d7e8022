package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shopd-dev/shopd/internal/session"
)

// NewLoginCmd creates the login command
func NewLoginCmd(app *App) *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a buyer or merchant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, app, username, password, role)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (or set SHOPD_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set SHOPD_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&role, "role", "", "Role to log in as: user or merchant (will prompt if not provided)")

	return cmd
}

func runLogin(cmd *cobra.Command, app *App, username, password, role string) error {
	// Check for environment variables (useful for scripting)
	if username == "" {
		username = os.Getenv("SHOPD_USERNAME")
	}
	if password == "" {
		password = os.Getenv("SHOPD_PASSWORD")
	}

	if username == "" {
		return fmt.Errorf("username is required (use --username flag or SHOPD_USERNAME env var)")
	}

	if role == "" {
		selected, err := promptRole()
		if err != nil {
			return err
		}
		role = selected
	}
	if !session.ValidRole(role) {
		return fmt.Errorf("invalid role %q: must be %q or %q", role, session.RoleUser, session.RoleMerchant)
	}

	if password == "" {
		// Only prompt when stdin is a terminal (not piped)
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or SHOPD_PASSWORD env var)")
		}
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println() // New line after password input
	}

	fmt.Printf("Logging in to %s...\n", app.Config.ServerURL)

	if !app.Sessions.Login(cmd.Context(), username, password, role) {
		// The notifier already told the user why
		return errors.New("login failed")
	}

	fmt.Printf("✓ Login successful! You are on %s\n", app.Nav.Current())
	return nil
}

func promptRole() (string, error) {
	prompt := promptui.Select{
		Label: "Log in as",
		Items: []string{session.RoleUser, session.RoleMerchant},
	}
	_, role, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("failed to select role: %w", err)
	}
	return role, nil
}
