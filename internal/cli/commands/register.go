package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopd-dev/shopd/internal/gateway"
)

// NewRegisterCmd creates the register command with its user and merchant
// subcommands.
func NewRegisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
	}
	cmd.AddCommand(newRegisterUserCmd(app))
	cmd.AddCommand(newRegisterMerchantCmd(app))
	return cmd
}

func newRegisterUserCmd(app *App) *cobra.Command {
	var req gateway.RegisterUserRequest

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register a buyer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.RegisterUser(cmd.Context(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Printf("✓ Account created. Run 'shopd login --username %s --role user' to log in.\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Username (unique)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number (optional)")

	return cmd
}

func newRegisterMerchantCmd(app *App) *cobra.Command {
	var req gateway.RegisterMerchantRequest

	cmd := &cobra.Command{
		Use:   "merchant",
		Short: "Register a merchant account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.RegisterMerchant(cmd.Context(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Printf("✓ Account created. Run 'shopd login --username %s --role merchant' to log in.\n", req.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Merchant name (unique)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.ContactPerson, "contact", "", "Contact person (optional)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number (optional)")

	return cmd
}
