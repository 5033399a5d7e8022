package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopd-dev/shopd/internal/cli/commands"
	"github.com/shopd-dev/shopd/internal/config"
	"github.com/shopd-dev/shopd/internal/logger"
)

var version = "dev" // Will be set during build

// Execute runs the root command
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	app, err := commands.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "shopd",
		Short: "shopd - Marketplace client for buyers and merchants",
		Long: `shopd CLI - Browse, buy and sell from your terminal.

Every screen is guarded: protected destinations ask you to log in, and
destinations reserved for the other role stay closed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shopd version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewLoginCmd(app))
	rootCmd.AddCommand(commands.NewLogoutCmd(app))
	rootCmd.AddCommand(commands.NewRegisterCmd(app))
	rootCmd.AddCommand(commands.NewStatusCmd(app))
	rootCmd.AddCommand(commands.NewOpenCmd(app))
	rootCmd.AddCommand(commands.NewProductsCmd(app))
	rootCmd.AddCommand(commands.NewOrdersCmd(app))
	rootCmd.AddCommand(commands.NewRecommendationsCmd(app))
	rootCmd.AddCommand(commands.NewDashboardCmd(app))
	rootCmd.AddCommand(commands.NewManageCmd(app))
	rootCmd.AddCommand(commands.NewHistoryCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
