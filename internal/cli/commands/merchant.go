package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shopd-dev/shopd/internal/api"
)

// NewDashboardCmd creates the dashboard command (merchant analytics)
func NewDashboardCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the merchant dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/dashboard") {
				return fmt.Errorf("cannot open /merchant/dashboard")
			}

			trend, err := app.Shop.SalesTrend(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("failed to load sales trend: %w", err)
			}
			total := 0
			for _, s := range trend.Sales {
				total += s
			}
			fmt.Printf("Sales, last %d days: %d orders\n", days, total)

			top, err := app.Shop.TopProducts(cmd.Context(), 5)
			if err != nil {
				return fmt.Errorf("failed to load top products: %w", err)
			}
			if len(top) > 0 {
				fmt.Println("Top products:")
				for _, p := range top {
					fmt.Printf("  %s  %d sold\n", p.Name, p.Sales)
				}
			}

			categories, err := app.Shop.CategoryDistribution(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load category distribution: %w", err)
			}
			if len(categories) > 0 {
				fmt.Println("Sales by category:")
				for _, c := range categories {
					fmt.Printf("  %s  %d\n", c.Name, c.Value)
				}
			}

			suggestions, err := app.Shop.AISuggestions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load suggestions: %w", err)
			}
			if len(suggestions.Suggestions) > 0 {
				fmt.Println("Suggestions:")
				for _, s := range suggestions.Suggestions {
					fmt.Printf("  - %s\n", s)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Trend window in days")

	return cmd
}

// NewManageCmd creates the manage command with merchant catalogue and order
// subcommands.
func NewManageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage",
		Short: "Manage your products and orders (merchant)",
	}
	cmd.AddCommand(newManageProductsCmd(app))
	cmd.AddCommand(newManageAddCmd(app))
	cmd.AddCommand(newManageUpdateCmd(app))
	cmd.AddCommand(newManageDeleteCmd(app))
	cmd.AddCommand(newManageOrdersCmd(app))
	return cmd
}

func newManageProductsCmd(app *App) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List your products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/products") {
				return fmt.Errorf("cannot open /merchant/products")
			}

			products, err := app.Shop.MerchantProducts(cmd.Context(), page, size)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if len(products.Items) == 0 {
				fmt.Println("No products yet.")
				return nil
			}
			for _, p := range products.Items {
				fmt.Printf("#%d  %s  %.2f  stock %d  sold %d  [%s]\n", p.ProductID, p.Name, p.Price, p.Stock, p.SalesCount, p.Category)
			}
			fmt.Printf("Page %d of %d products\n", products.Page, products.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	return cmd
}

func productFlags(cmd *cobra.Command, req *api.ProductRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Product description")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "Price")
	cmd.Flags().IntVar(&req.Stock, "stock", 0, "Stock quantity")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
}

func newManageAddCmd(app *App) *cobra.Command {
	var req api.ProductRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "List a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/products") {
				return fmt.Errorf("cannot open /merchant/products")
			}

			if err := app.Shop.CreateProduct(cmd.Context(), req); err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}
			fmt.Printf("✓ Product %q listed.\n", req.Name)
			return nil
		},
	}

	productFlags(cmd, &req)

	return cmd
}

func newManageUpdateCmd(app *App) *cobra.Command {
	var req api.ProductRequest

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/products") {
				return fmt.Errorf("cannot open /merchant/products")
			}

			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if err := app.Shop.UpdateProduct(cmd.Context(), productID, req); err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
			fmt.Printf("✓ Product #%d updated.\n", productID)
			return nil
		},
	}

	productFlags(cmd, &req)

	return cmd
}

func newManageDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/products") {
				return fmt.Errorf("cannot open /merchant/products")
			}

			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if err := app.Shop.DeleteProduct(cmd.Context(), productID); err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}
			fmt.Printf("✓ Product #%d deleted.\n", productID)
			return nil
		},
	}
}

func newManageOrdersCmd(app *App) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders placed against you",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/merchant/orders") {
				return fmt.Errorf("cannot open /merchant/orders")
			}

			orders, err := app.Shop.MerchantOrders(cmd.Context(), page, size)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			if len(orders.Items) == 0 {
				fmt.Println("No orders yet.")
				return nil
			}
			for _, o := range orders.Items {
				fmt.Printf("#%d  %s x%d  %.2f  %s  (%s)\n", o.OrderID, o.ProductName, o.Quantity, o.TotalAmount, o.Status, o.OrderTime)
			}
			fmt.Printf("Page %d of %d orders\n", orders.Page, orders.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	return cmd
}
