package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopd-dev/shopd/internal/api"
)

// NewProductsCmd creates the products command (buyer product search)
func NewProductsCmd(app *App) *cobra.Command {
	var req api.SearchRequest

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Search listed products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/user/products") {
				return fmt.Errorf("cannot open /user/products")
			}

			results, err := app.Shop.SearchProducts(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if len(results) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			for _, p := range results {
				fmt.Printf("#%d  %s  %.2f  [%s]  by %s\n", p.ProductID, p.Name, p.Price, p.Category, p.MerchantName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Keyword, "keyword", "", "Search keyword")
	cmd.Flags().StringVar(&req.Category, "category", "", "Filter by category")

	return cmd
}

// NewOrdersCmd creates the orders command (buyer order history and placement)
func NewOrdersCmd(app *App) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/user/orders") {
				return fmt.Errorf("cannot open /user/orders")
			}

			orders, err := app.Shop.UserOrders(cmd.Context(), page, size)
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
	cmd.Flags().IntVar(&size, "size", 10, "Page size")

	cmd.AddCommand(newOrderPlaceCmd(app))

	return cmd
}

func newOrderPlaceCmd(app *App) *cobra.Command {
	var req api.CreateOrderRequest

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/user/orders") {
				return fmt.Errorf("cannot open /user/orders")
			}

			if err := app.Shop.CreateOrder(cmd.Context(), req); err != nil {
				return fmt.Errorf("failed to place order: %w", err)
			}
			fmt.Println("✓ Order placed.")
			return nil
		},
	}

	cmd.Flags().IntVar(&req.ProductID, "product", 0, "Product ID")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 1, "Quantity")

	return cmd
}

// NewRecommendationsCmd creates the recommendations command
func NewRecommendationsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "Show personalized product recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Nav.Ensure("/user/recommendations") {
				return fmt.Errorf("cannot open /user/recommendations")
			}

			results, err := app.Shop.Recommendations(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to load recommendations: %w", err)
			}

			if len(results) == 0 {
				fmt.Println("Nothing to recommend yet.")
				return nil
			}
			for _, p := range results {
				fmt.Printf("#%d  %s  %.2f  [%s]\n", p.ProductID, p.Name, p.Price, p.Category)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of recommendations")

	return cmd
}
