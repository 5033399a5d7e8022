package routes

import "github.com/shopd-dev/shopd/internal/session"

// Default builds the application route table: a public login page and two
// role-gated subtrees, one per side of the marketplace.
func Default() *Table {
	return NewTable([]Route{
		{
			Path:     "/",
			Name:     "Root",
			Redirect: LoginPath,
		},
		{
			Path: "/login",
			Name: "Login",
		},
		{
			Path:     "/user",
			Name:     "UserLayout",
			Meta:     Meta{RequiresAuth: true, Role: session.RoleUser},
			Redirect: UserLanding,
			Children: []Route{
				{Path: "products", Name: "ProductList"},
				{Path: "recommendations", Name: "Recommendations"},
				{Path: "orders", Name: "MyOrders"},
			},
		},
		{
			Path:     "/merchant",
			Name:     "MerchantLayout",
			Meta:     Meta{RequiresAuth: true, Role: session.RoleMerchant},
			Redirect: MerchantLanding,
			Children: []Route{
				{Path: "dashboard", Name: "Dashboard"},
				{Path: "products", Name: "ProductManage"},
				{Path: "orders", Name: "OrderManage"},
			},
		},
	})
}
