package routes

import (
	"testing"

	"github.com/shopd-dev/shopd/internal/session"
)

func TestDefaultTableResolvesNestedPaths(t *testing.T) {
	table := Default()

	tests := []struct {
		path         string
		requiresAuth bool
		role         string
	}{
		{"/login", false, ""},
		{"/user", true, session.RoleUser},
		{"/user/products", true, session.RoleUser},
		{"/user/recommendations", true, session.RoleUser},
		{"/user/orders", true, session.RoleUser},
		{"/merchant", true, session.RoleMerchant},
		{"/merchant/dashboard", true, session.RoleMerchant},
		{"/merchant/products", true, session.RoleMerchant},
		{"/merchant/orders", true, session.RoleMerchant},
	}

	for _, tt := range tests {
		route, ok := table.Resolve(tt.path)
		if !ok {
			t.Errorf("Resolve(%q) not found", tt.path)
			continue
		}
		if route.Meta.RequiresAuth != tt.requiresAuth {
			t.Errorf("%s RequiresAuth = %v, want %v", tt.path, route.Meta.RequiresAuth, tt.requiresAuth)
		}
		if route.Meta.Role != tt.role {
			t.Errorf("%s Role = %q, want %q", tt.path, route.Meta.Role, tt.role)
		}
	}

	if _, ok := table.Resolve("/nowhere"); ok {
		t.Error("Resolve of unknown path succeeded")
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	table := Default()
	root, ok := table.Resolve("/")
	if !ok {
		t.Fatal("root route not found")
	}
	if root.Redirect != LoginPath {
		t.Errorf("root redirect = %q, want %q", root.Redirect, LoginPath)
	}
}

func TestLayoutRedirectsToLanding(t *testing.T) {
	table := Default()

	user, _ := table.Resolve("/user")
	if user.Redirect != UserLanding {
		t.Errorf("/user redirect = %q, want %q", user.Redirect, UserLanding)
	}

	merchant, _ := table.Resolve("/merchant")
	if merchant.Redirect != MerchantLanding {
		t.Errorf("/merchant redirect = %q, want %q", merchant.Redirect, MerchantLanding)
	}
}

func TestLanding(t *testing.T) {
	if got := Landing(session.RoleUser); got != UserLanding {
		t.Errorf("Landing(user) = %q", got)
	}
	if got := Landing(session.RoleMerchant); got != MerchantLanding {
		t.Errorf("Landing(merchant) = %q", got)
	}
	if got := Landing("admin"); got != LoginPath {
		t.Errorf("Landing(admin) = %q", got)
	}
	if got := Landing(""); got != LoginPath {
		t.Errorf("Landing(\"\") = %q", got)
	}
}

func TestNewTablePanicsOnDuplicatePath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate path did not panic")
		}
	}()
	NewTable([]Route{
		{Path: "/a"},
		{Path: "/a"},
	})
}

func TestChildOverridesInheritedRole(t *testing.T) {
	table := NewTable([]Route{
		{
			Path: "/admin",
			Meta: Meta{RequiresAuth: true, Role: "admin"},
			Children: []Route{
				{Path: "shared", Meta: Meta{Role: session.RoleUser}},
			},
		},
	})

	child, ok := table.Resolve("/admin/shared")
	if !ok {
		t.Fatal("child not found")
	}
	if !child.Meta.RequiresAuth {
		t.Error("child lost inherited RequiresAuth")
	}
	if child.Meta.Role != session.RoleUser {
		t.Errorf("child role = %q, want %q", child.Meta.Role, session.RoleUser)
	}
}
