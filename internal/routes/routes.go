package routes

import (
	"strings"

	"github.com/shopd-dev/shopd/internal/assert"
	"github.com/shopd-dev/shopd/internal/session"
)

// Well-known destinations.
const (
	LoginPath       = "/login"
	UserLanding     = "/user/products"
	MerchantLanding = "/merchant/dashboard"
)

// Meta declares what a destination requires. Immutable once the table is
// built; children inherit the parent's meta.
type Meta struct {
	RequiresAuth bool
	// Role restricts the destination to sessions holding this role, when set.
	Role string
}

// Route is a navigable destination.
type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Redirect string // optional path to land on instead of this destination
	Children []Route
}

// Table is the ordered set of destinations the navigator can move between.
type Table struct {
	routes []Route
	byPath map[string]Route
}

// NewTable flattens the route tree into a lookup table. Child paths are
// joined to their parent's and carry the parent's meta unless they declare
// their own. Duplicate or empty paths are construction bugs and panic.
func NewTable(routes []Route) *Table {
	t := &Table{routes: routes, byPath: make(map[string]Route)}
	seen := make(map[string]bool)
	for _, r := range routes {
		t.index(r, Meta{}, "", seen)
	}
	return t
}

func (t *Table) index(r Route, parent Meta, prefix string, seen map[string]bool) {
	assert.NotEmpty("route path", r.Path)
	full := joinPath(prefix, r.Path)
	assert.Unique(seen, full)

	meta := r.Meta
	if parent.RequiresAuth {
		meta.RequiresAuth = true
	}
	if meta.Role == "" {
		meta.Role = parent.Role
	}

	t.byPath[full] = Route{
		Path:     full,
		Name:     r.Name,
		Meta:     meta,
		Redirect: r.Redirect,
	}

	for _, child := range r.Children {
		t.index(child, meta, full, seen)
	}
}

// Resolve returns the destination registered under path.
func (t *Table) Resolve(path string) (Route, bool) {
	r, ok := t.byPath[path]
	return r, ok
}

// Landing returns the default destination for a role after login. Unknown
// roles land on the login page.
func Landing(role string) string {
	switch role {
	case session.RoleUser:
		return UserLanding
	case session.RoleMerchant:
		return MerchantLanding
	}
	return LoginPath
}

func joinPath(prefix, path string) string {
	if prefix == "" {
		return path
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}
