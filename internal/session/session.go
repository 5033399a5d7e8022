package session

// Roles a session can hold. The server issues tokens for exactly these two.
const (
	RoleUser     = "user"
	RoleMerchant = "merchant"
)

// Session is the client-held record of the current authenticated identity.
// An empty token means logged out. The three fields are only ever set or
// cleared together.
type Session struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

// LoggedIn reports whether the session holds a credential.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// ValidRole reports whether role names one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleMerchant
}
