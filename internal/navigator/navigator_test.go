package navigator

import (
	"context"
	"testing"

	"github.com/shopd-dev/shopd/internal/guard"
	"github.com/shopd-dev/shopd/internal/kv"
	"github.com/shopd-dev/shopd/internal/notify"
	"github.com/shopd-dev/shopd/internal/routes"
	"github.com/shopd-dev/shopd/internal/session"
)

type staticAuth struct {
	token  string
	userID string
}

func (a staticAuth) Authenticate(ctx context.Context, username, password, role string) (session.Credentials, error) {
	return session.Credentials{Token: a.token, UserID: a.userID}, nil
}

func newTestNavigator(t *testing.T) (*Navigator, *session.Store, *notify.Recorder) {
	t.Helper()
	recorder := &notify.Recorder{}
	sessions := session.NewStore(kv.NewMemory(), staticAuth{token: "t1"}, recorder)
	nav := New(routes.Default(), sessions, recorder, nil)
	return nav, sessions, recorder
}

func TestStartsOnLoginPage(t *testing.T) {
	nav, _, _ := newTestNavigator(t)
	if nav.Current() != routes.LoginPath {
		t.Errorf("initial destination = %q", nav.Current())
	}
}

func TestProtectedPathRedirectsToLoginWhenLoggedOut(t *testing.T) {
	nav, _, recorder := newTestNavigator(t)

	decision := nav.Navigate("/merchant/dashboard")
	if decision.Action != guard.Redirect {
		t.Fatalf("action = %v, want Redirect", decision.Action)
	}
	if nav.Current() != routes.LoginPath {
		t.Errorf("current = %q, want %q", nav.Current(), routes.LoginPath)
	}
	if len(recorder.Warnings) != 1 {
		t.Errorf("expected a warning notice, got %+v", recorder)
	}
}

func TestWrongRoleIsDeniedInPlace(t *testing.T) {
	nav, sessions, recorder := newTestNavigator(t)
	sessions.Login(context.Background(), "alice", "pw", session.RoleUser)

	// Login moved us to the buyer landing
	if nav.Current() != routes.UserLanding {
		t.Fatalf("after login current = %q, want %q", nav.Current(), routes.UserLanding)
	}

	decision := nav.Navigate("/merchant/orders")
	if decision.Action != guard.Deny {
		t.Fatalf("action = %v, want Deny", decision.Action)
	}
	if nav.Current() != routes.UserLanding {
		t.Errorf("deny moved the user: current = %q", nav.Current())
	}
	if len(recorder.Errors) == 0 {
		t.Error("expected an error notice on deny")
	}
}

func TestLoginChangeNavigatesToRoleLanding(t *testing.T) {
	nav, sessions, _ := newTestNavigator(t)

	sessions.Login(context.Background(), "bob", "pw", session.RoleMerchant)
	if nav.Current() != routes.MerchantLanding {
		t.Errorf("after merchant login current = %q, want %q", nav.Current(), routes.MerchantLanding)
	}

	sessions.Logout()
	if nav.Current() != routes.LoginPath {
		t.Errorf("after logout current = %q, want %q", nav.Current(), routes.LoginPath)
	}
}

func TestLoginPageRedirectsWhenLoggedIn(t *testing.T) {
	nav, sessions, _ := newTestNavigator(t)
	sessions.Login(context.Background(), "alice", "pw", session.RoleUser)

	decision := nav.Navigate(routes.LoginPath)
	if decision.Action != guard.Redirect {
		t.Fatalf("action = %v, want Redirect", decision.Action)
	}
	if nav.Current() != routes.UserLanding {
		t.Errorf("current = %q, want %q", nav.Current(), routes.UserLanding)
	}
}

func TestLayoutPathFollowsRedirectThroughGuard(t *testing.T) {
	nav, sessions, _ := newTestNavigator(t)
	sessions.Login(context.Background(), "alice", "pw", session.RoleUser)

	decision := nav.Navigate("/user")
	if decision.Action != guard.Allow {
		t.Fatalf("action = %v, want Allow", decision.Action)
	}
	if nav.Current() != routes.UserLanding {
		t.Errorf("current = %q, want %q", nav.Current(), routes.UserLanding)
	}

	// The same layout path is still guarded for the wrong role
	if ok := nav.Ensure("/merchant"); ok {
		t.Error("buyer reached the merchant layout")
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	nav, _, _ := newTestNavigator(t)

	decision := nav.Navigate("/")
	if decision.Action != guard.Allow {
		t.Fatalf("action = %v, want Allow after following the root redirect", decision.Action)
	}
	if nav.Current() != routes.LoginPath {
		t.Errorf("current = %q, want %q", nav.Current(), routes.LoginPath)
	}
}

func TestUnknownDestinationIsDenied(t *testing.T) {
	nav, _, recorder := newTestNavigator(t)

	decision := nav.Navigate("/nowhere")
	if decision.Action != guard.Deny {
		t.Errorf("action = %v, want Deny", decision.Action)
	}
	if nav.Current() != routes.LoginPath {
		t.Errorf("unknown destination moved the user: %q", nav.Current())
	}
	if len(recorder.Warnings) != 1 {
		t.Errorf("expected a warning notice, got %+v", recorder)
	}
}

func TestEnsure(t *testing.T) {
	nav, sessions, _ := newTestNavigator(t)

	if nav.Ensure("/user/products") {
		t.Error("Ensure succeeded while logged out")
	}

	sessions.Login(context.Background(), "alice", "pw", session.RoleUser)
	if !nav.Ensure("/user/products") {
		t.Error("Ensure failed for the buyer's own section")
	}
}
