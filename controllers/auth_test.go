package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hostel/models"
	"hostel/navigation"
	"hostel/session"
	"hostel/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthAPI struct {
	loginUser models.User
	loginErr  error

	registerErr   error
	registerCalls int

	logoutErr error
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (models.User, error) {
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	return f.loginUser, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, draft models.RegisterDraft) (models.User, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return models.User{}, f.registerErr
	}
	return models.User{ID: 2, Username: draft.Username, Role: models.RolePending}, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error { return f.logoutErr }

func TestLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		api            *fakeAuthAPI
		expectedErr    string
		expectedRoutes []navigation.Route
		expectSession  bool
	}{
		{
			name:           "success stores session and navigates to dashboard",
			api:            &fakeAuthAPI{loginUser: models.User{ID: 1, Username: "warden1", Role: models.RoleWarden}},
			expectedRoutes: []navigation.Route{navigation.RouteDashboard},
			expectSession:  true,
		},
		{
			name:        "wrong password shows server message and stays put",
			api:         &fakeAuthAPI{loginErr: &transport.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid password"}},
			expectedErr: "Invalid password",
		},
		{
			name:        "pending account surfaces the approval message",
			api:         &fakeAuthAPI{loginErr: &transport.APIError{StatusCode: http.StatusForbidden, Message: "Your account is pending approval by the Warden. Please wait for role assignment."}},
			expectedErr: "Your account is pending approval by the Warden. Please wait for role assignment.",
		},
		{
			name:        "network failure falls back to the generic message",
			api:         &fakeAuthAPI{loginErr: errors.New("connection refused")},
			expectedErr: "Login failed. Check your username and password.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nav := &fakeNav{}
			sessions := session.NewStore()
			rec := &notifyRecorder{}
			auth := NewAuthController(tc.api, sessions, nav, zap.NewNop())

			auth.Login(ctx, "warden1", "pass", rec.Notify)

			assert.Equal(t, tc.expectedErr, auth.Err())
			assert.Equal(t, tc.expectedRoutes, nav.routes)
			_, ok := sessions.Current()
			assert.Equal(t, tc.expectSession, ok)
			if tc.expectSession {
				require.Len(t, rec.messages, 1)
				assert.Equal(t, "Login successful!", rec.messages[0])
			}
		})
	}
}

func TestLoginNavigatesAfterNotify(t *testing.T) {
	ctx := context.Background()
	nav := &fakeNav{}
	auth := NewAuthController(&fakeAuthAPI{loginUser: models.User{ID: 1, Username: "warden1", Role: models.RoleWarden}}, session.NewStore(), nav, zap.NewNop())

	var routesAtNotify int
	auth.Login(ctx, "warden1", "pass", func(string, Level) {
		routesAtNotify = len(nav.routes)
	})

	assert.Zero(t, routesAtNotify)
	assert.Equal(t, []navigation.Route{navigation.RouteDashboard}, nav.routes)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	validDraft := models.RegisterDraft{Username: "staff1", Password: "pass123", Email: "staff1@hostel.edu"}

	tests := []struct {
		name           string
		api            *fakeAuthAPI
		draft          models.RegisterDraft
		expectedErr    string
		expectedRoutes []navigation.Route
		expectedCalls  int
	}{
		{
			name:           "success navigates back to sign-in",
			api:            &fakeAuthAPI{},
			draft:          validDraft,
			expectedRoutes: []navigation.Route{navigation.RouteSignIn},
			expectedCalls:  1,
		},
		{
			name: "server field error surfaces verbatim",
			api: &fakeAuthAPI{registerErr: &transport.APIError{
				StatusCode: http.StatusBadRequest,
				Fields:     map[string][]string{"email": {"Enter a valid email address."}},
			}},
			draft:         models.RegisterDraft{Username: "staff1", Password: "pass123", Email: "not-an-email"},
			expectedErr:   "Enter a valid email address.",
			expectedCalls: 1,
		},
		{
			name:          "duplicate username shows the server message",
			api:           &fakeAuthAPI{registerErr: &transport.APIError{StatusCode: http.StatusBadRequest, Message: "Username already exists"}},
			draft:         validDraft,
			expectedErr:   "Username already exists",
			expectedCalls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nav := &fakeNav{}
			auth := NewAuthController(tc.api, session.NewStore(), nav, zap.NewNop())

			auth.Register(ctx, tc.draft, nil)

			assert.Equal(t, tc.expectedErr, auth.Err())
			assert.Equal(t, tc.expectedRoutes, nav.routes)
			assert.Equal(t, tc.expectedCalls, tc.api.registerCalls)
		})
	}
}

func TestLogoutAlwaysClearsSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		api  *fakeAuthAPI
	}{
		{name: "server logout succeeds", api: &fakeAuthAPI{}},
		{name: "server logout fails", api: &fakeAuthAPI{logoutErr: errors.New("connection refused")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nav := &fakeNav{}
			sessions := session.NewStore()
			sessions.Set(models.User{ID: 1, Username: "warden1", Role: models.RoleWarden})
			auth := NewAuthController(tc.api, sessions, nav, zap.NewNop())

			auth.Logout(ctx, nil)

			_, ok := sessions.Current()
			assert.False(t, ok)
			assert.Equal(t, []navigation.Route{navigation.RouteSignIn}, nav.routes)
		})
	}
}
