package controllers

import (
	"context"

	"hostel/models"
	"hostel/navigation"
	"hostel/session"
	"hostel/transport"

	"go.uber.org/zap"
)

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Register(ctx context.Context, draft models.RegisterDraft) (models.User, error)
	Logout(ctx context.Context) error
}

// AuthController drives sign-in, sign-up and sign-out. Navigation after a
// successful call happens once the notifier has returned; there is no timed
// delay.
type AuthController struct {
	api      AuthAPI
	sessions *session.Store
	nav      navigation.Navigator
	log      *zap.Logger

	loading bool
	errMsg  string
}

func NewAuthController(api AuthAPI, sessions *session.Store, nav navigation.Navigator, log *zap.Logger) *AuthController {
	return &AuthController{
		api:      api,
		sessions: sessions,
		nav:      nav,
		log:      log,
	}
}

func (c *AuthController) Login(ctx context.Context, username, password string, notify Notify) {
	if c.loading {
		return
	}
	c.errMsg = ""
	c.loading = true
	defer func() { c.loading = false }()

	user, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.errMsg = transport.ServerMessage(err, "Login failed. Check your username and password.")
		c.log.Warn("login failed", zap.String("username", username), zap.Error(err))
		return
	}

	c.sessions.Set(user)
	c.log.Info("login succeeded", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	if notify != nil {
		notify("Login successful!", LevelSuccess)
	}
	c.nav.Navigate(navigation.RouteDashboard)
}

func (c *AuthController) Register(ctx context.Context, draft models.RegisterDraft, notify Notify) {
	if c.loading {
		return
	}
	c.errMsg = ""
	c.loading = true
	defer func() { c.loading = false }()

	// Field validation is the backend's job; its per-field messages come back
	// through ServerMessage instead of a generic local rejection.
	if _, err := c.api.Register(ctx, draft); err != nil {
		c.errMsg = transport.ServerMessage(err, "Registration failed. Please check your details.")
		c.log.Warn("registration failed", zap.Error(err))
		return
	}

	if notify != nil {
		notify("Registration successful! Redirecting to login...", LevelSuccess)
	}
	c.nav.Navigate(navigation.RouteSignIn)
}

// Logout tears down the server session and always clears the local user
// record, even when the call fails.
func (c *AuthController) Logout(ctx context.Context, notify Notify) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.Warn("logout call failed", zap.Error(err))
	}
	c.sessions.Clear()
	if notify != nil {
		notify("Logged out", LevelSuccess)
	}
	c.nav.Navigate(navigation.RouteSignIn)
}

func (c *AuthController) Loading() bool { return c.loading }

// Err returns the last human-readable auth failure, empty when none.
func (c *AuthController) Err() string { return c.errMsg }
