package controllers

import (
	"context"
	"errors"

	"hostel/models"
	"hostel/navigation"
	"hostel/transport"

	"go.uber.org/zap"
)

type UserAdminAPI interface {
	CurrentUser(ctx context.Context) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
	ResetUserPassword(ctx context.Context, id int, newPassword string) error
}

// UserAdminController backs the Warden-only user-management page. It gates
// itself: the current user is fetched first and anyone who is not a Warden is
// sent back to the dashboard before the user list is ever requested.
type UserAdminController struct {
	api UserAdminAPI
	nav navigation.Navigator
	log *zap.Logger

	me      *models.User
	users   []models.User
	loading bool
}

func NewUserAdminController(api UserAdminAPI, nav navigation.Navigator, log *zap.Logger) *UserAdminController {
	return &UserAdminController{api: api, nav: nav, log: log, loading: true}
}

func (c *UserAdminController) Load(ctx context.Context, notify Notify) {
	defer func() { c.loading = false }()

	me, err := c.api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, transport.ErrUnauthenticated) {
			c.nav.Navigate(navigation.RouteSignIn)
		} else {
			c.log.Warn("current user fetch failed", zap.Error(err))
		}
		return
	}
	c.me = &me

	if me.Role != models.RoleWarden {
		c.nav.Navigate(navigation.RouteDashboard)
		return
	}
	c.fetchUsers(ctx, notify)
}

func (c *UserAdminController) fetchUsers(ctx context.Context, notify Notify) {
	users, err := c.api.ListUsers(ctx)
	if err != nil {
		c.users = []models.User{}
		c.log.Warn("user list fetch failed", zap.Error(err))
		if notify != nil {
			notify("Failed to load users", LevelError)
		}
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.users = users
}

func (c *UserAdminController) ChangeRole(ctx context.Context, id int, role models.Role, notify Notify) {
	if _, err := c.api.UpdateUser(ctx, id, models.UserUpdate{Role: &role}); err != nil {
		c.log.Warn("role update failed", zap.Int("user_id", id), zap.Error(err))
		if notify != nil {
			notify("Error updating role: "+transport.ServerMessage(err, "Unknown error"), LevelError)
		}
		return
	}
	if notify != nil {
		notify("User role updated successfully!", LevelSuccess)
	}
	c.fetchUsers(ctx, notify)
}

func (c *UserAdminController) DeleteUser(ctx context.Context, id int, confirm Confirm, notify Notify) {
	if confirm == nil || !confirm("Are you sure you want to delete this user? This action cannot be undone.") {
		return
	}
	if err := c.api.DeleteUser(ctx, id); err != nil {
		c.log.Warn("user delete failed", zap.Int("user_id", id), zap.Error(err))
		if notify != nil {
			notify("Error deleting user: "+transport.ServerMessage(err, "Unknown error"), LevelError)
		}
		return
	}
	if notify != nil {
		notify("User deleted successfully!", LevelSuccess)
	}
	c.fetchUsers(ctx, notify)
}

// ResetPassword sets another user's password directly; there is no
// confirmation field in this flow, only a local length check.
func (c *UserAdminController) ResetPassword(ctx context.Context, id int, newPassword string, notify Notify) {
	if len(newPassword) < 4 {
		if notify != nil {
			notify("Password must be at least 4 characters", LevelError)
		}
		return
	}
	if err := c.api.ResetUserPassword(ctx, id, newPassword); err != nil {
		c.log.Warn("admin password reset failed", zap.Int("user_id", id), zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Failed to reset password"), LevelError)
		}
		return
	}
	if notify != nil {
		notify("Password reset successfully!", LevelSuccess)
	}
}

func (c *UserAdminController) Me() (models.User, bool) {
	if c.me == nil {
		return models.User{}, false
	}
	return *c.me, true
}

func (c *UserAdminController) Users() []models.User { return c.users }

func (c *UserAdminController) Loading() bool { return c.loading }
