package controllers

import (
	"context"
	"errors"

	"hostel/models"
	"hostel/navigation"
	"hostel/session"
	"hostel/transport"

	"go.uber.org/zap"
)

type ProfileAPI interface {
	CurrentUser(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, draft models.ProfileDraft) (models.User, error)
}

type ProfileController struct {
	api      ProfileAPI
	sessions *session.Store
	nav      navigation.Navigator
	log      *zap.Logger

	user    models.User
	form    models.ProfileDraft
	loading bool
	busy    bool
}

func NewProfileController(api ProfileAPI, sessions *session.Store, nav navigation.Navigator, log *zap.Logger) *ProfileController {
	return &ProfileController{api: api, sessions: sessions, nav: nav, log: log, loading: true}
}

func (c *ProfileController) Load(ctx context.Context, notify Notify) {
	defer func() { c.loading = false }()

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, transport.ErrUnauthenticated) {
			c.nav.Navigate(navigation.RouteSignIn)
			return
		}
		c.log.Warn("profile fetch failed", zap.Error(err))
		if notify != nil {
			notify("Failed to load profile", LevelError)
		}
		return
	}
	c.user = user
	c.form = models.ProfileDraft{
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
	}
}

// Save sends the profile draft and refreshes the session record so the rest
// of the app sees the updated user immediately.
func (c *ProfileController) Save(ctx context.Context, notify Notify) {
	if c.busy {
		return
	}
	c.busy = true
	defer func() { c.busy = false }()

	updated, err := c.api.UpdateProfile(ctx, c.form)
	if err != nil {
		c.log.Warn("profile update failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Error updating profile"), LevelError)
		}
		return
	}
	c.user = updated
	c.sessions.Set(updated)
	if notify != nil {
		notify("Profile updated successfully!", LevelSuccess)
	}
}

func (c *ProfileController) UpdateForm(mutate func(draft *models.ProfileDraft)) {
	mutate(&c.form)
}

func (c *ProfileController) User() models.User         { return c.user }
func (c *ProfileController) Form() models.ProfileDraft { return c.form }
func (c *ProfileController) Loading() bool             { return c.loading }
