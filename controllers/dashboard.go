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

type DashboardAPI interface {
	DashboardSummary(ctx context.Context) (models.DashboardSummary, error)
	CurrentUser(ctx context.Context) (models.User, error)
}

// DashboardController fetches the server-computed summary. Nothing is derived
// locally; a revisit always refetches.
type DashboardController struct {
	api      DashboardAPI
	sessions *session.Store
	nav      navigation.Navigator
	log      *zap.Logger

	summary models.DashboardSummary
	loading bool
}

func NewDashboardController(api DashboardAPI, sessions *session.Store, nav navigation.Navigator, log *zap.Logger) *DashboardController {
	return &DashboardController{api: api, sessions: sessions, nav: nav, log: log, loading: true}
}

func (c *DashboardController) Load(ctx context.Context, notify Notify) {
	defer func() { c.loading = false }()

	if _, ok := c.sessions.Current(); !ok {
		user, err := c.api.CurrentUser(ctx)
		if err != nil {
			if errors.Is(err, transport.ErrUnauthenticated) {
				c.nav.Navigate(navigation.RouteSignIn)
				return
			}
			c.log.Warn("current user fetch failed", zap.Error(err))
		} else {
			c.sessions.Set(user)
		}
	}

	summary, err := c.api.DashboardSummary(ctx)
	if err != nil {
		if errors.Is(err, transport.ErrUnauthenticated) {
			c.nav.Navigate(navigation.RouteSignIn)
			return
		}
		c.log.Warn("dashboard summary fetch failed", zap.Error(err))
		if notify != nil {
			notify("Failed to load dashboard", LevelError)
		}
		return
	}
	c.summary = summary
}

func (c *DashboardController) Summary() models.DashboardSummary { return c.summary }

func (c *DashboardController) Loading() bool { return c.loading }
