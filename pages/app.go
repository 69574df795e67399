package pages

import (
	"context"

	"hostel/navigation"
	"hostel/session"
	"hostel/transport"

	"go.uber.org/zap"
)

// App binds the route table to page runners. Controllers are built fresh on
// every page entry, so a revisit always refetches; nothing is cached across
// navigations.
type App struct {
	api      *transport.Client
	router   *navigation.Router
	sessions *session.Store
	console  *Console
	log      *zap.Logger
	quit     bool
}

func NewApp(api *transport.Client, router *navigation.Router, sessions *session.Store, console *Console, log *zap.Logger) *App {
	return &App{
		api:      api,
		router:   router,
		sessions: sessions,
		console:  console,
		log:      log,
	}
}

type pageRunner func(ctx context.Context) navigation.Route

func (a *App) routes() map[navigation.Route]pageRunner {
	return map[navigation.Route]pageRunner{
		navigation.RouteSignIn:         a.signInPage,
		navigation.RouteSignUp:         a.signUpPage,
		navigation.RouteForgotPassword: a.forgotPasswordPage,
		navigation.RouteDashboard:      a.dashboardPage,
		navigation.RouteAssets:         a.assetsPage,
		navigation.RouteRooms:          a.roomsPage,
		navigation.RouteProfile:        a.profilePage,
		navigation.RouteUserManagement: a.userManagementPage,
		navigation.RouteDamageTracking: a.damageTrackingPage,
	}
}

// Run drives the page loop starting at sign-in until the user quits.
func (a *App) Run(ctx context.Context) {
	table := a.routes()
	current := navigation.RouteSignIn

	for !a.quit {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if a.console.EOF() {
			return
		}
		runner, ok := table[navigation.Resolve(string(current))]
		if !ok {
			runner = a.signInPage
		}
		next := runner(ctx)
		if a.quit {
			return
		}
		if next == "" {
			next = navigation.RouteSignIn
		}
		current = next
	}
}

// takeRoute drains a redirect requested by a controller during the last call.
func (a *App) takeRoute() (navigation.Route, bool) {
	return a.router.Take()
}

// inputEnded treats end of input as a quit so no page loop re-prompts a
// closed stream.
func (a *App) inputEnded() bool {
	if a.console.EOF() {
		a.quit = true
		return true
	}
	return false
}
