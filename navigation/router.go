package navigation

// Route is a client-side path. Navigation never touches the network; the
// router only records where the next page render should happen.
type Route string

const (
	RouteRoot           Route = "/"
	RouteSignIn         Route = "/signin"
	RouteSignUp         Route = "/signup"
	RouteForgotPassword Route = "/forgot-password"
	RouteDashboard      Route = "/dashboard"
	RouteAssets         Route = "/assets"
	RouteRooms          Route = "/rooms"
	RouteProfile        Route = "/profile"
	RouteUserManagement Route = "/user-management"
	RouteDamageTracking Route = "/damage-tracking"
)

// Navigator is the seam controllers redirect through. No route enforces auth
// by itself; controllers decide when to navigate.
type Navigator interface {
	Navigate(route Route)
}

// Resolve maps a requested path to the route that should render; the root
// path redirects to sign-in, unknown paths fall back to sign-in as well.
func Resolve(path string) Route {
	switch Route(path) {
	case RouteSignIn, RouteSignUp, RouteForgotPassword, RouteDashboard,
		RouteAssets, RouteRooms, RouteProfile, RouteUserManagement, RouteDamageTracking:
		return Route(path)
	default:
		return RouteSignIn
	}
}

// Router is the static path-to-page table. Controllers call Navigate; the
// page loop drains the pending route with Take after every operation.
type Router struct {
	next    Route
	pending bool
}

func NewRouter() *Router {
	return &Router{}
}

func (r *Router) Navigate(route Route) {
	r.next = Resolve(string(route))
	r.pending = true
}

// Take returns the pending route, if any, and clears it.
func (r *Router) Take() (Route, bool) {
	if !r.pending {
		return "", false
	}
	r.pending = false
	return r.next, true
}
