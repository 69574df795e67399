package stubserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("connection established..."))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/users", func(users chi.Router) {
			users.Post("/register/", s.handleRegister)
			users.Post("/login/", s.handleLogin)
			users.Post("/logout/", s.handleLogout)
			users.Get("/me/", s.handleCurrentUser)
			users.Put("/profile/update/", s.handleUpdateProfile)
			users.Post("/create-user/", s.handleCreateUser)
			users.Get("/list/", s.handleListUsers)
			users.Put("/update-user/{id}/", s.handleUpdateUser)
			users.Delete("/delete-user/{id}/", s.handleDeleteUser)
			users.Post("/reset-password/{id}/", s.handleResetUserPassword)
			users.Post("/request-reset/", s.handleRequestReset)
			users.Post("/verify-code/", s.handleVerifyCode)
			users.Post("/reset-password-with-code/", s.handleResetWithCode)
		})

		api.Route("/assets", func(assets chi.Router) {
			assets.Get("/assets/", s.handleListAssets)
			assets.Post("/assets/", s.handleCreateAsset)
			assets.Put("/assets/{id}/", s.handleUpdateAsset)
			assets.Delete("/assets/{id}/", s.handleDeleteAsset)
			assets.Post("/assets/{id}/mark_damaged/", s.handleMarkDamaged)

			assets.Get("/damage-reports/", s.handleListDamageReports)
			assets.Post("/damage-reports/", s.handleCreateDamageReport)
			assets.Put("/damage-reports/{id}/", s.handleUpdateDamageReport)
			assets.Delete("/damage-reports/{id}/", s.handleDeleteDamageReport)
		})

		api.Get("/rooms/", s.handleListRooms)
		api.Post("/rooms/", s.handleCreateRoom)
		api.Put("/rooms/{id}/", s.handleUpdateRoom)
		api.Delete("/rooms/{id}/", s.handleDeleteRoom)

		api.Get("/dashboard/summary/", s.handleDashboardSummary)
	})

	return r
}
