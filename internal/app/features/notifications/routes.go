// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the notification API. It is
// mounted under /api/notifications.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/user/{userID}", h.ServeListByUser)
	r.Post("/{id}/read", h.ServeMarkRead)
	return r
}
