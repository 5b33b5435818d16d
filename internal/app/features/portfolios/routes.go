// internal/app/features/portfolios/routes.go
package portfolios

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the portfolio API. It is mounted
// under /api/portfolios.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/top", h.ServeTopMentors)
	r.Get("/by-title", h.ServeGetByTitle)
	r.Get("/owner/{ownerID}", h.ServeGetByOwner)
	r.Get("/owner/{ownerID}/mentoring-requests", h.ServeMentoringRequestsByOwner)
	r.Get("/mentoring-requests/user/{userID}", h.ServeMentoringRequestsByUser)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.ServeGet)
		r.Patch("/", h.ServeUpdate)
		r.Delete("/", h.ServeDelete)

		r.Post("/comments", h.ServeAddComment)
		r.Get("/comments", h.ServeComments)
		r.Patch("/comments/{commentID}", h.ServeUpdateComment)
		r.Delete("/comments/{commentID}", h.ServeRemoveComment)

		r.Post("/mentoring-requests", h.ServeAddMentoringRequest)
		r.Post("/mentoring-requests/{requestID}/respond", h.ServeRespondToMentoringRequest)
		r.Patch("/mentoring-requests/{requestID}", h.ServeUpdateMentoringRequestStatus)
	})

	return r
}
