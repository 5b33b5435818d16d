// internal/app/features/projectstudies/routes.go
package projectstudies

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the project/study post API. It is
// mounted under /api/project-studies.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Get("/latest", h.ServeLatest)
	r.Get("/positions", h.ServePositions)
	r.Get("/by-title", h.ServeGetByTitle)
	r.Get("/owner/{ownerID}", h.ServeGetByOwner)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.ServeGet)
		r.Patch("/", h.ServeUpdate)
		r.Delete("/", h.ServeDelete)

		r.Post("/comments", h.ServeAddComment)
		r.Get("/comments", h.ServeComments)
		r.Patch("/comments/{commentID}", h.ServeUpdateComment)
		r.Delete("/comments/{commentID}", h.ServeRemoveComment)
	})

	return r
}
