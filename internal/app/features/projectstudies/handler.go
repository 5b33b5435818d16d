// internal/app/features/projectstudies/handler.go

// Package projectstudies exposes the project/study post API: post CRUD
// with classification and position filters, embedded comments, and the
// latest-post queries for the landing page.
package projectstudies

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/features/shared/respond"
	projectstudysvc "github.com/dalemusser/mentorhub/internal/app/services/projectstudy"
	projectstudystore "github.com/dalemusser/mentorhub/internal/app/store/projectstudies"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the project/study service and logger for the API
// handlers.
type Handler struct {
	Svc *projectstudysvc.Service
	Log *zap.Logger
}

// NewHandler constructs a projectstudies Handler.
func NewHandler(svc *projectstudysvc.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// ServeCreate handles POST /.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var ps models.ProjectStudy
	if err := json.NewDecoder(r.Body).Decode(&ps); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	created, err := h.Svc.Create(r.Context(), ps)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// ServeList handles GET /. Optional classification and position query
// parameters narrow the list; limit/skip page it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := projectstudysvc.Filter{
		Classification: q.Get("classification"),
		Position:       q.Get("position"),
	}

	items, total, err := h.Svc.List(r.Context(), f, respond.Paging(r))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Page(w, items, total)
}

// ServeLatest handles GET /latest. With a position query parameter the
// result is restricted to that position; with a user_id parameter the
// position is resolved from the user's profile.
func (h *Handler) ServeLatest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []models.ProjectStudy
		err   error
	)
	switch {
	case q.Get("user_id") != "":
		var userID primitive.ObjectID
		userID, err = primitive.ObjectIDFromHex(q.Get("user_id"))
		if err != nil {
			respond.Error(w, h.Log, apperr.InvalidArgumentf("user_id is not a valid id: %q", q.Get("user_id")))
			return
		}
		items, err = h.Svc.LatestByPosition(r.Context(), &userID, "")
	case q.Get("position") != "":
		items, err = h.Svc.LatestByPosition(r.Context(), nil, q.Get("position"))
	default:
		items, err = h.Svc.Latest(r.Context())
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ServePositions handles GET /positions.
func (h *Handler) ServePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Svc.Positions(r.Context())
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, positions)
}

// ServeGet handles GET /{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ps, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}

// ServeGetByTitle handles GET /by-title?title=...
func (h *Handler) ServeGetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("title query parameter is required"))
		return
	}

	ps, err := h.Svc.GetByTitle(r.Context(), title)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}

// ServeGetByOwner handles GET /owner/{ownerID}.
func (h *Handler) ServeGetByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := respond.ObjectIDParam(r, "ownerID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	items, err := h.Svc.GetByOwner(r.Context(), ownerID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// updateRequest is the PATCH /{id} payload. Absent fields are left
// untouched.
type updateRequest struct {
	NickName          *string          `json:"nick_name"`
	Name              *string          `json:"name"`
	Title             *string          `json:"title"`
	Description       *string          `json:"description"`
	Classification    *string          `json:"classification"`
	HowContactTitle   *string          `json:"how_contact_title"`
	HowContactContent *string          `json:"how_contact_content"`
	Process           *string          `json:"process"`
	Deadline          *time.Time       `json:"deadline"`
	Recruits          *string          `json:"recruits"`
	RecruitsStatus    *string          `json:"recruits_status"`
	ProfileImageURL   *string          `json:"profile_image_url"`
	Position          models.Positions `json:"position"`
}

// ServeUpdate handles PATCH /{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	upd := projectstudystore.Update{
		NickName:          req.NickName,
		Name:              req.Name,
		Title:             req.Title,
		Description:       req.Description,
		Classification:    req.Classification,
		HowContactTitle:   req.HowContactTitle,
		HowContactContent: req.HowContactContent,
		Process:           req.Process,
		Recruits:          req.Recruits,
		RecruitsStatus:    req.RecruitsStatus,
		Deadline:          req.Deadline,
		ProfileImageURL:   req.ProfileImageURL,
		Position:          req.Position,
	}

	ps, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}

// ServeDelete handles DELETE /{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ps, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}

// commentRequest is the payload for adding or editing a comment.
type commentRequest struct {
	Author  string             `json:"author"`
	OwnerID primitive.ObjectID `json:"owner_id"`
	Content string             `json:"content"`
}

// ServeAddComment handles POST /{id}/comments. Adding a comment
// notifies the post owner unless they commented on their own post.
func (h *Handler) ServeAddComment(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	ps, err := h.Svc.AddComment(r.Context(), id, models.Comment{
		Author:  req.Author,
		OwnerID: req.OwnerID,
		Content: req.Content,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, ps)
}

// ServeComments handles GET /{id}/comments with limit/skip paging.
func (h *Handler) ServeComments(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	limit, skip := respond.Window(r)
	items, total, err := h.Svc.Comments(r.Context(), id, limit, skip)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Page(w, items, total)
}

// ServeUpdateComment handles PATCH /{id}/comments/{commentID}.
func (h *Handler) ServeUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	commentID, err := respond.ObjectIDParam(r, "commentID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	ps, err := h.Svc.UpdateComment(r.Context(), id, commentID, req.Content)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}

// ServeRemoveComment handles DELETE /{id}/comments/{commentID}.
func (h *Handler) ServeRemoveComment(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	commentID, err := respond.ObjectIDParam(r, "commentID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ps, err := h.Svc.RemoveComment(r.Context(), id, commentID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ps)
}
