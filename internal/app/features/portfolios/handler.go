// internal/app/features/portfolios/handler.go

// Package portfolios exposes the mentor portfolio API: portfolio CRUD,
// embedded comments, the mentoring-request lifecycle, and the
// coaching-count rankings.
package portfolios

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mentorhub/internal/app/features/shared/respond"
	portfoliosvc "github.com/dalemusser/mentorhub/internal/app/services/portfolio"
	portfoliostore "github.com/dalemusser/mentorhub/internal/app/store/portfolios"
	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the portfolio service and logger for the API handlers.
type Handler struct {
	Svc *portfoliosvc.Service
	Log *zap.Logger
}

// NewHandler constructs a portfolios Handler.
func NewHandler(svc *portfoliosvc.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// ServeCreate handles POST /.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var p models.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	created, err := h.Svc.Create(r.Context(), p)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// ServeList handles GET /. An optional position query parameter narrows
// the list; limit/skip page it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	p := respond.Paging(r)

	var (
		items []models.Portfolio
		total int64
		err   error
	)
	if position != "" {
		items, total, err = h.Svc.ListByPosition(r.Context(), position, p)
	} else {
		items, total, err = h.Svc.List(r.Context(), p)
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Page(w, items, total)
}

// ServeGet handles GET /{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeGetByTitle handles GET /by-title?title=...
func (h *Handler) ServeGetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("title query parameter is required"))
		return
	}

	p, err := h.Svc.GetByTitle(r.Context(), title)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeGetByOwner handles GET /owner/{ownerID}.
func (h *Handler) ServeGetByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := respond.ObjectIDParam(r, "ownerID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	p, err := h.Svc.GetByOwner(r.Context(), ownerID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// updateRequest is the PATCH /{id} payload. Absent fields are left
// untouched.
type updateRequest struct {
	NickName        *string          `json:"nick_name"`
	Name            *string          `json:"name"`
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	Career          *string          `json:"career"`
	Status          *string          `json:"status"`
	ProfileImageURL *string          `json:"profile_image_url"`
	Position        models.Positions `json:"position"`
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

	p, err := h.Svc.Update(r.Context(), id, portfoliostore.Update{
		NickName:        req.NickName,
		Name:            req.Name,
		Title:           req.Title,
		Description:     req.Description,
		Career:          req.Career,
		Status:          req.Status,
		ProfileImageURL: req.ProfileImageURL,
		Position:        req.Position,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeDelete handles DELETE /{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	p, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeTopMentors handles GET /top. With a position query parameter the
// ranking is restricted to that position; with a user_id parameter the
// position is resolved from the user's profile.
func (h *Handler) ServeTopMentors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		items []models.Portfolio
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
		items, err = h.Svc.TopMentorsForUser(r.Context(), userID)
	case q.Get("position") != "":
		items, err = h.Svc.TopMentorsByPosition(r.Context(), q.Get("position"))
	default:
		items, err = h.Svc.TopMentors(r.Context())
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// commentRequest is the payload for adding or editing a comment.
type commentRequest struct {
	Author  string             `json:"author"`
	OwnerID primitive.ObjectID `json:"owner_id"`
	Content string             `json:"content"`
}

// ServeAddComment handles POST /{id}/comments.
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

	p, err := h.Svc.AddComment(r.Context(), id, models.Comment{
		Author:  req.Author,
		OwnerID: req.OwnerID,
		Content: req.Content,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, p)
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

	p, err := h.Svc.UpdateComment(r.Context(), id, commentID, req.Content)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeRemoveComment handles DELETE /{id}/comments/{commentID}.
// Removing a comment id that is not present returns the unchanged
// portfolio.
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

	p, err := h.Svc.RemoveComment(r.Context(), id, commentID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeAddMentoringRequest handles POST /{id}/mentoring-requests.
func (h *Handler) ServeAddMentoringRequest(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req struct {
		UserID primitive.ObjectID `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	p, err := h.Svc.AddMentoringRequest(r.Context(), id, req.UserID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, p)
}

// ServeRespondToMentoringRequest handles
// POST /{id}/mentoring-requests/{requestID}/respond. The action is
// "complete" or "reject"; any other value is rejected.
func (h *Handler) ServeRespondToMentoringRequest(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	requestID, err := respond.ObjectIDParam(r, "requestID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req struct {
		Action  string `json:"action"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	p, err := h.Svc.RespondToMentoringRequest(r.Context(), id, requestID, req.Action, req.Message)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeUpdateMentoringRequestStatus handles
// PATCH /{id}/mentoring-requests/{requestID}.
func (h *Handler) ServeUpdateMentoringRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	requestID, err := respond.ObjectIDParam(r, "requestID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	var req struct {
		Status models.MentoringStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	p, err := h.Svc.UpdateMentoringRequestStatus(r.Context(), id, requestID, req.Status)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, p)
}

// ServeMentoringRequestsByOwner handles
// GET /owner/{ownerID}/mentoring-requests with an optional status
// filter.
func (h *Handler) ServeMentoringRequestsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := respond.ObjectIDParam(r, "ownerID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	status := models.MentoringStatus(r.URL.Query().Get("status"))
	items, err := h.Svc.MentoringRequestsByOwner(r.Context(), ownerID, status)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ServeMentoringRequestsByUser handles
// GET /mentoring-requests/user/{userID} with an optional status filter.
// Each entry carries the id of the portfolio it was made against.
func (h *Handler) ServeMentoringRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.ObjectIDParam(r, "userID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	status := models.MentoringStatus(r.URL.Query().Get("status"))
	items, err := h.Svc.MentoringRequestsByUser(r.Context(), userID, status)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}
