// internal/app/features/notifications/handler.go

// Package notifications exposes the per-user notification feed.
package notifications

import (
	"net/http"

	"github.com/dalemusser/mentorhub/internal/app/features/shared/respond"
	notificationstore "github.com/dalemusser/mentorhub/internal/app/store/notifications"
	"go.uber.org/zap"
)

// Handler serves notification reads and the read-flag update.
type Handler struct {
	Store *notificationstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(store *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeListByUser handles GET /user/{userID}, newest first.
func (h *Handler) ServeListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := respond.ObjectIDParam(r, "userID")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	items, err := h.Store.ListByUserID(r.Context(), userID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ServeMarkRead handles POST /{id}/read.
func (h *Handler) ServeMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ObjectIDParam(r, "id")
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	if err := h.Store.MarkRead(r.Context(), id); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"read": true})
}
