// internal/app/features/shared/respond/respond.go

// Package respond holds the JSON response and request-parsing helpers
// shared by the API feature packages. Error replies are derived from
// the apperr taxonomy so handlers never map status codes themselves.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/mentorhub/internal/app/system/apperr"
	"github.com/dalemusser/mentorhub/internal/app/system/paging"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// JSON writes v as the JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Page writes a list response with its total match count.
func Page(w http.ResponseWriter, items any, total int64) {
	JSON(w, http.StatusOK, map[string]any{
		"items":       items,
		"total_count": total,
	})
}

// Error writes the error reply for err. Validation and invalid-argument
// failures are the caller's fault; lookup failures point at a dependent
// service; everything else is reported as an internal error and logged.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		JSON(w, http.StatusBadRequest, map[string]any{
			"error":  ve.Error(),
			"fields": ve.Fields,
		})
		return
	}

	switch {
	case apperr.IsInvalidArgument(err):
		JSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
	case apperr.IsNotFound(err):
		JSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
	case apperr.IsLookup(err):
		log.Warn("dependent lookup failed", zap.Error(err))
		JSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
	default:
		log.Error("request failed", zap.Error(err))
		JSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}

// ObjectIDParam parses the named chi URL parameter as an ObjectID.
func ObjectIDParam(r *http.Request, name string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidArgumentf("%s is not a valid id: %q", name, raw)
	}
	return id, nil
}

// Paging reads limit/skip query parameters into paging params, falling
// back to the defaults for absent or malformed values.
func Paging(r *http.Request) paging.Params {
	p := paging.Params{Limit: paging.DefaultLimit}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && v > 0 {
		p.Limit = v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("skip"), 10, 64); err == nil && v > 0 {
		p.Skip = v
	}
	return p
}

// Window reads limit/skip query parameters for embedded-array paging.
func Window(r *http.Request) (limit, skip int64) {
	p := Paging(r)
	return p.Limit, p.Skip
}
