package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"clip-market/internal/core/domain"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	"invalid_amount":       http.StatusBadRequest,
	"invalid_view_count":   http.StatusBadRequest,
	"invalid_input":        http.StatusBadRequest,
	"campaign_inactive":    http.StatusConflict,
	"insufficient_budget":  http.StatusConflict,
	"invalid_transition":   http.StatusConflict,
	"campaign_not_found":   http.StatusNotFound,
	"submission_not_found": http.StatusNotFound,
	"user_not_found":       http.StatusNotFound,
	"unauthenticated":      http.StatusUnauthorized,
	"forbidden":            http.StatusForbidden,
}

// writeError maps a ledger error to its status code. Anything that is not a
// ledger error is logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	status, ok := statusByCode[code]
	msg := err.Error()
	if !ok {
		status = http.StatusInternalServerError
		msg = "internal error"
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: msg}})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{Code: "invalid_request", Message: msg}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// maxBodyBytes caps request bodies read by decode.
const maxBodyBytes = 64 << 10

// decode reads a JSON body into v. Money fields reject malformed amounts
// while decoding, so those surface as invalid_amount.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: errorDetail{
				Code:    "request_too_large",
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}})
			return false
		}
		if domain.Code(err) != "internal" {
			h.writeError(w, r, err)
		} else {
			h.badRequest(w, "invalid JSON")
		}
		return false
	}
	return true
}
