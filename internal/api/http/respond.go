package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses: bad input is
// 400, illegal transitions are 409, missing entities are 404, the rest is 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	var sErr *domain.StateError
	var nErr *domain.NotFoundError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error(), Field: vErr.Field})
	case errors.As(err, &sErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: sErr.Error()})
	case errors.As(err, &nErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nErr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeBody parses and validates a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	if err := validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return domain.NewValidationError(invalid[0].Field(), "failed "+invalid[0].Tag()+" check")
		}
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}
