package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/service"
	"go.uber.org/zap"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отображает ошибки сессии в HTTP статусы
func writeError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	var (
		validationErr   *service.ValidationError
		registrationErr *service.RegistrationError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()}, logger)
	case errors.Is(err, domain.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()}, logger)
	case errors.Is(err, domain.ErrNotRegistered):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()}, logger)
	case errors.Is(err, domain.ErrExchangeInFlight),
		errors.Is(err, domain.ErrOrderFinalized),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrRegistrationInFlight),
		errors.Is(err, domain.ErrNoReceipt):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()}, logger)
	case errors.As(err, &registrationErr):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   err.Error(),
			Message: registrationErr.UserMessage(),
		}, logger)
	default:
		logger.Error("request failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"}, logger)
	}
}
