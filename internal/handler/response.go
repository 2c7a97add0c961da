package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, fields []FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

var outcomeErrors = map[teller.FailureKind]*AppError{
	teller.KindPermission: ErrForbidden,
	teller.KindValidation: ErrValidationFailed,
	teller.KindBusiness:   ErrBusinessRule,
	teller.KindNotFound:   ErrResourceNotFound,
	teller.KindInternal:   ErrInternalError,
}

// RespondOutcome writes a teller outcome. Failures keep the teller's message
// and take their status from the failure kind.
func RespondOutcome(w http.ResponseWriter, status int, out teller.Outcome, data any) {
	if out.Success {
		RespondJSON(w, status, APIResponse{Success: true, Message: out.Message, Data: data})
		return
	}

	appErr, ok := outcomeErrors[out.Kind]
	if !ok {
		appErr = ErrInternalError
	}
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Message: out.Message,
		Error: &APIError{
			Code:    appErr.Code,
			Message: out.Message,
		},
	})
}

func RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *AppError

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		appErr = ErrInvalidCredentials
	case errors.Is(err, domain.ErrPermissionDenied):
		appErr = ErrForbidden
	case errors.Is(err, domain.ErrDuplicateKey):
		appErr = ErrUserExists
	case errors.Is(err, domain.ErrNotFound):
		appErr = ErrResourceNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		appErr = ErrInvalidRequest
	default:
		slog.Error("unhandled domain error", "error", err)
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr, nil)
}
