package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/engine"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// statusFor maps engine and domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientPoints),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrRewardInactive),
		errors.Is(err, engine.ErrNotCollected):
		return http.StatusConflict
	case errors.Is(err, engine.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNothingDetected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// humaError converts err into a huma status error. Server errors carry the
// operation prefix.
func humaError(prefix string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return huma.Error500InternalServerError(prefix + ": " + err.Error())
	}
	return huma.NewError(status, err.Error())
}

// errorBody is the JSON error shape returned by the echo handlers.
func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
