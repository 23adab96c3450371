// Package server provides the HTTP API over fit analysis, document tailoring and draft sessions.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/tailor-engine/internal/ingestion"
	"github.com/jonathan/tailor-engine/internal/suggestions"
)

// ErrDraftNotFound indicates no draft exists with the id
type ErrDraftNotFound struct {
	DraftID uuid.UUID
}

func (e *ErrDraftNotFound) Error() string {
	return fmt.Sprintf("draft not found: %s", e.DraftID)
}

// ErrForbidden indicates the actor does not own the draft
type ErrForbidden struct {
	ActorID string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("actor %s may not access this draft", e.ActorID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound  *ErrDraftNotFound
		forbidden *ErrForbidden
		invalid   *ErrValidation
		loadErr   *ingestion.LoadError
		draftErr  *suggestions.ValidationError
		permErr   *suggestions.PermissionError
		writeErr  *suggestions.ExternalWriteError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden), errors.As(err, &permErr):
		return http.StatusForbidden
	case errors.As(err, &draftErr):
		if draftErr.Message == suggestions.MsgSubmitInProgress {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	case errors.As(err, &invalid), errors.As(err, &loadErr):
		return http.StatusBadRequest
	case errors.As(err, &writeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
