package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// List and item related errors
var (
	ErrListNotFound    = errors.Wrap(NotFoundError, "list not found")
	ErrItemNotFound    = errors.Wrap(NotFoundError, "item not found")
	ErrNoListSelected  = errors.Wrap(BadParameterError, "no list selected")
	ErrEmptyItemText   = errors.Wrap(BadParameterError, "item text is empty")
	ErrEmptyListName   = errors.Wrap(BadParameterError, "list name is empty")
	ErrDefaultListOnly = errors.Wrap(BadParameterError, "the default list cannot be deleted")
)

// Voice pipeline related errors
var (
	ErrMissingSpeechCredential = errors.New("speech backend credential is not configured")
	ErrEmptyTranscript         = errors.Wrap(BadParameterError, "empty transcript")
)
