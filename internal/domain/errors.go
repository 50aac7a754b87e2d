package domain

import "errors"

// ErrNotFound is returned by store, repo, and service functions when the
// addressed entity does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. blank
// template name, deleting the last remaining day).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrParse is returned by the transfer layer when an imported document is
// not valid JSON at all.
// Handlers should map this to HTTP 400 Bad Request.
var ErrParse = errors.New("could not parse file")

// ErrSchema is returned by the transfer layer when a well-formed JSON
// document does not contain a usable itinerary (no "days" array).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrSchema = errors.New("file format invalid, no itinerary data found")

// ErrUnavailable is returned when the assistant cannot produce a result.
// It is never fatal; handlers should map it to HTTP 503.
var ErrUnavailable = errors.New("assistant unavailable")
