// Package apperrors defines the error taxonomy shared by the gallery
// pipeline and the HTTP layer. Client input errors (category, identifier)
// map to 400, auth failures to 401, host problems to 503.
package apperrors

import "errors"

var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnavailable       = errors.New("image host unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidToken      = errors.New("invalid token")
)
