package client

import "errors"

var (
	// ErrBadRequest maps HTTP 400: the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401: missing, expired, or invalid token, or
	// rejected login credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound maps HTTP 404: the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrConflict maps HTTP 409: the email is already taken by another user.
	ErrConflict = errors.New("email conflict")

	// ErrInternalServerError maps HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
