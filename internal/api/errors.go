package api

import (
	"errors"

	"github.com/tobrien/bookvault-api/internal/store"
)

// Client-facing messages. Wording is part of the API contract; clients
// string-match several of these.
const (
	msgFieldsRequired    = "all fields are required"
	msgBookAdded         = "book added!"
	msgBooks             = "books"
	msgSingleBook        = "single book"
	msgUpdatedBook       = "updated book"
	msgDeletedBook       = "deleted book"
	msgBookNotFound      = "book not found"
	msgUserRegistered    = "The new user has been registered"
	msgAlreadyRegistered = "User has already registered"
	msgUserNotFound      = "User Not Found!"
	msgInvalidPassword   = "Invalid Password!"
	msgLoginSuccess      = "Login successful!"
	msgInternal          = "something went wrong"
)

// SafeErrorMessage maps internal errors to client-facing envelope
// messages. Raw store errors are never exposed; callers log them
// server-side and send only the sanitized message.
func SafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrBookNotFound):
		return msgBookNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, store.ErrEmailExists):
		return msgAlreadyRegistered
	case errors.Is(err, store.ErrInvalidEntity):
		return msgFieldsRequired
	default:
		return msgInternal
	}
}
