package api

import (
	"github.com/tobrien/bookvault-api/internal/api/shared"
	"github.com/tobrien/bookvault-api/internal/domain"
)

// Request and response structures. Every response embeds the uniform
// envelope; field names on the book payload keep the capitalized wire
// form existing clients send.

// BookRequest defines the payload for book create and update endpoints.
// All declared fields are mandatory on the write path.
type BookRequest struct {
	Title         string `json:"Title"         validate:"required"`
	Author        string `json:"Author"        validate:"required"`
	ISBN          string `json:"ISBN"          validate:"required"`
	Description   string `json:"Description"   validate:"required"`
	PublishedDate string `json:"PublishedDate" validate:"required"`
}

// BookResponse is the envelope for single-book endpoints.
type BookResponse struct {
	shared.Envelope
	Book *domain.Book `json:"book"`
}

// BookListResponse is the envelope for the book listing endpoint.
type BookListResponse struct {
	shared.Envelope
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Books []*domain.Book `json:"books"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser is the user fragment returned on successful login.
type LoginUser struct {
	Email string `json:"email"`
}

// LoginResponse is the envelope for a successful login.
type LoginResponse struct {
	shared.Envelope
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
