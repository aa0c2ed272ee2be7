package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a single catalog entry. All descriptive fields are free
// text; nothing enforces ISBN uniqueness. JSON field names keep the
// capitalized wire form that existing clients send and expect back.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"Title"`
	Author        string    `json:"Author"`
	ISBN          string    `json:"ISBN"`
	Description   string    `json:"Description"`
	PublishedDate string    `json:"PublishedDate"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBook creates a new Book with the given fields, assigning a fresh ID
// and creation/update timestamps. Returns ErrMissingFields if any field
// is empty.
func NewBook(title, author, isbn, description, publishedDate string) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		ID:            uuid.New(),
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		Description:   description,
		PublishedDate: publishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks that the Book has an ID and that every declared field
// is non-empty.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrInvalidID
	}
	if b.Title == "" || b.Author == "" || b.ISBN == "" ||
		b.Description == "" || b.PublishedDate == "" {
		return ErrMissingFields
	}
	return nil
}
