package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tobrien/bookvault-api/internal/domain"
)

// ListFilter describes the optional filters and pagination settings for
// a book listing. Exactly one substring filter applies per call: when
// both Title and Author are set, Title wins and Author is ignored.
// Matching is case-insensitive.
type ListFilter struct {
	Title  string
	Author string
	Page   int
	Limit  int
}

// Offset returns the number of records to skip for the configured page.
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create saves a new book to the store.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// List retrieves books matching the filter, ordered by last update
	// time descending, paginated by the filter's page and limit.
	List(ctx context.Context, filter ListFilter) ([]*domain.Book, error)

	// Update replaces the full record identified by book.ID and returns
	// the post-update state.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)

	// Delete removes a book by ID and returns the deleted record.
	// Returns ErrBookNotFound if no record existed.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}
