package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tobrien/bookvault-api/internal/domain"
	"github.com/tobrien/bookvault-api/internal/store"
)

// MockBookStore implements store.BookStore for testing. The default
// implementation is an in-memory map with the same filter, ordering,
// and pagination semantics as the Postgres store.
type MockBookStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, book *domain.Book) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListFn    func(ctx context.Context, filter store.ListFilter) ([]*domain.Book, error)
	UpdateFn  func(ctx context.Context, book *domain.Book) (*domain.Book, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// Data for the default implementation
	Books       map[uuid.UUID]*domain.Book
	CreateError error
	ListError   error
}

// NewMockBookStore creates a new mock store with initialized defaults.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books: make(map[uuid.UUID]*domain.Book),
	}
}

var _ store.BookStore = (*MockBookStore)(nil)

// Create implements the BookStore interface.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Books[book.ID] = book
	return nil
}

// GetByID implements the BookStore interface.
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	book, exists := m.Books[id]
	if !exists {
		return nil, store.ErrBookNotFound
	}
	return book, nil
}

// List implements the BookStore interface.
func (m *MockBookStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}

	matched := make([]*domain.Book, 0, len(m.Books))
	for _, book := range m.Books {
		switch {
		case filter.Title != "":
			if strings.Contains(strings.ToLower(book.Title), strings.ToLower(filter.Title)) {
				matched = append(matched, book)
			}
		case filter.Author != "":
			if strings.Contains(strings.ToLower(book.Author), strings.ToLower(filter.Author)) {
				matched = append(matched, book)
			}
		default:
			matched = append(matched, book)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})

	limit := filter.Limit
	if limit < 1 {
		limit = 5
	}
	offset := filter.Offset()
	if offset >= len(matched) {
		return []*domain.Book{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// Update implements the BookStore interface.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	if _, exists := m.Books[book.ID]; !exists {
		return nil, store.ErrBookNotFound
	}
	updated := *book
	updated.UpdatedAt = time.Now().UTC()
	m.Books[book.ID] = &updated
	return &updated, nil
}

// Delete implements the BookStore interface.
func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	book, exists := m.Books[id]
	if !exists {
		return nil, store.ErrBookNotFound
	}
	delete(m.Books, id)
	return book, nil
}
