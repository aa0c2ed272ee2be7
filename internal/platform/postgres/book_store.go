package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tobrien/bookvault-api/internal/domain"
	"github.com/tobrien/bookvault-api/internal/platform/logger"
	"github.com/tobrien/bookvault-api/internal/store"
)

// defaultListLimit caps a listing when the filter supplies no usable limit.
const defaultListLimit = 5

// PostgresBookStore implements the store.BookStore interface using a
// PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO books (id, title, author, isbn, description, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.ISBN,
		book.Description,
		book.PublishedDate,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return store.NewStoreError("book", "create", "insert failed", err)
	}

	log.Info("book created successfully", slog.String("book_id", book.ID.String()))
	return nil
}

// GetByID implements store.BookStore.GetByID
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectBookColumns + ` WHERE id = $1`

	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.String("book_id", id.String()))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, store.NewStoreError("book", "get", "query failed", err)
	}

	return book, nil
}

// List implements store.BookStore.List
// Results are ordered by last update time descending. When both title
// and author filters are present, title wins and author is ignored.
func (s *PostgresBookStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	limit := filter.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	query := selectBookColumns
	args := []any{}
	switch {
	case filter.Title != "":
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, filter.Title)
	case filter.Author != "":
		query += ` WHERE author ILIKE '%' || $1 || '%'`
		args = append(args, filter.Author)
	}
	query += fmt.Sprintf(" ORDER BY updated_at DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Offset(), limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, store.NewStoreError("book", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	books := make([]*domain.Book, 0, limit)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("book", "list", "scan failed", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		log.Error("book row iteration failed", slog.String("error", err.Error()))
		return nil, store.NewStoreError("book", "list", "iteration failed", err)
	}

	return books, nil
}

// Update implements store.BookStore.Update
// It replaces the full record and returns the post-update state.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, description = $5,
			published_date = $6, updated_at = $7
		WHERE id = $1
		RETURNING id, title, author, isbn, description, published_date, created_at, updated_at
	`

	updated, err := scanBook(s.db.QueryRowContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.ISBN,
		book.Description,
		book.PublishedDate,
		time.Now().UTC(),
	))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for update", slog.String("book_id", book.ID.String()))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return nil, store.NewStoreError("book", "update", "update failed", err)
	}

	log.Info("book updated successfully", slog.String("book_id", book.ID.String()))
	return updated, nil
}

// Delete implements store.BookStore.Delete
// It removes the record and returns the deleted state.
// Returns store.ErrBookNotFound if no record existed.
func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM books
		WHERE id = $1
		RETURNING id, title, author, isbn, description, published_date, created_at, updated_at
	`

	deleted, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for delete", slog.String("book_id", id.String()))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, store.NewStoreError("book", "delete", "delete failed", err)
	}

	log.Info("book deleted successfully", slog.String("book_id", id.String()))
	return deleted, nil
}

const selectBookColumns = `
	SELECT id, title, author, isbn, description, published_date, created_at, updated_at
	FROM books`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var book domain.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Description,
		&book.PublishedDate,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}
