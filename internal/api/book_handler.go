package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tobrien/bookvault-api/internal/api/shared"
	"github.com/tobrien/bookvault-api/internal/domain"
	"github.com/tobrien/bookvault-api/internal/platform/logger"
	"github.com/tobrien/bookvault-api/internal/store"
)

// Listing defaults when the query carries no usable values.
const (
	defaultPage  = 1
	defaultLimit = 5
)

// BookHandler handles book resource API requests.
type BookHandler struct {
	bookStore store.BookStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewBookHandler(bookStore store.BookStore, log *slog.Logger) *BookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BookHandler{
		bookStore: bookStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "book_handler")),
	}
}

// Create handles POST /books. Requires authentication.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := domain.NewBook(req.Title, req.Author, req.ISBN, req.Description, req.PublishedDate)
	if err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	if userID, ok := shared.UserIDFromContext(r.Context()); ok {
		log.Info("book created", slog.String("book_id", book.ID.String()),
			slog.String("user_id", userID.String()))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgBookAdded},
		Book:     book,
	})
}

// List handles GET /books with optional title/author substring filters
// and offset pagination. Title wins when both filters are present.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := parsePositiveInt(query.Get("page"), defaultPage)
	limit := parsePositiveInt(query.Get("limit"), defaultLimit)

	filter := store.ListFilter{
		Title:  query.Get("title"),
		Author: query.Get("author"),
		Page:   page,
		Limit:  limit,
	}

	books, err := h.bookStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookListResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgBooks},
		Page:     page,
		Limit:    limit,
		Books:    books,
	})
}

// Get handles GET /books/{id}. Absence is reported through the envelope
// rather than a silent null payload.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithIssue(w, r, msgBookNotFound)
			return
		}
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgSingleBook},
		Book:     book,
	})
}

// Update handles PUT /books/{id}. Requires authentication. The full
// record is replaced and the post-update state is returned.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	existing, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithIssue(w, r, msgBookNotFound)
			return
		}
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	book := &domain.Book{
		ID:            id,
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		PublishedDate: req.PublishedDate,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	updated, err := h.bookStore.Update(r.Context(), book)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithIssue(w, r, msgBookNotFound)
			return
		}
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgUpdatedBook},
		Book:     updated,
	})
}

// Delete handles DELETE /books/{id}. Requires authentication. Deleting
// an absent record still reports success with a null book; clients
// treat the operation as idempotent.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.bookStore.Delete(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrBookNotFound) {
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgDeletedBook},
		Book:     deleted,
	})
}

// decodeBookRequest parses and validates the write-path payload,
// answering with the required-fields envelope on any failure.
func (h *BookHandler) decodeBookRequest(w http.ResponseWriter, r *http.Request) (BookRequest, bool) {
	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return req, false
	}
	return req, true
}

// pathID extracts and parses the {id} path parameter.
func (h *BookHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithIssue(w, r, msgBookNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// parsePositiveInt parses a query value, falling back to def for empty,
// malformed, or non-positive input.
func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
