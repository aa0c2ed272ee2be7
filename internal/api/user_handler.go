package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tobrien/bookvault-api/internal/api/shared"
	"github.com/tobrien/bookvault-api/internal/domain"
	"github.com/tobrien/bookvault-api/internal/platform/logger"
	"github.com/tobrien/bookvault-api/internal/service/auth"
	"github.com/tobrien/bookvault-api/internal/store"
)

// UserHandler handles registration and login requests.
type UserHandler struct {
	userStore store.UserStore
	tokens    auth.TokenService
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewUserHandler(
	userStore store.UserStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		tokens:    tokens,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /user/register.
//
// The email uniqueness check is read-then-write; two concurrent
// registrations can both pass it. The unique constraint on the email
// column catches the loser of that race as a duplicate.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}

	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		shared.RespondWithIssue(w, r, msgAlreadyRegistered)
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		shared.RespondWithIssueAndLog(w, r, msgInternal, err)
		return
	}

	digest, err := h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithIssueAndLog(w, r, msgInternal, err)
		return
	}

	user, err := domain.NewUser(req.Email, digest)
	if err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithIssue(w, r, msgAlreadyRegistered)
			return
		}
		shared.RespondWithIssueAndLog(w, r, SafeErrorMessage(err), err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Issue: false,
		Msg:   msgUserRegistered,
	})
}

// Login handles POST /user/login. On success the response carries a
// signed token whose claims embed the user's ID and email.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithIssue(w, r, msgFieldsRequired)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithIssue(w, r, msgUserNotFound)
			return
		}
		shared.RespondWithIssueAndLog(w, r, msgInternal, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithIssue(w, r, msgInvalidPassword)
		return
	}

	token, err := h.tokens.Issue(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithIssueAndLog(w, r, msgInternal, err)
		return
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Envelope: shared.Envelope{Issue: false, Msg: msgLoginSuccess},
		Token:    token,
		User:     LoginUser{Email: user.Email},
	})
}
