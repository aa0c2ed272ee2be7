package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tobrien/bookvault-api/internal/config"
	"github.com/tobrien/bookvault-api/internal/mocks"
	"github.com/tobrien/bookvault-api/internal/service/auth"
)

// newTestApplication wires the application against in-memory stores and
// a real token service, skipping the database entirely.
func newTestApplication(t *testing.T) (*application, *mocks.MockBookStore) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			TokenSecret: "router-test-secret-that-is-32-chars!!",
			BcryptCost:  bcrypt.MinCost,
		},
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	require.NoError(t, err)

	bookStore := mocks.NewMockBookStore()
	app := &application{
		config:       cfg,
		logger:       slog.Default(),
		userStore:    mocks.NewMockUserStore(),
		bookStore:    bookStore,
		tokenService: tokenService,
		hasher:       auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}
	return app, bookStore
}

func request(t *testing.T, router http.Handler, method, path, token string, payload any) map[string]any {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("auth", token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

func TestRouter_RegisterLoginAndGatedWrites(t *testing.T) {
	app, bookStore := newTestApplication(t)
	router := app.setupRouter()

	creds := map[string]string{
		"email":    "reader@example.com",
		"password": "hunter2hunter2",
	}
	book := map[string]string{
		"Title":         "Piranesi",
		"Author":        "Susanna Clarke",
		"ISBN":          "978-1635575637",
		"Description":   "The house is kind.",
		"PublishedDate": "2020-09-15",
	}

	// Register and log in
	resp := request(t, router, "POST", "/user/register", "", creds)
	assert.Equal(t, false, resp["issue"])

	resp = request(t, router, "POST", "/user/login", "", creds)
	require.Equal(t, false, resp["issue"])
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	// Writes without a token never reach the store
	resp = request(t, router, "POST", "/books", "", book)
	assert.Equal(t, true, resp["issue"])
	assert.Equal(t, "Try to login again...", resp["msg"])
	assert.Empty(t, bookStore.Books)

	resp = request(t, router, "POST", "/books", "not-a-real-token", book)
	assert.Equal(t, true, resp["issue"])
	assert.Equal(t, "token is wrong.. login again...", resp["msg"])
	assert.Empty(t, bookStore.Books)

	// The login token opens the gate
	resp = request(t, router, "POST", "/books", token, book)
	require.Equal(t, false, resp["issue"])
	assert.Len(t, bookStore.Books, 1)

	created, _ := resp["book"].(map[string]any)
	require.NotNil(t, created)
	bookID, _ := created["id"].(string)
	require.NotEmpty(t, bookID)

	// Reads stay public
	resp = request(t, router, "GET", "/books/"+bookID, "", nil)
	assert.Equal(t, false, resp["issue"])

	resp = request(t, router, "GET", "/books?title=pira", "", nil)
	require.Equal(t, false, resp["issue"])
	books, _ := resp["books"].([]any)
	assert.Len(t, books, 1)

	// Update and delete through the gate
	book["Title"] = "Piranesi (revised)"
	resp = request(t, router, "PUT", "/books/"+bookID, token, book)
	require.Equal(t, false, resp["issue"])
	updated, _ := resp["book"].(map[string]any)
	assert.Equal(t, "Piranesi (revised)", updated["Title"])

	resp = request(t, router, "DELETE", "/books/"+bookID, token, nil)
	assert.Equal(t, false, resp["issue"])
	assert.Empty(t, bookStore.Books)
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
