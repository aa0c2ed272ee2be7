package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobrien/bookvault-api/internal/api/shared"
	"github.com/tobrien/bookvault-api/internal/domain"
	"github.com/tobrien/bookvault-api/internal/mocks"
)

func newUserHandler(store *mocks.MockUserStore, tokens *mocks.MockTokenService, hasher *mocks.MockPasswordHasher) *UserHandler {
	return NewUserHandler(store, tokens, hasher, hasher, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(payload))
	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{})

		recorder := postJSON(t, h.Register, "/user/register", map[string]string{
			"email":    "reader@example.com",
			"password": "hunter2hunter2",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp shared.Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.False(t, resp.Issue)
		assert.Equal(t, "The new user has been registered", resp.Msg)

		user, ok := store.Users["reader@example.com"]
		require.True(t, ok)
		assert.Equal(t, "hashed-hunter2hunter2", user.HashedPassword,
			"only the digest may be stored")
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			payload map[string]string
		}{
			{"missing email", map[string]string{"password": "hunter2hunter2"}},
			{"missing password", map[string]string{"email": "reader@example.com"}},
			{"empty payload", map[string]string{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := mocks.NewMockUserStore()
				h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{})

				recorder := postJSON(t, h.Register, "/user/register", tt.payload)
				var resp shared.Envelope
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.True(t, resp.Issue)
				assert.Equal(t, "all fields are required", resp.Msg)
				assert.Empty(t, store.Users)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{})

		payload := map[string]string{
			"email":    "reader@example.com",
			"password": "hunter2hunter2",
		}
		postJSON(t, h.Register, "/user/register", payload)
		recorder := postJSON(t, h.Register, "/user/register", payload)

		var resp shared.Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.True(t, resp.Issue)
		assert.Equal(t, "User has already registered", resp.Msg)
		assert.Len(t, store.Users, 1, "no duplicate record may be created")
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T, store *mocks.MockUserStore) *domain.User {
		t.Helper()
		user, err := domain.NewUser("reader@example.com", "hashed-hunter2hunter2")
		require.NoError(t, err)
		store.Users[user.Email] = user
		return user
	}

	t.Run("success returns token and user fragment", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		seedUser(t, store)
		tokens := &mocks.MockTokenService{Token: "signed-token"}
		h := newUserHandler(store, tokens, &mocks.MockPasswordHasher{ShouldSucceed: true})

		recorder := postJSON(t, h.Login, "/user/login", map[string]string{
			"email":    "reader@example.com",
			"password": "hunter2hunter2",
		})

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.False(t, resp.Issue)
		assert.Equal(t, "Login successful!", resp.Msg)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "reader@example.com", resp.User.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{ShouldSucceed: true})

		recorder := postJSON(t, h.Login, "/user/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "hunter2hunter2",
		})

		var resp shared.Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.True(t, resp.Issue)
		assert.Equal(t, "User Not Found!", resp.Msg)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		seedUser(t, store)
		h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{ShouldSucceed: false})

		recorder := postJSON(t, h.Login, "/user/login", map[string]string{
			"email":    "reader@example.com",
			"password": "wrong",
		})

		var resp shared.Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.True(t, resp.Issue)
		assert.Equal(t, "Invalid Password!", resp.Msg)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockUserStore()
		h := newUserHandler(store, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{})

		recorder := postJSON(t, h.Login, "/user/login", map[string]string{"email": "reader@example.com"})

		var resp shared.Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.True(t, resp.Issue)
		assert.Equal(t, "all fields are required", resp.Msg)
	})
}
