package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/terminal/internal/models"
)

type memoryStore struct {
	saved   models.Session
	removed int
}

func (m *memoryStore) SaveSession(session models.Session) error {
	m.saved = session
	return nil
}

func (m *memoryStore) RemoveSession() error {
	m.saved = nil
	m.removed++
	return nil
}

func createMockHubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Contains(t, r.Header.Get("User-Agent"), "terminal/")

		var req loginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Remember)

		w.Header().Set("Content-Type", "application/json")

		switch {
		case req.Email == "user@example.com" && req.Password == "hunter2":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"access_token":"good-token","token_type":"bearer","uuid":"1234"}`))
		case req.Email == "empty@example.com":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect email or password"}`))
		}
	})

	mux.HandleFunc("/terminal/user", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"email":"user@example.com"}`))
		case "Bearer broken-token":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer good-token" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestClient_CreateSession(t *testing.T) {
	server := createMockHubServer(t)

	tests := []struct {
		name        string
		email       string
		password    string
		save        bool
		expectValid bool
		expectSaved bool
	}{
		{
			name:        "valid credentials",
			email:       "user@example.com",
			password:    "hunter2",
			expectValid: true,
		},
		{
			name:        "valid credentials remembered",
			email:       "user@example.com",
			password:    "hunter2",
			save:        true,
			expectValid: true,
			expectSaved: true,
		},
		{
			name:     "rejected credentials",
			email:    "user@example.com",
			password: "wrong",
			save:     true,
		},
		{
			name:     "empty session body",
			email:    "empty@example.com",
			password: "whatever",
			save:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			client := NewClient(server.URL, time.Second, store)

			session, err := client.CreateSession(context.Background(), tt.email, tt.password, tt.save)
			require.NoError(t, err)

			assert.Equal(t, tt.expectValid, session.IsValid())
			assert.Equal(t, tt.expectSaved, store.saved.IsValid())

			if tt.expectValid {
				assert.Equal(t, "good-token", session.AccessToken())
			}
		})
	}
}

func TestClient_CreateSession_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, nil)

	_, err := client.CreateSession(context.Background(), "user@example.com", "hunter2", false)
	assert.Error(t, err)
}

func TestClient_Login(t *testing.T) {
	server := createMockHubServer(t)

	tests := []struct {
		name          string
		session       models.Session
		expected      models.LoginStatus
		expectRemoved bool
	}{
		{
			name:     "accepted",
			session:  models.Session{"access_token": "good-token", "token_type": "bearer"},
			expected: models.LoginStatusSuccess,
		},
		{
			name:          "unauthorized",
			session:       models.Session{"access_token": "expired-token", "token_type": "bearer"},
			expected:      models.LoginStatusFailed,
			expectRemoved: true,
		},
		{
			name:     "server error",
			session:  models.Session{"access_token": "broken-token", "token_type": "bearer"},
			expected: models.LoginStatusIndeterminate,
		},
		{
			name:     "empty session",
			session:  models.Session{},
			expected: models.LoginStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			client := NewClient(server.URL, time.Second, store)

			status, err := client.Login(context.Background(), tt.session)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)

			if tt.expectRemoved {
				assert.Equal(t, 1, store.removed)
			} else {
				assert.Zero(t, store.removed)
			}
		})
	}
}

func TestClient_Login_NoResponse(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, nil)

	status, err := client.Login(context.Background(), models.Session{"access_token": "good-token"})
	require.NoError(t, err)
	assert.Equal(t, models.LoginStatusIndeterminate, status)
}

func TestClient_Logout(t *testing.T) {
	server := createMockHubServer(t)

	store := &memoryStore{saved: models.Session{"access_token": "good-token"}}
	client := NewClient(server.URL, time.Second, store)

	err := client.Logout(context.Background(), models.Session{"access_token": "good-token", "token_type": "bearer"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.removed)
	assert.False(t, store.saved.IsValid())
}

func TestClient_Logout_UnreachableStillForgetsSession(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	store := &memoryStore{saved: models.Session{"access_token": "good-token"}}
	client := NewClient(url, time.Second, store)

	err := client.Logout(context.Background(), models.Session{"access_token": "good-token"})
	assert.Error(t, err)
	assert.Equal(t, 1, store.removed)
}
