package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/models"
)

func newAdapter(t *testing.T, handler http.Handler) *ServerAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewServerAdapter(server.URL, 5*time.Second, logger.Nop())
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", normalizeBaseURL("localhost:8080"))
	assert.Equal(t, "http://localhost:8080", normalizeBaseURL(" http://localhost:8080/ "))
	assert.Equal(t, "https://api.example.hu", normalizeBaseURL("https://api.example.hu/"))
	assert.Equal(t, "", normalizeBaseURL(""))
}

func TestLogin_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "anna", creds.Login)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt-token"}`))
	})
	a := newAdapter(t, mux)

	require.Empty(t, a.Token())
	require.NoError(t, a.Login(context.Background(), "anna", "titok123"))
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	a := newAdapter(t, mux)

	err := a.Login(context.Background(), "anna", "rossz")
	assert.ErrorIs(t, err, record.ErrNotAuthenticated)
	assert.Empty(t, a.Token())
}

func TestRegister_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"login":"anna","token":"fresh-token"}`))
	})
	a := newAdapter(t, mux)

	require.NoError(t, a.Register(context.Background(), "anna", "Kiss Anna", "titok123"))
	assert.Equal(t, "fresh-token", a.Token())
}

func TestListRecords_SendsBearerToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/records/contacts", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"id-1","collection":"contacts","payload":{"name":"Kiss Anna"}}]`))
	})
	a := newAdapter(t, mux)
	a.token = "session-token"

	envelopes, err := a.ListRecords(context.Background(), "contacts")
	require.NoError(t, err)

	assert.Equal(t, "Bearer session-token", gotAuth)
	require.Len(t, envelopes, 1)
	assert.Equal(t, "id-1", envelopes[0].ID)
	assert.JSONEq(t, `{"name":"Kiss Anna"}`, string(envelopes[0].Payload))
}

func TestGetRecord_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/records/goals/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	a := newAdapter(t, mux)
	a.token = "session-token"

	_, err := a.GetRecord(context.Background(), "goals", "missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestCreateRecord_ExpiredSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/records/notes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	a := newAdapter(t, mux)
	a.token = "stale-token"

	_, err := a.CreateRecord(context.Background(), models.RecordEnvelope{
		ID:         "id-1",
		Collection: "notes",
		Payload:    json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, record.ErrNotAuthenticated)
}

func TestUpdateRecord_RoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/records/contacts/id-1", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
	a := newAdapter(t, mux)
	a.token = "session-token"

	updated, err := a.UpdateRecord(context.Background(), models.RecordEnvelope{
		ID:         "id-1",
		Collection: "contacts",
		Payload:    json.RawMessage(`{"name":"Kiss Anna"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", updated.ID)
}

func TestDeleteRecord_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/records/tasks/id-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	a := newAdapter(t, mux)
	a.token = "session-token"

	err := a.DeleteRecord(context.Background(), "tasks", "id-1")
	assert.ErrorIs(t, err, record.ErrStorage)
}

func TestFileContent_RoundTrip(t *testing.T) {
	stored := make(map[string][]byte)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/files/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		stored[r.PathValue("id")] = body
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /api/files/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		content, ok := stored[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(content)
	})
	a := newAdapter(t, mux)
	a.token = "session-token"
	ctx := context.Background()

	require.NoError(t, a.UploadFileContent(ctx, "file-1", []byte("tartalom")))

	content, err := a.DownloadFileContent(ctx, "file-1")
	require.NoError(t, err)
	assert.Equal(t, "tartalom", string(content))

	_, err = a.DownloadFileContent(ctx, "missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collections":{"contacts":2,"goals":1},"total":3}`))
	})
	a := newAdapter(t, mux)
	a.token = "session-token"

	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Collections["contacts"])
}
