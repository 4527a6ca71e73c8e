package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applytrack/applytrack/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *SessionFile) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := NewSessionFile(filepath.Join(t.TempDir(), "session.json"))
	return New(srv.URL, NewStore(), sessions), sessions
}

func authOK(w http.ResponseWriter, name, token string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"user":  map[string]string{"name": name},
		"token": token,
	})
}

func TestClient_LoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		authOK(w, "peter", "tok-123")
	})

	c, sessions := newTestClient(t, mux)

	require.NoError(t, c.Login(context.Background(), "peter@example.com", "secretpass"))

	state := c.State()
	assert.Equal(t, "peter", state.User)
	assert.False(t, state.IsLoading)

	saved, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "peter", saved.Name)
	assert.Equal(t, "tok-123", saved.Token)
}

func TestClient_LoginFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid Credentials"})
	})

	c, sessions := newTestClient(t, mux)

	err := c.Login(context.Background(), "peter@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid Credentials", apiErr.Msg)

	state := c.State()
	assert.Empty(t, state.User)
	assert.False(t, state.IsLoading)
	assert.True(t, state.ShowAlert)

	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestClient_Restore(t *testing.T) {
	var gotAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs", func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"jobsCount": 0, "jobs": []any{}})
	})

	c, sessions := newTestClient(t, mux)
	require.NoError(t, sessions.Save(&Session{Name: "peter", Token: "tok-123"}))

	require.NoError(t, c.Restore())
	assert.Equal(t, "peter", c.State().User)

	require.NoError(t, c.FetchJobs(context.Background()))
	assert.Equal(t, "Bearer tok-123", gotAuth.Load())
}

func TestClient_FetchJobsFailureLogsOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid authentication"})
	})

	c, sessions := newTestClient(t, mux)
	require.NoError(t, sessions.Save(&Session{Name: "peter", Token: "expired"}))
	require.NoError(t, c.Restore())

	err := c.FetchJobs(context.Background())
	require.Error(t, err)

	// A failed list fetch is treated as a dead session.
	state := c.State()
	assert.Empty(t, state.User)
	assert.Empty(t, state.Jobs)
	assert.False(t, state.IsLoading)

	saved, loadErr := sessions.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, saved)
}

func TestClient_CreateJob(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /jobs", func(w http.ResponseWriter, r *http.Request) {
		var input JobInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"job": model.Job{
			ID:       "job-1",
			Company:  input.Company,
			Position: input.Position,
			Status:   model.StatusApplied,
		}})
	})

	c, _ := newTestClient(t, mux)

	require.NoError(t, c.CreateJob(context.Background(), JobInput{Company: "Acme", Position: "Engineer"}))

	state := c.State()
	require.Len(t, state.Jobs, 1)
	assert.Equal(t, "job-1", state.Jobs[0].ID)
	assert.Equal(t, model.StatusApplied, state.Jobs[0].Status)
	assert.False(t, state.IsLoading)
}

func TestClient_DeleteJobRefetchesList(t *testing.T) {
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /jobs/job-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"msg": "Job deleted successfully"})
	})
	mux.HandleFunc("GET /jobs", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"jobsCount": 1,
			"jobs":      []model.Job{{ID: "job-2", Company: "Globex", Position: "Engineer", Status: model.StatusApplied}},
		})
	})

	c, _ := newTestClient(t, mux)

	require.NoError(t, c.DeleteJob(context.Background(), "job-1"))

	assert.Equal(t, int32(1), listCalls.Load())

	state := c.State()
	require.Len(t, state.Jobs, 1)
	assert.Equal(t, "job-2", state.Jobs[0].ID)
}

func TestClient_DeleteJobError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /jobs/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"msg": "No job with the provided ID"})
	})

	c, _ := newTestClient(t, mux)

	err := c.DeleteJob(context.Background(), "gone")
	require.Error(t, err)

	state := c.State()
	assert.True(t, state.ShowAlert)
	assert.False(t, state.IsLoading)
}

func TestClient_FetchSingleJobNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"msg": "No job with the provided ID"})
	})

	c, _ := newTestClient(t, mux)

	err := c.FetchSingleJob(context.Background(), "gone")
	require.Error(t, err)

	state := c.State()
	assert.True(t, state.SingleJobError)
	assert.True(t, state.EditItem.Loaded)
	assert.Nil(t, state.EditItem.Job)
}

func TestClient_EditJob(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /jobs/job-1", func(w http.ResponseWriter, r *http.Request) {
		var input JobInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		json.NewEncoder(w).Encode(map[string]any{"job": model.Job{
			ID:       "job-1",
			Company:  input.Company,
			Position: input.Position,
			Status:   model.JobStatus(input.Status),
		}})
	})

	c, _ := newTestClient(t, mux)

	require.NoError(t, c.EditJob(context.Background(), "job-1", JobInput{
		Company:  "Acme",
		Position: "Staff Engineer",
		Status:   "interviewing",
	}))

	state := c.State()
	assert.True(t, state.EditComplete)
	require.NotNil(t, state.EditItem.Job)
	assert.Equal(t, "Staff Engineer", state.EditItem.Job.Position)
	assert.Equal(t, model.StatusInterviewing, state.EditItem.Job.Status)
}

func TestSessionFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	f := NewSessionFile(path)

	// Nothing saved yet.
	session, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, f.Save(&Session{Name: "peter", Token: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	session, err = f.Load()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "peter", session.Name)

	require.NoError(t, f.Clear())
	require.NoError(t, f.Clear())

	session, err = f.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}
