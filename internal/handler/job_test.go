package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applytrack/applytrack/internal/auth"
	"github.com/applytrack/applytrack/internal/model"
	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/internal/service"
)

type memJobStore struct {
	jobs map[string]*model.Job
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: make(map[string]*model.Job)}
}

func (s *memJobStore) ListJobs(_ context.Context, ownerID string) ([]*model.Job, error) {
	var out []*model.Job
	for _, job := range s.jobs {
		if job.CreatedBy == ownerID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *memJobStore) GetJob(_ context.Context, ownerID, id string) (*model.Job, error) {
	job, ok := s.jobs[id]
	if !ok || job.CreatedBy != ownerID {
		return nil, repository.ErrJobNotFound
	}
	return job, nil
}

func (s *memJobStore) CreateJob(_ context.Context, job *model.Job) error {
	clone := *job
	s.jobs[job.ID] = &clone
	return nil
}

func (s *memJobStore) UpdateJob(_ context.Context, ownerID string, job *model.Job) (*model.Job, error) {
	existing, ok := s.jobs[job.ID]
	if !ok || existing.CreatedBy != ownerID {
		return nil, repository.ErrJobNotFound
	}
	existing.Company = job.Company
	existing.Position = job.Position
	existing.Status = job.Status
	clone := *existing
	return &clone, nil
}

func (s *memJobStore) DeleteJob(_ context.Context, ownerID, id string) error {
	job, ok := s.jobs[id]
	if !ok || job.CreatedBy != ownerID {
		return repository.ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

// jobTestServer mounts the job routes behind a stub identity middleware
// so each request carries a fixed caller.
func jobTestServer(t *testing.T, store *memJobStore, callerID string) *chi.Mux {
	t.Helper()

	svc := service.NewJobService(store, nil)
	h := NewJobHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.ContextWithUser(req.Context(), &model.AuthContext{UserID: callerID, Name: "tester"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/{id}", h.Get)
	r.Patch("/jobs/{id}", h.Update)
	r.Delete("/jobs/{id}", h.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type jobEnvelope struct {
	Job struct {
		ID        string `json:"id"`
		Company   string `json:"company"`
		Position  string `json:"position"`
		Status    string `json:"status"`
		CreatedBy string `json:"createdBy"`
	} `json:"job"`
}

func TestJobHandler_CreateAndGet(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.Job.ID)
	assert.Equal(t, "Acme", created.Job.Company)
	assert.Equal(t, "applied", created.Job.Status)
	assert.Equal(t, "user-1", created.Job.CreatedBy)

	rec = doJSON(t, router, http.MethodGet, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, created.Job.ID, fetched.Job.ID)
}

func TestJobHandler_Create_Validation(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "",
		"position": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
		"status":   "ghosted",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["msg"], "status must be one of")
}

func TestJobHandler_List(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	for _, company := range []string{"Acme", "Globex"} {
		rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
			"company":  company,
			"position": "Engineer",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JobsCount int               `json:"jobsCount"`
		Jobs      []json.RawMessage `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.JobsCount)
	assert.Len(t, resp.Jobs, 2)
}

func TestJobHandler_Update(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = doJSON(t, router, http.MethodPatch, "/jobs/"+created.Job.ID, map[string]string{
		"company":  "Acme",
		"position": "Staff Engineer",
		"status":   "interviewing",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "Staff Engineer", updated.Job.Position)
	assert.Equal(t, "interviewing", updated.Job.Status)
}

func TestJobHandler_Update_EmptyFields(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	// Either blank field rejects the whole update.
	for _, body := range []map[string]string{
		{"company": "", "position": "Backend Engineer"},
		{"company": "Acme", "position": ""},
	} {
		rec = doJSON(t, router, http.MethodPatch, "/jobs/"+created.Job.ID, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Company or Position fields cannot be empty", resp["msg"])
	}
}

func TestJobHandler_Delete(t *testing.T) {
	store := newMemJobStore()
	router := jobTestServer(t, store, "user-1")

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = doJSON(t, router, http.MethodDelete, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Job deleted successfully", resp["msg"])

	rec = doJSON(t, router, http.MethodDelete, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobHandler_CrossUserIsolation(t *testing.T) {
	store := newMemJobStore()
	ownerRouter := jobTestServer(t, store, "user-1")
	otherRouter := jobTestServer(t, store, "user-2")

	rec := doJSON(t, ownerRouter, http.MethodPost, "/jobs", map[string]string{
		"company":  "Acme",
		"position": "Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created jobEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = doJSON(t, otherRouter, http.MethodGet, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "No job with the provided ID", resp["msg"])

	rec = doJSON(t, otherRouter, http.MethodDelete, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, ownerRouter, http.MethodGet, "/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
