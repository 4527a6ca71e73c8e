package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/applytrack/applytrack/internal/auth"
	"github.com/applytrack/applytrack/internal/handler/dto"
	"github.com/applytrack/applytrack/internal/service"
)

// JobHandler handles HTTP requests for job operations.
// All routes sit behind the auth middleware; the caller identity is
// read from the request context, never from the body.
type JobHandler struct {
	svc    *service.JobService
	logger *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/jobs.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	jobs, err := h.svc.List(r.Context(), callerID)
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToJobListResponse(jobs))
}

// Get handles GET /api/v1/jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())
	jobID := chi.URLParam(r, "id")

	job, err := h.svc.Get(r.Context(), callerID, jobID)
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.JobEnvelope{Job: dto.ToJobResponse(job)})
}

// Create handles POST /api/v1/jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())

	var req dto.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.svc.Create(r.Context(), callerID, service.JobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("job_created",
		"job_id", job.ID,
		"company", job.Company,
	)

	writeJSON(w, http.StatusCreated, dto.JobEnvelope{Job: dto.ToJobResponse(job)})
}

// Update handles PATCH /api/v1/jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())
	jobID := chi.URLParam(r, "id")

	var req dto.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.svc.Update(r.Context(), callerID, jobID, service.JobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("job_updated", "job_id", job.ID)

	writeJSON(w, http.StatusOK, dto.JobEnvelope{Job: dto.ToJobResponse(job)})
}

// Delete handles DELETE /api/v1/jobs/{id}.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFromContext(r.Context())
	jobID := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), callerID, jobID); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("job_deleted", "job_id", jobID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Msg: "Job deleted successfully"})
}
