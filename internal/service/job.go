package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/applytrack/applytrack/internal/metrics"
	"github.com/applytrack/applytrack/internal/model"
	"github.com/applytrack/applytrack/internal/repository"
	"github.com/oklog/ulid/v2"
)

// JobStore defines the persistence operations the job service needs.
// Every accessor takes the owner id; ownership scoping lives in the
// store's queries, so a new caller cannot forget it.
type JobStore interface {
	ListJobs(ctx context.Context, ownerID string) ([]*model.Job, error)
	GetJob(ctx context.Context, ownerID, id string) (*model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) error
	UpdateJob(ctx context.Context, ownerID string, job *model.Job) (*model.Job, error)
	DeleteJob(ctx context.Context, ownerID, id string) error
}

// JobService handles job CRUD, always on behalf of an explicit caller.
type JobService struct {
	jobs    JobStore
	metrics metrics.Recorder
}

// NewJobService creates a new JobService.
func NewJobService(jobs JobStore, recorder metrics.Recorder) *JobService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &JobService{
		jobs:    jobs,
		metrics: recorder,
	}
}

// JobInput defines the caller-supplied fields for create and update.
type JobInput struct {
	Company  string
	Position string
	Status   string
}

// List returns all jobs owned by the caller, oldest first.
func (s *JobService) List(ctx context.Context, callerID string) ([]*model.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Get returns a single job owned by the caller.
func (s *JobService) Get(ctx context.Context, callerID, jobID string) (*model.Job, error) {
	job, err := s.jobs.GetJob(ctx, callerID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Create validates the input and inserts a job owned by the caller.
// CreatedBy is always the caller; any value in the input body is ignored.
func (s *JobService) Create(ctx context.Context, callerID string, input JobInput) (*model.Job, error) {
	status, err := resolveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	if err := validateJobFields(input.Company, input.Position); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &model.Job{
		ID:        ulid.Make().String(),
		Company:   input.Company,
		Position:  input.Position,
		Status:    status,
		CreatedBy: callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.metrics.IncJobCreated()

	return job, nil
}

// Update validates the input and updates a job owned by the caller,
// returning the post-update record. An omitted status keeps the
// stored one; only create defaults to applied.
func (s *JobService) Update(ctx context.Context, callerID, jobID string, input JobInput) (*model.Job, error) {
	if input.Company == "" || input.Position == "" {
		return nil, ErrEmptyJobFields
	}

	var status model.JobStatus
	if input.Status == "" {
		current, err := s.jobs.GetJob(ctx, callerID, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, fmt.Errorf("failed to load job: %w", err)
		}
		status = current.Status
	} else {
		resolved, err := resolveStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = resolved
	}

	if err := validateJobFields(input.Company, input.Position); err != nil {
		return nil, err
	}

	job := &model.Job{
		ID:       jobID,
		Company:  input.Company,
		Position: input.Position,
		Status:   status,
	}

	updated, err := s.jobs.UpdateJob(ctx, callerID, job)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.metrics.IncJobUpdated()

	return updated, nil
}

// Delete removes a job owned by the caller.
func (s *JobService) Delete(ctx context.Context, callerID, jobID string) error {
	if err := s.jobs.DeleteJob(ctx, callerID, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.metrics.IncJobDeleted()

	return nil
}

// resolveStatus applies the default and validates the enum.
func resolveStatus(raw string) (model.JobStatus, error) {
	if raw == "" {
		return model.StatusApplied, nil
	}

	status := model.JobStatus(raw)
	if !status.IsValid() {
		return "", &ValidationError{Messages: []string{
			fmt.Sprintf("status must be one of: %s, %s, %s, %s",
				model.StatusApplied, model.StatusInterviewing, model.StatusOfferReceived, model.StatusRejected),
		}}
	}

	return status, nil
}

// validateJobFields checks the job schema constraints and collects
// one message per violated field.
func validateJobFields(company, position string) error {
	var messages []string

	if company == "" {
		messages = append(messages, "please provide the company name")
	} else if len(company) > model.MaxCompanyLength {
		messages = append(messages, fmt.Sprintf("company must not exceed %d characters", model.MaxCompanyLength))
	}

	if position == "" {
		messages = append(messages, "please provide the job position")
	} else if len(position) > model.MaxPositionLength {
		messages = append(messages, fmt.Sprintf("position must not exceed %d characters", model.MaxPositionLength))
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}
