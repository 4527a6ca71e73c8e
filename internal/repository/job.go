package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/applytrack/applytrack/internal/model"
)

// ErrJobNotFound is returned when no job matches both the id and the owner.
// Foreign-owned jobs are indistinguishable from missing ones.
var ErrJobNotFound = errors.New("job not found")

// ListJobs retrieves all jobs owned by the given user,
// ordered by creation time ascending.
func (r *Repository) ListJobs(ctx context.Context, ownerID string) ([]*model.Job, error) {
	query := `
		SELECT id, company, position, status, created_by, created_at, updated_at
		FROM jobs
		WHERE created_by = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*model.Job, 0)
	for rows.Next() {
		job, err := scanJobFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// GetJob retrieves a job by id, scoped to the owning user.
// Ownership is enforced in the WHERE clause, not as a post-fetch check.
func (r *Repository) GetJob(ctx context.Context, ownerID, id string) (*model.Job, error) {
	query := `
		SELECT id, company, position, status, created_by, created_at, updated_at
		FROM jobs
		WHERE id = $1 AND created_by = $2
	`

	job, err := scanJob(r.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

// CreateJob inserts a new job into the database.
func (r *Repository) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (id, company, position, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Company,
		job.Position,
		job.Status,
		job.CreatedBy,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// UpdateJob updates a job's mutable fields, scoped to the owning user.
// Returns the post-update row, or ErrJobNotFound if no owned job matches.
func (r *Repository) UpdateJob(ctx context.Context, ownerID string, job *model.Job) (*model.Job, error) {
	query := `
		UPDATE jobs
		SET company = $3, position = $4, status = $5, updated_at = NOW()
		WHERE id = $1 AND created_by = $2
		RETURNING id, company, position, status, created_by, created_at, updated_at
	`

	updated, err := scanJob(r.pool.QueryRow(ctx, query,
		job.ID,
		ownerID,
		job.Company,
		job.Position,
		job.Status,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return updated, nil
}

// DeleteJob removes a job, scoped to the owning user.
func (r *Repository) DeleteJob(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM jobs
		WHERE id = $1 AND created_by = $2
	`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrJobNotFound
	}

	return nil
}

// scanJob scans a single row into a Job model.
func scanJob(row pgx.Row) (*model.Job, error) {
	var job model.Job
	err := row.Scan(
		&job.ID,
		&job.Company,
		&job.Position,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	return &job, err
}

// scanJobFromRows scans a row from pgx.Rows into a Job model.
func scanJobFromRows(rows pgx.Rows) (*model.Job, error) {
	var job model.Job
	err := rows.Scan(
		&job.ID,
		&job.Company,
		&job.Position,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	return &job, err
}
