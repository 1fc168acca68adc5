package storage

import (
	"context"
	"fmt"

	"github.com/cuongbtq/job-listing-service/internal/api/domain"
)

// Storage is a read-only catalog of job postings held in process memory.
// It is safe for concurrent use because nothing mutates it after NewStorage returns.
type Storage struct {
	jobs []domain.JobPosting
}

// NewStorage builds a catalog from the given postings, keeping their order
func NewStorage(jobs []domain.JobPosting) (*Storage, error) {
	seen := make(map[string]struct{}, len(jobs))
	stored := make([]domain.JobPosting, 0, len(jobs))

	for i, job := range jobs {
		if job.ID == "" {
			return nil, fmt.Errorf("job at index %d: %w", i, domain.ErrEmptyJobID)
		}
		if _, ok := seen[job.ID]; ok {
			return nil, fmt.Errorf("job %q: %w", job.ID, domain.ErrDuplicateJobID)
		}
		seen[job.ID] = struct{}{}
		stored = append(stored, job.Clone())
	}

	return &Storage{jobs: stored}, nil
}

// NewStaticStorage returns the catalog seeded with the built-in postings
func NewStaticStorage() *Storage {
	s, err := NewStorage(StaticJobs())
	if err != nil {
		// The built-in set is fixed; failing here means StaticJobs was edited badly.
		panic(fmt.Sprintf("invalid static job set: %v", err))
	}
	return s
}

// JobFilter carries the location parameters accepted by the listing endpoint.
// They are kept as raw strings and do not narrow the result.
type JobFilter struct {
	Lat    string
	Lng    string
	Radius string
}

// ListJobs returns every posting in catalog order. The filter is ignored.
func (s *Storage) ListJobs(ctx context.Context, filter JobFilter) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]domain.JobPosting, len(s.jobs))
	for i, job := range s.jobs {
		jobs[i] = job.Clone()
	}

	return jobs, nil
}

// Count returns the number of postings in the catalog
func (s *Storage) Count() int {
	return len(s.jobs)
}
