package storage

import (
	"context"
	"testing"

	"github.com/cuongbtq/job-listing-service/internal/api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name    string
		jobs    []domain.JobPosting
		wantErr error
	}{
		{
			name: "static set",
			jobs: StaticJobs(),
		},
		{
			name: "empty set",
			jobs: nil,
		},
		{
			name:    "duplicate id",
			jobs:    []domain.JobPosting{{ID: "1"}, {ID: "2"}, {ID: "1"}},
			wantErr: domain.ErrDuplicateJobID,
		},
		{
			name:    "empty id",
			jobs:    []domain.JobPosting{{ID: "1"}, {ID: ""}},
			wantErr: domain.ErrEmptyJobID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorage(tt.jobs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.jobs), s.Count())
		})
	}
}

func TestStorage_ListJobs(t *testing.T) {
	s := NewStaticStorage()

	jobs, err := s.ListJobs(context.Background(), JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "1", jobs[0].ID)
	assert.Equal(t, "Frontend Developer", jobs[0].Title)
	assert.Equal(t, domain.JobSourceNaukri, jobs[0].Source)
	assert.Equal(t, []string{"React", "Tailwind", "JavaScript"}, jobs[0].Requirements)
	assert.Equal(t, []string{"React", "Tailwind"}, jobs[0].Skills)

	assert.Equal(t, "2", jobs[1].ID)
	assert.Equal(t, "Backend Developer", jobs[1].Title)
	assert.Equal(t, domain.JobSourceLinkedIn, jobs[1].Source)
	assert.Equal(t, "https://example.com/job2", jobs[1].URL)
}

func TestStorage_ListJobs_IgnoresFilter(t *testing.T) {
	s := NewStaticStorage()

	want, err := s.ListJobs(context.Background(), JobFilter{})
	require.NoError(t, err)

	filters := []JobFilter{
		{Lat: "40.7", Lng: "-74.0", Radius: "10"},
		{Lat: "abc"},
		{Lat: "", Lng: "", Radius: ""},
		{Lat: "999", Lng: "-999", Radius: "-1"},
	}

	for _, f := range filters {
		got, err := s.ListJobs(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStorage_ListJobs_ReturnsCopies(t *testing.T) {
	s := NewStaticStorage()

	first, err := s.ListJobs(context.Background(), JobFilter{})
	require.NoError(t, err)

	first[0].Title = "changed"
	first[0].Requirements[0] = "changed"
	first[1].Skills = append(first[1].Skills, "extra")

	second, err := s.ListJobs(context.Background(), JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, StaticJobs(), second)
}

func TestNewStorage_CopiesInput(t *testing.T) {
	jobs := StaticJobs()
	s, err := NewStorage(jobs)
	require.NoError(t, err)

	jobs[0].Skills[0] = "changed"

	got, err := s.ListJobs(context.Background(), JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, "React", got[0].Skills[0])
}

func TestStorage_ListJobs_CanceledContext(t *testing.T) {
	s := NewStaticStorage()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs, err := s.ListJobs(ctx, JobFilter{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, jobs)
}

func TestStaticJobs_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, job := range StaticJobs() {
		assert.False(t, seen[job.ID], "duplicate id %s", job.ID)
		seen[job.ID] = true
	}
	assert.Len(t, seen, 2)
}
