package handler

import (
	"log/slog"

	"github.com/cuongbtq/job-listing-service/internal/api/storage"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger  *slog.Logger
	Storage *storage.Storage
	AppName string
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}
