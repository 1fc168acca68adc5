package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/job-listing-service/internal/api/dto"
	"github.com/cuongbtq/job-listing-service/internal/api/storage"
	"github.com/gin-gonic/gin"
)

// ListJobs handles GET /api/jobs
// Returns every posting in the catalog. lat, lng and radius are read but do not affect the result.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		// String fields cannot fail to bind; log and carry on with whatever was read.
		h.logger.Debug("Unreadable query parameters", slog.String("error", err.Error()))
	}

	h.logger.Debug("ListJobs called",
		slog.String("lat", req.Lat),
		slog.String("lng", req.Lng),
		slog.String("radius", req.Radius),
	)

	filter := storage.JobFilter{
		Lat:    req.Lat,
		Lng:    req.Lng,
		Radius: req.Radius,
	}

	jobs, err := h.storage.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list jobs",
		})
		return
	}

	jobResponse := make([]dto.JobDTO, len(jobs))
	for i, job := range jobs {
		jobResponse[i] = dto.NewJobDTO(job)
	}

	c.JSON(http.StatusOK, jobResponse)
}
