package router

import (
	"net/http"

	"github.com/cuongbtq/job-listing-service/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes bounds parsed JSON request bodies
const DefaultMaxBodyBytes = 100 << 10

// Options tunes router behaviour that comes from configuration
type Options struct {
	MaxBodyBytes int64
}

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies, opts Options) *gin.Engine {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())
	r.Use(JSONBodyMiddleware(opts.MaxBodyBytes))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": deps.AppName,
		})
	})

	jobHandler := handler.NewJobHandler(deps)

	api := r.Group("/api")
	{
		// GET /api/jobs - List all job postings; lat, lng and radius are accepted and ignored
		api.GET("/jobs", jobHandler.ListJobs)
		api.HEAD("/jobs", jobHandler.ListJobs)
	}

	return r
}
