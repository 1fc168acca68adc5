package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
	// BodyKey is the gin context key holding a parsed JSON request body
	BodyKey = "json_body"
)

// RequestIDMiddleware propagates X-Request-ID, generating one when absent
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// LoggerMiddleware logs HTTP requests with slog at debug level
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)

		logger.Debug("HTTP Request",
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		)

		for _, e := range c.Errors {
			logger.Error("Request error",
				slog.String("request_id", c.GetString(RequestIDKey)),
				slog.String("error", e.Error()),
				slog.Uint64("type", uint64(e.Type)),
			)
		}
	}
}

// defaultAllowHeaders is sent when a preflight does not name the headers it needs
const defaultAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID"

// CORSMiddleware allows every origin and answers preflight requests directly.
// Requested headers are echoed back so any header a client asks for is allowed.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, PUT, PATCH, POST, DELETE")

		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			c.Writer.Header().Set("Access-Control-Allow-Headers", requested)
			c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Headers", defaultAllowHeaders)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// JSONBodyMiddleware parses JSON request bodies before any handler runs.
// Only objects and arrays are accepted at the top level. Bodies larger than
// maxBytes are rejected with 413.
func JSONBodyMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.ContentType() != gin.MIMEJSON {
			c.Next()
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"error": "Request body too large",
				})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			c.Next()
			return
		}

		if (trimmed[0] != '{' && trimmed[0] != '[') || !json.Valid(trimmed) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}

		c.Set(BodyKey, json.RawMessage(trimmed))
		c.Next()
	}
}
