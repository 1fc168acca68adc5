package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuongbtq/job-listing-service/internal/api/dto"
	"github.com/cuongbtq/job-listing-service/internal/api/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJobHandler(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewJobHandler(&Dependencies{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Storage: storage.NewStaticStorage(),
	})

	r := gin.New()
	r.GET("/api/jobs", h.ListJobs)
	return r
}

func TestJobHandler_ListJobs(t *testing.T) {
	r := setupJobHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var jobs []dto.JobDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)

	assert.Equal(t, dto.JobDTO{
		ID:           "1",
		Title:        "Frontend Developer",
		Company:      "Tech Corp",
		Location:     "New York, NY",
		Salary:       "$80,000 - $100,000",
		Type:         "Full-time",
		Description:  "Build UI with React.",
		Requirements: []string{"React", "Tailwind", "JavaScript"},
		Skills:       []string{"React", "Tailwind"},
		Source:       "naukri",
		Posted:       "1 day ago",
		URL:          "https://example.com/job1",
	}, jobs[0])

	assert.Equal(t, dto.JobDTO{
		ID:           "2",
		Title:        "Backend Developer",
		Company:      "DevCo",
		Location:     "Brooklyn, NY",
		Salary:       "$90,000 - $110,000",
		Type:         "Full-time",
		Description:  "Node.js API development.",
		Requirements: []string{"Node.js", "Express", "MongoDB"},
		Skills:       []string{"Node.js", "MongoDB"},
		Source:       "linkedin",
		Posted:       "2 days ago",
		URL:          "https://example.com/job2",
	}, jobs[1])
}

func TestJobHandler_ListJobs_AllFieldsPresent(t *testing.T) {
	r := setupJobHandler(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 2)

	stringFields := []string{"id", "title", "company", "location", "salary", "type", "description", "source", "posted", "url"}
	listFields := []string{"requirements", "skills"}

	for _, obj := range raw {
		assert.Len(t, obj, len(stringFields)+len(listFields))
		for _, f := range stringFields {
			require.Contains(t, obj, f)
			assert.IsType(t, "", obj[f], f)
		}
		for _, f := range listFields {
			require.Contains(t, obj, f)
			items, ok := obj[f].([]interface{})
			require.True(t, ok, f)
			for _, item := range items {
				assert.IsType(t, "", item)
			}
		}
	}
	assert.NotEqual(t, raw[0]["id"], raw[1]["id"])
}

func TestJobHandler_ListJobs_IgnoresQuery(t *testing.T) {
	r := setupJobHandler(t)

	get := func(target string) string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code, target)
		return w.Body.String()
	}

	baseline := get("/api/jobs")

	targets := []string{
		"/api/jobs?lat=40.7&lng=-74.0&radius=10",
		"/api/jobs?lat=abc",
		"/api/jobs?lat=&lng=&radius=",
		"/api/jobs?lat=1000&lng=-1000&radius=-5",
		"/api/jobs?radius=%F0%9F%9A%80&unknown=1",
		"/api/jobs?lat=1&lat=2",
	}

	for _, target := range targets {
		assert.Equal(t, baseline, get(target), target)
	}
}
