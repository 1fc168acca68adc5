package dto

import "github.com/cuongbtq/job-listing-service/internal/api/domain"

// ListJobsRequest binds the optional location query. Values are taken verbatim.
type ListJobsRequest struct {
	Lat    string `form:"lat"`
	Lng    string `form:"lng"`
	Radius string `form:"radius"`
}

type JobDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Source       string   `json:"source"`
	Posted       string   `json:"posted"`
	URL          string   `json:"url"`
}

// NewJobDTO maps a domain posting to its wire shape
func NewJobDTO(job domain.JobPosting) JobDTO {
	job = job.Clone()
	return JobDTO{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Salary:       job.Salary,
		Type:         job.Type,
		Description:  job.Description,
		Requirements: job.Requirements,
		Skills:       job.Skills,
		Source:       job.Source,
		Posted:       job.Posted,
		URL:          job.URL,
	}
}
