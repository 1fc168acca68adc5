package storage

import "github.com/cuongbtq/job-listing-service/internal/api/domain"

// StaticJobs returns a fresh copy of the hardcoded postings served by the API
func StaticJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:           "1",
			Title:        "Frontend Developer",
			Company:      "Tech Corp",
			Location:     "New York, NY",
			Salary:       "$80,000 - $100,000",
			Type:         "Full-time",
			Description:  "Build UI with React.",
			Requirements: []string{"React", "Tailwind", "JavaScript"},
			Skills:       []string{"React", "Tailwind"},
			Source:       domain.JobSourceNaukri,
			Posted:       "1 day ago",
			URL:          "https://example.com/job1",
		},
		{
			ID:           "2",
			Title:        "Backend Developer",
			Company:      "DevCo",
			Location:     "Brooklyn, NY",
			Salary:       "$90,000 - $110,000",
			Type:         "Full-time",
			Description:  "Node.js API development.",
			Requirements: []string{"Node.js", "Express", "MongoDB"},
			Skills:       []string{"Node.js", "MongoDB"},
			Source:       domain.JobSourceLinkedIn,
			Posted:       "2 days ago",
			URL:          "https://example.com/job2",
		},
	}
}
