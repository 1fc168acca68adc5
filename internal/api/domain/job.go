package domain

import (
	"errors"
)

// Source labels attached to job postings
const (
	JobSourceNaukri   = "naukri"
	JobSourceLinkedIn = "linkedin"
)

var (
	ErrEmptyJobID     = errors.New("job posting id is empty")
	ErrDuplicateJobID = errors.New("duplicate job posting id")
)

// JobPosting is a single job opening served by the listing endpoint.
// Requirements and Skills are independent lists; neither is derived from the other.
type JobPosting struct {
	ID           string
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         string
	Description  string
	Requirements []string
	Skills       []string
	Source       string
	Posted       string
	URL          string
}

// Clone returns a deep copy of the posting
func (j JobPosting) Clone() JobPosting {
	c := j
	c.Requirements = cloneStrings(j.Requirements)
	c.Skills = cloneStrings(j.Skills)
	return c
}

// cloneStrings never returns nil so empty lists encode as [] rather than null
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
