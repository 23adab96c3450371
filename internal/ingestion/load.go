package ingestion

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonathan/tailor-engine/internal/schemas"
	"github.com/jonathan/tailor-engine/internal/types"
)

// LoadProfile reads, validates and normalizes a candidate profile JSON file
func LoadProfile(path string) (*types.CandidateProfile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	profile, err := ParseProfile(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	return profile, nil
}

// LoadJob reads, validates and normalizes a job posting JSON file
func LoadJob(path string) (*types.JobPosting, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	job, err := ParseJob(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	return job, nil
}

// LoadJobs loads several job posting files, stopping at the first failure
func LoadJobs(paths []string) ([]*types.JobPosting, error) {
	jobs := make([]*types.JobPosting, 0, len(paths))
	for _, p := range paths {
		job, err := LoadJob(p)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// ParseProfile validates profile JSON and applies safe defaults: placeholder identity,
// deduplicated skill sets and cleaned free text.
func ParseProfile(data []byte) (*types.CandidateProfile, error) {
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, &LoadError{Message: "profile failed schema validation", Cause: err}
	}

	var raw types.CandidateProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Message: "failed to decode profile", Cause: err}
	}

	profile := raw.WithDefaults()
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Summary = CleanText(profile.Summary)
	for i := range profile.Experience {
		profile.Experience[i].Description = CleanText(profile.Experience[i].Description)
	}
	return &profile, nil
}

// ParseJob validates job JSON, converts an HTML description to text and normalizes the term lists
func ParseJob(data []byte) (*types.JobPosting, error) {
	if err := schemas.ValidateJob(data); err != nil {
		return nil, &LoadError{Message: "job failed schema validation", Cause: err}
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, &LoadError{Message: "failed to decode job", Cause: err}
	}

	if LooksLikeHTML(job.Description) {
		text, err := HTMLToText(job.Description)
		if err != nil {
			return nil, &LoadError{Message: "failed to convert job description", Cause: err}
		}
		job.Description = text
	} else {
		job.Description = CleanText(job.Description)
	}

	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Requirements = types.UniqueTerms(job.Requirements)
	job.NiceToHaves = types.UniqueTerms(job.NiceToHaves)
	job.Benefits = types.UniqueTerms(job.Benefits)
	return &job, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return data, nil
}

func withPath(err error, path string) error {
	if le, ok := err.(*LoadError); ok {
		le.Path = path
		return le
	}
	return &LoadError{Path: path, Message: "invalid document", Cause: err}
}
