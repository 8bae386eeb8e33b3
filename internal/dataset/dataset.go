// Package dataset serves reference lookups over the bundled CSV datasets:
// job descriptions and categorized sample resumes. All loaders degrade to
// empty results when the files are absent, so the API stays usable without
// the datasets installed.
package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"hiresight-ml/internal/shared/telemetry"
)

// Categories lists the job categories of the sample resume collection.
var Categories = []string{
	"ACCOUNTANT", "ADVOCATE", "AGRICULTURE", "APPAREL", "ARTS",
	"AUTOMOBILE", "AVIATION", "BANKING", "BPO", "BUSINESS-DEVELOPMENT",
	"CHEF", "CONSTRUCTION", "CONSULTANT", "DESIGNER", "DIGITAL-MEDIA",
	"ENGINEERING", "FINANCE", "FITNESS", "HEALTHCARE", "HR",
	"INFORMATION-TECHNOLOGY", "PUBLIC-RELATIONS", "SALES", "TEACHER",
}

// randomJobPoolSize bounds how many job rows the random pick considers.
const randomJobPoolSize = 1000

// Job is one job posting taken from the job descriptions CSV.
type Job struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

// Stats summarizes the installed datasets.
type Stats struct {
	TotalJobDescriptions int            `json:"total_job_descriptions"`
	TotalResumeData      int            `json:"total_resume_data"`
	Categories           int            `json:"categories"`
	ResumesByCategory    map[string]int `json:"resumes_by_category"`
}

// Repository resolves dataset files relative to a data directory. Files are
// read on demand rather than cached; the datasets are static and the read
// volume is low.
type Repository struct {
	dataDir string
}

// NewRepository constructs a Repository rooted at dataDir.
func NewRepository(dataDir string) *Repository {
	return &Repository{dataDir: dataDir}
}

func (r *Repository) jobsFile() string {
	return filepath.Join(r.dataDir, "job_descriptions", "job_title_des.csv")
}

func (r *Repository) resumeFile() string {
	return filepath.Join(r.dataDir, "Resume.csv")
}

func (r *Repository) sampleResumesDir() string {
	return filepath.Join(r.dataDir, "sample_resumes")
}

// Installed reports whether either dataset file is present.
func (r *Repository) Installed() bool {
	if _, err := os.Stat(r.jobsFile()); err == nil {
		return true
	}
	if _, err := os.Stat(r.resumeFile()); err == nil {
		return true
	}
	return false
}

// loadJobs reads up to limit job rows; limit <= 0 reads everything. A missing
// or malformed file yields an empty slice.
func (r *Repository) loadJobs(limit int) []Job {
	f, err := os.Open(r.jobsFile())
	if err != nil {
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	titleIdx, descIdx := columnIndexes(header)
	if titleIdx < 0 || descIdx < 0 {
		telemetry.Warn("dataset.jobs_header_missing", map[string]interface{}{
			"file": r.jobsFile(),
		})
		return nil
	}

	var jobs []Job
	for limit <= 0 || len(jobs) < limit {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if titleIdx >= len(record) || descIdx >= len(record) {
			continue
		}
		jobs = append(jobs, Job{
			JobTitle:       record[titleIdx],
			JobDescription: record[descIdx],
		})
	}
	return jobs
}

func columnIndexes(header []string) (titleIdx, descIdx int) {
	titleIdx, descIdx = -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Job Title":
			titleIdx = i
		case "Job Description":
			descIdx = i
		}
	}
	return titleIdx, descIdx
}

// RandomJob picks a random row out of the first 1000 job descriptions.
// Returns an empty Job when the dataset is missing.
func (r *Repository) RandomJob() Job {
	jobs := r.loadJobs(randomJobPoolSize)
	if len(jobs) == 0 {
		return Job{}
	}
	return jobs[rand.Intn(len(jobs))]
}

// JobByTitle returns the first job whose title contains the query,
// case-insensitively. Returns an empty Job when nothing matches.
func (r *Repository) JobByTitle(title string) Job {
	query := strings.ToLower(title)
	for _, job := range r.loadJobs(0) {
		if strings.Contains(strings.ToLower(job.JobTitle), query) {
			return job
		}
	}
	return Job{}
}

// SearchJobs returns up to limit jobs whose title or description contains any
// of the keywords, case-insensitively. limit <= 0 falls back to 10.
func (r *Repository) SearchJobs(keywords []string, limit int) []Job {
	if limit <= 0 {
		limit = 10
	}

	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	var results []Job
	for _, job := range r.loadJobs(0) {
		title := strings.ToLower(job.JobTitle)
		desc := strings.ToLower(job.JobDescription)
		for _, kw := range lowered {
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				results = append(results, job)
				break
			}
		}
		if len(results) >= limit {
			break
		}
	}
	return results
}

// countResumeRows counts the data rows of Resume.csv, 0 when absent.
func (r *Repository) countResumeRows() int {
	f, err := os.Open(r.resumeFile())
	if err != nil {
		return 0
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	count := 0
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		count++
	}
	if count > 0 {
		count-- // header row
	}
	return count
}

// SampleResumes lists the PDF file names of one category's sample resumes.
func (r *Repository) SampleResumes(category string) []string {
	dir := filepath.Join(r.sampleResumesDir(), category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Stats summarizes the job and resume datasets.
func (r *Repository) Stats() Stats {
	stats := Stats{
		TotalJobDescriptions: len(r.loadJobs(0)),
		TotalResumeData:      r.countResumeRows(),
		Categories:           len(Categories),
		ResumesByCategory:    make(map[string]int, len(Categories)),
	}
	for _, category := range Categories {
		stats.ResumesByCategory[category] = len(r.SampleResumes(category))
	}
	return stats
}
