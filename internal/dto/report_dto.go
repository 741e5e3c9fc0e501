package dto

import (
	"time"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/normalizer"
	"github.com/google/uuid"
)

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
	Filename   string `json:"filename"`
}

type AnalyzeResumeResponse struct {
	ReportID uuid.UUID            `json:"reportId"`
	Analysis *normalizer.Analysis `json:"analysis"`
}

type MatchJobRequest struct {
	ResumeText     string    `json:"resumeText"`
	JobDescription string    `json:"jobDescription"`
	ReportID       uuid.UUID `json:"reportId"`
}

type MatchJobResponse struct {
	Success  bool                 `json:"success"`
	Analysis *normalizer.JobMatch `json:"analysis"`
}

// ReportSummaryDTO is the dashboard projection of a report.
type ReportSummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	ResumeFilename string    `json:"resume_filename"`
	Score          int       `json:"score"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
