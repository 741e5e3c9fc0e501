package usecase

import (
	"context"
	"time"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/model"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/normalizer"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/response"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/service"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/util"
	"github.com/google/uuid"
)

// ReportStore is the record-store boundary the orchestrators write through.
type ReportStore interface {
	CreateReport(report *model.Report) error
	ApplyJobMatch(reportID, userID uuid.UUID, jobDescription string, match *normalizer.JobMatch) error
	GetResumeText(reportID, userID uuid.UUID) (string, error)
	FindReportByID(reportID, userID uuid.UUID) (*model.Report, error)
	ListReportsByOwner(userID uuid.UUID, page, pageSize int) ([]model.Report, *response.Pagination, error)
}

type ReportUsecase struct {
	store   ReportStore
	invoker service.ModelInvoker
}

func NewReportUsecase(store ReportStore, invoker service.ModelInvoker) *ReportUsecase {
	return &ReportUsecase{store: store, invoker: invoker}
}

// AnalyzeResume runs stage 1: guard the input, invoke the model, normalize
// the reply, persist a completed report. Any failure aborts the run before
// the insert, so a failed run leaves no record behind.
func (uc *ReportUsecase) AnalyzeResume(ctx context.Context, userID uuid.UUID, filename, resumeText string) (*model.Report, *normalizer.Analysis, error) {
	if util.CountNonWhitespace(resumeText) < util.MinResumeChars {
		return nil, nil, apperror.New(apperror.InsufficientContent,
			"could not extract enough text from the file, please ensure your resume has readable content")
	}

	raw, err := uc.invoker.Invoke(ctx, analysisSystemPrompt(), analysisUserContent(resumeText))
	if err != nil {
		return nil, nil, err
	}

	analysis, err := normalizer.NormalizeAnalysis(raw)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	report := &model.Report{
		UserID:         userID,
		ResumeFilename: filename,
		ResumeText:     resumeText,
		Skills:         analysis.Skills,
		Summary:        analysis.Summary,
		Experience:     analysis.Experience,
		Education:      analysis.Education,
		Score:          analysis.Score,
		Improvements:   analysis.Improvements,
		Status:         model.StatusCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.store.CreateReport(report); err != nil {
		return nil, nil, err
	}

	return report, analysis, nil
}

// MatchJob runs stage 2 against an existing report. The stored resume text is
// the source of truth for the prompt; the merge happens only after the new
// reply normalized cleanly, so a failed re-match never corrupts a prior one.
func (uc *ReportUsecase) MatchJob(ctx context.Context, userID, reportID uuid.UUID, jobDescription string) (*normalizer.JobMatch, error) {
	resumeText, err := uc.store.GetResumeText(reportID, userID)
	if err != nil {
		return nil, err
	}

	raw, err := uc.invoker.Invoke(ctx, matchSystemPrompt(), matchUserContent(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}

	match, err := normalizer.NormalizeJobMatch(raw)
	if err != nil {
		return nil, err
	}

	if err := uc.store.ApplyJobMatch(reportID, userID, jobDescription, match); err != nil {
		return nil, err
	}

	return match, nil
}

func (uc *ReportUsecase) GetReport(userID, reportID uuid.UUID) (*model.Report, error) {
	return uc.store.FindReportByID(reportID, userID)
}

func (uc *ReportUsecase) ListReports(userID uuid.UUID, page, pageSize int) ([]model.Report, *response.Pagination, error) {
	return uc.store.ListReportsByOwner(userID, page, pageSize)
}
