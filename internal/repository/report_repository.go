package repository

import (
	"errors"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/model"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/normalizer"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

func (r *ReportRepository) CreateReport(report *model.Report) error {
	if err := r.db.Create(report).Error; err != nil {
		return apperror.Wrap(apperror.PersistenceError, "failed to save report", err)
	}
	return nil
}

// ApplyJobMatch merges the job-match fields into one report. The owner
// predicate is part of the UPDATE itself, so a caller can never touch a
// report it does not own; stage-1 columns are never in the column list.
func (r *ReportRepository) ApplyJobMatch(reportID, userID uuid.UUID, jobDescription string, match *normalizer.JobMatch) error {
	res := r.db.Model(&model.Report{}).
		Where("id = ? AND user_id = ?", reportID, userID).
		Select("job_description", "match_percentage", "missing_skills", "suggestions").
		Updates(&model.Report{
			JobDescription:  &jobDescription,
			MatchPercentage: &match.MatchPercentage,
			MissingSkills:   match.MissingSkills,
			Suggestions:     &match.Suggestions,
		})
	if res.Error != nil {
		return apperror.Wrap(apperror.PersistenceError, "failed to update report", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.New(apperror.NotFoundOrForbidden, "report not found")
	}
	return nil
}

// GetResumeText recovers the immutable resume text for a report the caller owns.
func (r *ReportRepository) GetResumeText(reportID, userID uuid.UUID) (string, error) {
	var report model.Report
	err := r.db.Select("resume_text").
		First(&report, "id = ? AND user_id = ?", reportID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperror.New(apperror.NotFoundOrForbidden, "report not found")
	}
	if err != nil {
		return "", apperror.Wrap(apperror.PersistenceError, "failed to load report", err)
	}
	return report.ResumeText, nil
}

func (r *ReportRepository) FindReportByID(reportID, userID uuid.UUID) (*model.Report, error) {
	var report model.Report
	err := r.db.First(&report, "id = ? AND user_id = ?", reportID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.NotFoundOrForbidden, "report not found")
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.PersistenceError, "failed to load report", err)
	}
	return &report, nil
}

func (r *ReportRepository) ListReportsByOwner(userID uuid.UUID, page, pageSize int) ([]model.Report, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.Report{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, nil, apperror.Wrap(apperror.PersistenceError, "failed to count reports", err)
	}

	var reports []model.Report
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, nil, apperror.Wrap(apperror.PersistenceError, "failed to list reports", err)
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from, to := 0, 0
	if len(reports) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(reports) - 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
	return reports, pagination, nil
}
