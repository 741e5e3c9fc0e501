package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Report is the single persisted unit of work: one resume's analysis plus an
// optional job-match result. The job-match fields stay NULL until a match has
// run at least once. UserID is set at creation and never reassigned.
type Report struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ResumeFilename  string    `gorm:"type:varchar(255)" json:"resume_filename"`
	ResumeText      string    `gorm:"type:text" json:"resume_text"`
	Skills          []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	Summary         string    `gorm:"type:text" json:"summary"`
	Experience      string    `gorm:"type:text" json:"experience"`
	Education       string    `gorm:"type:text" json:"education"`
	Score           int       `json:"score"`
	Improvements    string    `gorm:"type:text" json:"improvements"`
	JobDescription  *string   `gorm:"type:text" json:"job_description,omitempty"`
	MatchPercentage *int      `json:"match_percentage,omitempty"`
	MissingSkills   []string  `gorm:"type:jsonb;serializer:json" json:"missing_skills,omitempty"`
	Suggestions     *string   `gorm:"type:text" json:"suggestions,omitempty"`
	Status          string    `gorm:"type:varchar(50)" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *Report) TableName() string {
	return "reports"
}
