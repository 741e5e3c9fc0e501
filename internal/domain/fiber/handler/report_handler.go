package handler

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/dto"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/middleware"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/usecase"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/analyze-resume", auth, middleware.RateLimiter(1, 4*time.Second), h.AnalyzeResume)
	app.Post("/job-match", auth, middleware.RateLimiter(1, 4*time.Second), h.MatchJob)
	app.Post("/upload", auth, middleware.RateLimiter(1, 4*time.Second), h.Upload)
	app.Get("/reports", auth, h.ListReports)
	app.Get("/reports/:id", auth, h.GetReport)
}

func (h *ReportHandler) AnalyzeResume(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.AnalyzeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.ResumeText == "" || req.Filename == "" {
		return fiber.NewError(fiber.StatusBadRequest, "resume text and filename are required")
	}

	report, analysis, err := h.uc.AnalyzeResume(c.UserContext(), userID, req.Filename, req.ResumeText)
	if err != nil {
		return err
	}

	return c.JSON(dto.AnalyzeResumeResponse{
		ReportID: report.ID,
		Analysis: analysis,
	})
}

func (h *ReportHandler) MatchJob(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.MatchJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.JobDescription == "" || req.ReportID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "job description and report ID are required")
	}

	match, err := h.uc.MatchJob(c.UserContext(), userID, req.ReportID, req.JobDescription)
	if err != nil {
		return err
	}

	return c.JSON(dto.MatchJobResponse{
		Success:  true,
		Analysis: match,
	})
}

// Upload is the server-side extraction path: a multipart resume file is
// extracted locally and then fed through the same analysis pipeline.
func (h *ReportHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}
	if file.Size > maxUploadBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "resume file size is too large (max 5MB)")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open resume file")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read resume file")
	}

	mime, ok := mimeFromFilename(file.Filename)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported resume file type")
	}
	text, err := util.ExtractText(data, mime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to extract resume text")
	}

	report, analysis, err := h.uc.AnalyzeResume(c.UserContext(), userID, file.Filename, text)
	if err != nil {
		return err
	}

	return c.JSON(dto.AnalyzeResumeResponse{
		ReportID: report.ID,
		Analysis: analysis,
	})
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	reports, pagination, err := h.uc.ListReports(userID, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return err
	}

	items := make([]dto.ReportSummaryDTO, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ReportSummaryDTO{
			ID:             r.ID,
			ResumeFilename: r.ResumeFilename,
			Score:          r.Score,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"reports":    items,
		"pagination": pagination,
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid report id")
	}

	report, err := h.uc.GetReport(userID, reportID)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

func mimeFromFilename(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf", true
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true
	case ".txt", ".md":
		return "text/plain", true
	default:
		return "", false
	}
}
