package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/logger"
	"github.com/artem13815/interview/pkg/resume"
)

type ResumesHandler struct {
	uc       resume.ExtractionUseCase
	repo     resume.Repository // nil when no database is configured
	log      *zap.Logger
	maxBytes int64
	baseDir  string
}

func NewResumesHandler(uc resume.ExtractionUseCase, repo resume.Repository, baseDir string, maxBytes int64, log *zap.Logger) *ResumesHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &ResumesHandler{uc: uc, repo: repo, log: logger.OrNop(log), maxBytes: maxBytes, baseDir: baseDir}
}

type uploadResponse struct {
	ResumeID      string               `json:"resumeId"`
	Filename      string               `json:"filename"`
	SizeB         int                  `json:"sizeB"`
	TextExtracted bool                 `json:"textExtracted"`
	CandidateInfo resume.CandidateInfo `json:"candidateInfo"`
}

// Upload сохраняет резюме и извлекает из него контакты кандидата.
// @Summary     Загрузить резюме
// @Description Принимает PDF/DOCX, сохраняет файл и извлекает имя, email и телефон. Если текст прочитать не удалось, поля пустые и textExtracted=false.
// @Tags        Резюме
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Файл резюме (PDF/DOCX)"
// @Success     201 {object} uploadResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	if !resume.SupportedExt(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	ex, err := h.uc.FromFile(c.Context(), fh.Filename, data)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to read resume")
	}

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	id := uuid.New()
	dst := filepath.Join(h.baseDir, id.String()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}
	if h.repo != nil {
		meta := resume.Resume{
			ID:         id,
			Filename:   fh.Filename,
			MimeType:   fh.Header.Get("Content-Type"),
			Size:       fh.Size,
			StorageURI: dst,
		}
		if err := h.repo.Create(c.Context(), meta); err != nil {
			h.log.Error("save resume metadata", zap.String("resume", id.String()), zap.Error(err))
			return presenter.Error(c, http.StatusInternalServerError, "failed to save metadata")
		}
		if !ex.TextFailed {
			if err := h.repo.SaveParsed(c.Context(), resume.Parsed{ResumeID: id, Text: ex.Text}); err != nil {
				h.log.Error("save parsed resume", zap.String("resume", id.String()), zap.Error(err))
				return presenter.Error(c, http.StatusInternalServerError, "failed to save parsed text")
			}
		}
	}

	info := ex.Info
	info.ResumeRef = id.String()
	return presenter.JSON(c, http.StatusCreated, uploadResponse{
		ResumeID:      id.String(),
		Filename:      fh.Filename,
		SizeB:         len(data),
		TextExtracted: !ex.TextFailed,
		CandidateInfo: info,
	})
}

type extractRequest struct {
	Text string `json:"text"`
}

// Extract извлекает контакты из уже полученного текста резюме.
// @Summary Извлечь контакты из текста
// @Tags    Резюме
// @Accept  json
// @Produce json
// @Param   input body extractRequest true "Текст резюме"
// @Success 200 {object} resume.CandidateInfo
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resumes/extract [post]
func (h *ResumesHandler) Extract(c *fiber.Ctx) error {
	var req extractRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	return presenter.JSON(c, http.StatusOK, h.uc.FromText(req.Text).Info)
}

// Download скачивает исходный файл резюме.
// @Summary Скачать файл резюме
// @Tags    Резюме
// @Produce application/octet-stream
// @Param   id path string true "ID резюме (UUID)"
// @Success 200 {file} file
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/file [get]
func (h *ResumesHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if h.repo == nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	meta, err := h.repo.GetMeta(c.Context(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return c.Download(meta.StorageURI, meta.Filename)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
