package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/assessment"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/resume"
)

// InterviewsHandler drives interview sessions.
type InterviewsHandler struct {
	uc assessment.UseCase
}

func NewInterviewsHandler(uc assessment.UseCase) *InterviewsHandler {
	return &InterviewsHandler{uc: uc}
}

type startRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeRef string `json:"resumeRef"`
}

type draftRequest struct {
	Text string `json:"text"`
}

type answerRequest struct {
	Text string `json:"text"`
	// QuestionIndex is the question being answered. Required: an answer for
	// a question the timer already moved past is rejected.
	QuestionIndex *int `json:"questionIndex"`
}

// Start
// @Summary     Начать интервью
// @Description Проверяет контакты кандидата и открывает сессию из 6 вопросов с таймером.
// @Tags        Интервью
// @Accept      json
// @Produce     json
// @Param       input body startRequest true "Контакты кандидата"
// @Success     201 {object} assessment.View
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /interviews [post]
func (h *InterviewsHandler) Start(c *fiber.Ctx) error {
	var req startRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	v, err := h.uc.Start(c.Context(), resume.CandidateInfo{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeRef: req.ResumeRef,
	})
	if err != nil {
		return writeInterviewError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, v)
}

// Get
// @Summary Состояние интервью
// @Tags    Интервью
// @Produce json
// @Param   id path string true "ID сессии"
// @Success 200 {object} assessment.View
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /interviews/{id} [get]
func (h *InterviewsHandler) Get(c *fiber.Ctx) error {
	v, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeInterviewError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// SaveDraft
// @Summary     Сохранить черновик ответа
// @Description Черновик отправляется автоматически, когда время на вопрос истекает.
// @Tags        Интервью
// @Accept      json
// @Produce     json
// @Param       id    path string       true "ID сессии"
// @Param       input body draftRequest true "Текст черновика"
// @Success     200 {object} assessment.View
// @Failure     404 {object} presenter.ErrorResponse
// @Failure     409 {object} presenter.ErrorResponse
// @Router      /interviews/{id}/draft [put]
func (h *InterviewsHandler) SaveDraft(c *fiber.Ctx) error {
	var req draftRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	v, err := h.uc.SetDraft(c.Context(), c.Params("id"), req.Text)
	if err != nil {
		return writeInterviewError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// Answer
// @Summary     Ответить на текущий вопрос
// @Description Пустой ответ записывается как "No answer provided". После последнего вопроса сессия оценивается.
// @Tags        Интервью
// @Accept      json
// @Produce     json
// @Param       id    path string        true "ID сессии"
// @Param       input body answerRequest true "Ответ"
// @Success     200 {object} assessment.View
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Failure     409 {object} presenter.ErrorResponse
// @Router      /interviews/{id}/answers [post]
func (h *InterviewsHandler) Answer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
	}
	if req.QuestionIndex == nil {
		return presenter.Error(c, http.StatusBadRequest, "questionIndex is required")
	}
	v, err := h.uc.Submit(c.Context(), c.Params("id"), assessment.Submission{
		Text:          req.Text,
		QuestionIndex: *req.QuestionIndex,
	})
	if err != nil {
		return writeInterviewError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// Reset
// @Summary Сбросить интервью
// @Tags    Интервью
// @Param   id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /interviews/{id} [delete]
func (h *InterviewsHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), c.Params("id")); err != nil {
		return writeInterviewError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func writeInterviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "interview not found")
	case errors.Is(err, assessment.ErrInvalidCandidate):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrStaleAnswer):
		return presenter.ErrorCode(c, http.StatusConflict, "stale_answer", err.Error())
	case errors.Is(err, interview.ErrInvalidTransition):
		return presenter.ErrorCode(c, http.StatusConflict, "invalid_transition", err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
