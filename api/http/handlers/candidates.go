package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/presenter"
	"github.com/artem13815/interview/pkg/candidate"
)

// CandidatesHandler is the recruiter view of finished interviews.
type CandidatesHandler struct {
	store candidate.Store
}

func NewCandidatesHandler(store candidate.Store) *CandidatesHandler {
	return &CandidatesHandler{store: store}
}

type candidateItem struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Score int       `json:"score"`
}

type candidateList struct {
	Items  []candidateItem `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// List
// @Summary     Список кандидатов
// @Description Поиск по имени или email без учёта регистра, сортировка по score, name или date.
// @Tags        Кандидаты
// @Produce     json
// @Param       search query string false "Подстрока имени или email"
// @Param       sortBy query string false "score | name | date" default(score)
// @Param       order  query string false "asc | desc" default(desc)
// @Param       limit  query int    false "1..200" default(50)
// @Param       offset query int    false ">= 0" default(0)
// @Success     200 {object} candidateList
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /candidates [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	q, err := candidateQuery(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	page, err := h.store.List(c.Context(), q)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list candidates")
	}
	out := candidateList{Items: make([]candidateItem, 0, len(page.Items)), Total: page.Total, Limit: q.Limit, Offset: q.Offset}
	for _, r := range page.Items {
		out.Items = append(out.Items, candidateItem{
			ID:    r.ID,
			Date:  r.CreatedAt,
			Name:  r.Info.Name,
			Email: r.Info.Email,
			Phone: r.Info.Phone,
			Score: r.Score,
		})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Get
// @Summary Карточка кандидата
// @Description Ответы, оценки по вопросам, итоговое резюме и переписка.
// @Tags    Кандидаты
// @Produce json
// @Param   id path string true "ID кандидата"
// @Success 200 {object} candidate.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "candidate not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load candidate")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
