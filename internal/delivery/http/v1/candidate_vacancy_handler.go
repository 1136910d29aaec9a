package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateVacancyHandler struct {
	linkUC domain.CandidateVacancyUsecase
}

func NewCandidateVacancyHandler(protected *gin.RouterGroup, linkUC domain.CandidateVacancyUsecase) {
	handler := &CandidateVacancyHandler{linkUC: linkUC}

	links := protected.Group("/candidate-vacancies")
	{
		links.GET("", handler.List)
		links.GET("/:id", handler.GetDetails)
		links.POST("", handler.Create)
		links.PUT("/:id", handler.Update)
		links.DELETE("/:id", handler.Delete)
	}
}

type CreateCandidateVacancyRequest struct {
	CandidateID int64  `json:"candidateId" binding:"required"`
	VacancyID   int64  `json:"vacancyId" binding:"required"`
	StatusID    int64  `json:"candidateVacancyStatusId" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateCandidateVacancyRequest struct {
	StatusID int64  `json:"candidateVacancyStatusId" binding:"required"`
	Notes    string `json:"notes"`
}

func (h *CandidateVacancyHandler) List(c *gin.Context) {
	filter := domain.CandidateVacancyFilter{
		Params:      parseListParams(c),
		ID:          queryInt64(c, "id"),
		CandidateID: queryInt64(c, "candidateId"),
		VacancyID:   queryInt64(c, "vacancyId"),
		StatusID:    queryInt64(c, "candidateVacancyStatusId"),
		Notes:       c.Query("notes"),
	}
	page, err := h.linkUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate vacancies retrieved", page)
}

func (h *CandidateVacancyHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	link, err := h.linkUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate vacancy retrieved", link)
}

func (h *CandidateVacancyHandler) Create(c *gin.Context) {
	var req CreateCandidateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	link := &domain.CandidateVacancy{
		CandidateID: req.CandidateID,
		VacancyID:   req.VacancyID,
		StatusID:    req.StatusID,
		Notes:       req.Notes,
	}
	if err := h.linkUC.Create(c.Request.Context(), link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate vacancy created", link)
}

func (h *CandidateVacancyHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateCandidateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	link := &domain.CandidateVacancy{ID: id, StatusID: req.StatusID, Notes: req.Notes}
	if err := h.linkUC.Update(c.Request.Context(), link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate vacancy updated", link)
}

func (h *CandidateVacancyHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	link, err := h.linkUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate vacancy deleted", link)
}
