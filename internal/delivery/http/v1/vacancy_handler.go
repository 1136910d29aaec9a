package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := protected.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:id", handler.GetDetails)
		vacancies.POST("", handler.Create)
		vacancies.PUT("/:id", handler.Update)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

type VacancyCriteriaRequest struct {
	MinStars     *float64 `json:"minStars"`
	Gender       *string  `json:"gender"`
	MinAge       *int     `json:"minAge"`
	MaxAge       *int     `json:"maxAge"`
	Countries    []string `json:"countries"`
	Provinces    []string `json:"provinces"`
	Languages    []string `json:"languages"`
	AreaIDs      []int64  `json:"areaIds"`
	IndustryIDs  []int64  `json:"industryIds"`
	SeniorityIDs []int64  `json:"seniorityIds"`
}

type VacancyRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	StatusID    *int64                  `json:"statusId"`
	CompanyID   *int64                  `json:"companyId"`
	AssignedTo  int64                   `json:"assignedTo"`
	Filters     *VacancyCriteriaRequest `json:"filters"`
}

func (r VacancyRequest) toDomain() (*domain.Vacancy, *domain.VacancyCriteria) {
	vacancy := &domain.Vacancy{
		Title:       r.Title,
		Description: r.Description,
		StatusID:    r.StatusID,
		CompanyID:   r.CompanyID,
		AssignedTo:  r.AssignedTo,
	}
	var criteria *domain.VacancyCriteria
	if r.Filters != nil {
		criteria = &domain.VacancyCriteria{
			MinStars:     r.Filters.MinStars,
			Gender:       r.Filters.Gender,
			MinAge:       r.Filters.MinAge,
			MaxAge:       r.Filters.MaxAge,
			Countries:    r.Filters.Countries,
			Provinces:    r.Filters.Provinces,
			Languages:    r.Filters.Languages,
			AreaIDs:      r.Filters.AreaIDs,
			IndustryIDs:  r.Filters.IndustryIDs,
			SeniorityIDs: r.Filters.SeniorityIDs,
		}
	}
	return vacancy, criteria
}

// List godoc
// @Summary      List vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /vacancies [get]
// @Security     BearerAuth
func (h *VacancyHandler) List(c *gin.Context) {
	filter := domain.VacancyFilter{
		Params:           parseListParams(c),
		ID:               queryInt64(c, "id"),
		Title:            c.Query("title"),
		Description:      c.Query("description"),
		StatusID:         queryInt64(c, "statusId"),
		CompanyID:        queryInt64(c, "companyId"),
		CreatedByID:      queryInt64(c, "createdBy"),
		AssignedToID:     queryInt64(c, "assignedTo"),
		CriteriaGender:   c.Query("gender"),
		CriteriaMinAge:   queryInt(c, "minAge"),
		CriteriaMaxAge:   queryInt(c, "maxAge"),
		CriteriaMinStars: queryFloat(c, "minStars"),
		AreaIDs:          queryInt64s(c, "areaIds"),
		IndustryIDs:      queryInt64s(c, "industryIds"),
		SeniorityIDs:     queryInt64s(c, "seniorityIds"),
	}

	page, err := h.vacancyUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", page)
}

// GetDetails godoc
// @Summary      Get a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
// @Security     BearerAuth
func (h *VacancyHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	detail, err := h.vacancyUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy retrieved", detail)
}

// Create godoc
// @Summary      Create a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      VacancyRequest  true  "Vacancy JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	vacancy, criteria := req.toDomain()
	detail, err := h.vacancyUC.Create(c.Request.Context(), vacancy, criteria)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", detail)
}

// Update godoc
// @Summary      Update a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Vacancy ID"
// @Param        vacancy  body      VacancyRequest  true  "Vacancy JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	vacancy, criteria := req.toDomain()
	vacancy.ID = id
	detail, err := h.vacancyUC.Update(c.Request.Context(), vacancy, criteria)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", detail)
}

// Delete godoc
// @Summary      Delete a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [delete]
// @Security     BearerAuth
func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	vacancy, err := h.vacancyUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", vacancy)
}
