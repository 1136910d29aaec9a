package v1

import (
	"net/http"
	"time"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetDetails)
		candidates.GET("/exists", handler.ExistsByName)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
		candidates.POST("/:id/blacklist", handler.Blacklist)
	}
}

type CandidateRequest struct {
	Name             string   `json:"name" binding:"required"`
	Image            *string  `json:"image"`
	DateOfBirth      *string  `json:"dateOfBirth"`
	Gender           *string  `json:"gender"`
	ShortDescription *string  `json:"shortDescription"`
	Email            string   `json:"email" binding:"required,email"`
	Linkedin         *string  `json:"linkedin"`
	Address          *string  `json:"address"`
	DocumentNumber   *string  `json:"documentNumber"`
	Phone            *string  `json:"phone"`
	SourceID         *int64   `json:"sourceId"`
	Stars            *float64 `json:"stars"`
	Countries        []string `json:"countries"`
	Provinces        []string `json:"provinces"`
	Languages        []string `json:"languages"`
	HiredInternally  bool     `json:"hiredInternally"`
	AreaIDs          []int64  `json:"areaIds"`
	IndustryIDs      []int64  `json:"industryIds"`
	SeniorityIDs     []int64  `json:"seniorityIds"`
	FileIDs          []int64  `json:"fileIds"`
}

func (r CandidateRequest) toDomain() (*domain.Candidate, domain.CandidateLinks, error) {
	var dob *time.Time
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return nil, domain.CandidateLinks{}, apperror.BadRequest("dateOfBirth must be YYYY-MM-DD")
		}
		dob = &parsed
	}
	candidate := &domain.Candidate{
		Name:             r.Name,
		Image:            r.Image,
		DateOfBirth:      dob,
		Gender:           r.Gender,
		ShortDescription: r.ShortDescription,
		Email:            r.Email,
		Linkedin:         r.Linkedin,
		Address:          r.Address,
		DocumentNumber:   r.DocumentNumber,
		Phone:            r.Phone,
		SourceID:         r.SourceID,
		Stars:            r.Stars,
		Countries:        r.Countries,
		Provinces:        r.Provinces,
		Languages:        r.Languages,
		HiredInternally:  r.HiredInternally,
	}
	links := domain.CandidateLinks{
		AreaIDs:      r.AreaIDs,
		IndustryIDs:  r.IndustryIDs,
		SeniorityIDs: r.SeniorityIDs,
		FileIDs:      r.FileIDs,
	}
	return candidate, links, nil
}

// List godoc
// @Summary      List candidates
// @Description  Filterable, paginated candidate list
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	filter := domain.CandidateFilter{
		Params:           parseListParams(c),
		ID:               queryInt64(c, "id"),
		Name:             c.Query("name"),
		MinimumAge:       queryInt(c, "minAge"),
		MaximumAge:       queryInt(c, "maxAge"),
		Gender:           c.Query("gender"),
		ShortDescription: c.Query("shortDescription"),
		Email:            c.Query("email"),
		Linkedin:         c.Query("linkedin"),
		Address:          c.Query("address"),
		Phone:            c.Query("phone"),
		SourceID:         queryInt64(c, "sourceId"),
		Countries:        c.QueryArray("countries"),
		Provinces:        c.QueryArray("provinces"),
		Languages:        c.QueryArray("languages"),
		AreaIDs:          queryInt64s(c, "areaIds"),
		IndustryIDs:      queryInt64s(c, "industryIds"),
		SeniorityIDs:     queryInt64s(c, "seniorityIds"),
		MinimumStars:     queryFloat(c, "minStars"),
		MaximumStars:     queryFloat(c, "maxStars"),
		Blacklisted:      queryBool(c, "blacklisted"),
		Deleted:          queryBool(c, "deleted"),
		HiredInternally:  queryBool(c, "hiredInternally"),
	}

	page, err := h.candidateUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", page)
}

// GetDetails godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	detail, err := h.candidateUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", detail)
}

// ExistsByName godoc
// @Summary      Check whether a candidate name is taken
// @Tags         candidates
// @Produce      json
// @Param        name  query     string  true  "Candidate name"
// @Success      200  {object}  response.Response
// @Router       /candidates/exists [get]
// @Security     BearerAuth
func (h *CandidateHandler) ExistsByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.Error(apperror.BadRequest("name query parameter is required"))
		return
	}
	exists, detail, err := h.candidateUC.ExistsByName(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Existence checked", gin.H{
		"exists":    exists,
		"candidate": detail,
	})
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	candidate, links, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	detail, err := h.candidateUC.Create(c.Request.Context(), candidate, links)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", detail)
}

// Update godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Candidate ID"
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	candidate, links, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	candidate.ID = id
	detail, err := h.candidateUC.Update(c.Request.Context(), candidate, links)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", detail)
}

// Delete godoc
// @Summary      Soft-delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	candidate, err := h.candidateUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", candidate)
}

type BlacklistRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Blacklist godoc
// @Summary      Blacklist a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path      int               true  "Candidate ID"
// @Param        entry   body      BlacklistRequest  true  "Blacklist JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/{id}/blacklist [post]
// @Security     BearerAuth
func (h *CandidateHandler) Blacklist(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))
	detail, err := h.candidateUC.Blacklist(c.Request.Context(), id, req.Reason, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate blacklisted", detail)
}
