package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PipelineStatusHandler struct {
	statusUC domain.PipelineStatusUsecase
}

func NewPipelineStatusHandler(protected *gin.RouterGroup, statusUC domain.PipelineStatusUsecase) {
	handler := &PipelineStatusHandler{statusUC: statusUC}

	statuses := protected.Group("/candidate-vacancy-statuses")
	{
		statuses.GET("", handler.List)
		statuses.GET("/:id", handler.GetDetails)
		statuses.POST("", handler.Create)
		statuses.PATCH("/:id", handler.Update)
		statuses.DELETE("/:id", handler.Delete)
	}
}

type CreatePipelineStatusRequest struct {
	Name      string `json:"name" binding:"required"`
	Sort      *int   `json:"sort"`
	IsInitial bool   `json:"isInitial"`
}

type UpdatePipelineStatusRequest struct {
	Name      *string `json:"name"`
	Sort      *int    `json:"sort"`
	IsInitial *bool   `json:"isInitial"`
}

// List godoc
// @Summary      List pipeline statuses
// @Tags         pipeline-statuses
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidate-vacancy-statuses [get]
// @Security     BearerAuth
func (h *PipelineStatusHandler) List(c *gin.Context) {
	page, err := h.statusUC.List(c.Request.Context(), parseListParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pipeline statuses retrieved", page)
}

func (h *PipelineStatusHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	status, err := h.statusUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pipeline status retrieved", status)
}

// Create godoc
// @Summary      Create a pipeline status
// @Description  Inserts a stage at the requested rank; stages at or above it shift up
// @Tags         pipeline-statuses
// @Accept       json
// @Produce      json
// @Param        status  body      CreatePipelineStatusRequest  true  "Status JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidate-vacancy-statuses [post]
// @Security     BearerAuth
func (h *PipelineStatusHandler) Create(c *gin.Context) {
	var req CreatePipelineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	status, err := h.statusUC.Create(c.Request.Context(), req.Name, req.Sort, req.IsInitial)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Pipeline status created", status)
}

// Update godoc
// @Summary      Update a pipeline status
// @Description  Partial update; moving a stage re-ranks the stages between its old and new position
// @Tags         pipeline-statuses
// @Accept       json
// @Produce      json
// @Param        id      path      int                          true  "Status ID"
// @Param        status  body      UpdatePipelineStatusRequest  true  "Status JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-vacancy-statuses/{id} [patch]
// @Security     BearerAuth
func (h *PipelineStatusHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdatePipelineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	status, err := h.statusUC.Update(c.Request.Context(), id, domain.PipelineStatusUpdate{
		Name:      req.Name,
		Sort:      req.Sort,
		IsInitial: req.IsInitial,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pipeline status updated", status)
}

func (h *PipelineStatusHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	status, err := h.statusUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pipeline status deleted", status)
}
