package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves one of the name-only taxonomy resources. The same
// handler is mounted once per taxonomy under its own path.
type LookupHandler struct {
	lookupUC domain.LookupUsecase
}

func NewLookupHandler(protected *gin.RouterGroup, path string, lookupUC domain.LookupUsecase) {
	handler := &LookupHandler{lookupUC: lookupUC}

	group := protected.Group(path)
	{
		group.GET("", handler.List)
		group.GET("/:id", handler.GetDetails)
		group.POST("", handler.Create)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}

type LookupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *LookupHandler) List(c *gin.Context) {
	page, err := h.lookupUC.List(c.Request.Context(), parseListParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Records retrieved", page)
}

func (h *LookupHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	record, err := h.lookupUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Record retrieved", record)
}

func (h *LookupHandler) Create(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	record, err := h.lookupUC.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Record created", record)
}

func (h *LookupHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	record, err := h.lookupUC.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Record updated", record)
}

func (h *LookupHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	record, err := h.lookupUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Record deleted", record)
}
