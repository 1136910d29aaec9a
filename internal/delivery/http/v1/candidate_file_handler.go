package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateFileHandler struct {
	fileUC domain.CandidateFileUsecase
}

func NewCandidateFileHandler(protected *gin.RouterGroup, fileUC domain.CandidateFileUsecase) {
	handler := &CandidateFileHandler{fileUC: fileUC}

	files := protected.Group("/candidate-files")
	{
		files.GET("", handler.List)
		files.GET("/:id", handler.GetDetails)
		files.POST("", handler.Create)
		files.PUT("/:id", handler.Update)
		files.DELETE("/:id", handler.Delete)
	}
}

type CandidateFileRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

func (h *CandidateFileHandler) List(c *gin.Context) {
	page, err := h.fileUC.List(c.Request.Context(), parseListParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Files retrieved", page)
}

func (h *CandidateFileHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	file, err := h.fileUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File retrieved", file)
}

func (h *CandidateFileHandler) Create(c *gin.Context) {
	var req CandidateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	file := &domain.CandidateFile{Name: req.Name, URL: req.URL}
	if err := h.fileUC.Create(c.Request.Context(), file); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "File created", file)
}

func (h *CandidateFileHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req CandidateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	file := &domain.CandidateFile{ID: id, Name: req.Name, URL: req.URL}
	if err := h.fileUC.Update(c.Request.Context(), file); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File updated", file)
}

func (h *CandidateFileHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	file, err := h.fileUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File deleted", file)
}
