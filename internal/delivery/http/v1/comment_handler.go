package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUC domain.CommentUsecase
}

func NewCommentHandler(protected *gin.RouterGroup, commentUC domain.CommentUsecase) {
	handler := &CommentHandler{commentUC: commentUC}

	comments := protected.Group("/comments")
	{
		comments.GET("", handler.List)
		comments.GET("/:id", handler.GetDetails)
		comments.POST("", handler.Create)
		comments.PUT("/:id", handler.Update)
		comments.DELETE("/:id", handler.Delete)
	}
}

type CreateCommentRequest struct {
	CandidateID int64  `json:"candidateId" binding:"required"`
	Comment     string `json:"comment" binding:"required"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func (h *CommentHandler) List(c *gin.Context) {
	filter := domain.CommentFilter{
		Params:      parseListParams(c),
		ID:          queryInt64(c, "id"),
		CandidateID: queryInt64(c, "candidateId"),
		Comment:     c.Query("comment"),
		UserID:      queryInt64(c, "userId"),
	}
	page, err := h.commentUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comments retrieved", page)
}

func (h *CommentHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	comment, err := h.commentUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment retrieved", comment)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	comment := &domain.Comment{CandidateID: req.CandidateID, Comment: req.Comment}
	if err := h.commentUC.Create(c.Request.Context(), comment); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment created", comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	comment := &domain.Comment{ID: id, Comment: req.Comment}
	if err := h.commentUC.Update(c.Request.Context(), comment); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment updated", comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	comment, err := h.commentUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment deleted", comment)
}
