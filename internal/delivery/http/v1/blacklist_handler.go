package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BlacklistHandler struct {
	blacklistUC domain.BlacklistUsecase
}

func NewBlacklistHandler(protected *gin.RouterGroup, blacklistUC domain.BlacklistUsecase) {
	handler := &BlacklistHandler{blacklistUC: blacklistUC}

	blacklists := protected.Group("/blacklists")
	{
		blacklists.GET("", handler.List)
		blacklists.GET("/:id", handler.GetDetails)
		blacklists.POST("", handler.Create)
		blacklists.PUT("/:id", handler.Update)
		blacklists.DELETE("/:id", handler.Delete)
	}
}

type CreateBlacklistRequest struct {
	CandidateID int64  `json:"candidateId" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type UpdateBlacklistRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *BlacklistHandler) List(c *gin.Context) {
	filter := domain.BlacklistFilter{
		Params:      parseListParams(c),
		ID:          queryInt64(c, "id"),
		CandidateID: queryInt64(c, "candidateId"),
		Reason:      c.Query("reason"),
		UserID:      queryInt64(c, "userId"),
	}
	page, err := h.blacklistUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blacklist entries retrieved", page)
}

func (h *BlacklistHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	entry, err := h.blacklistUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blacklist entry retrieved", entry)
}

func (h *BlacklistHandler) Create(c *gin.Context) {
	var req CreateBlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	entry := &domain.BlacklistEntry{CandidateID: req.CandidateID, Reason: req.Reason}
	if err := h.blacklistUC.Create(c.Request.Context(), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Blacklist entry created", entry)
}

func (h *BlacklistHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateBlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	entry := &domain.BlacklistEntry{ID: id, Reason: req.Reason}
	if err := h.blacklistUC.Update(c.Request.Context(), entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blacklist entry updated", entry)
}

func (h *BlacklistHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	entry, err := h.blacklistUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blacklist entry deleted", entry)
}
