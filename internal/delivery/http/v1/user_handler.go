package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler mounts user management under an admin-only group.
func NewUserHandler(admin *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := admin.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.GetDetails)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Active   bool   `json:"active"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"required"`
	Active   bool   `json:"active"`
	Role     string `json:"role" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	filter := domain.UserFilter{
		Params:      parseListParams(c),
		Email:       c.Query("email"),
		Name:        c.Query("name"),
		Active:      queryBool(c, "active"),
		Role:        c.Query("role"),
		ExcludeRole: c.Query("excludeRole"),
	}
	page, err := h.userUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", page)
}

func (h *UserHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	user, err := h.userUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	user := &domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Active:   req.Active,
		Role:     req.Role,
	}
	if err := h.userUC.Create(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	user := &domain.User{
		ID:       id,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Active:   req.Active,
		Role:     req.Role,
	}
	if err := h.userUC.Update(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	user, err := h.userUC.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", user)
}
