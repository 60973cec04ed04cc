package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/service"
	"staffhub/backend/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListEmployees 经理查看本部门员工名单
// GET /employees
func (h *UserHandler) ListEmployees(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	employees, err := h.userSvc.ListEmployees(c.Request.Context(), claims.Department)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.EmployeeListResponse{Employees: employees})
}

// GetCurrentUser 当前登录用户详情
// GET /auth/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetCurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"user": user})
}
