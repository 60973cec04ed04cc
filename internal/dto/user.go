package dto

import "staffhub/backend/internal/model"

// ── 用户模块 DTO ──

// UserResponse 用户信息响应（不含密码哈希）
type UserResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeId"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// NewUserResponse 从模型构造用户响应
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		EmployeeID: u.EmployeeCode,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// EmployeeListResponse 部门员工列表响应
type EmployeeListResponse struct {
	Employees []UserResponse `json:"employees"`
}
