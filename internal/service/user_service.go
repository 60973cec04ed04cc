package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/repository"
)

var ErrUserNotFound = errors.New("用户不存在")

// UserService 用户业务接口
type UserService interface {
	// ListEmployees 经理查看本部门员工名单（不含经理，不含密码哈希）
	ListEmployees(ctx context.Context, department string) ([]dto.UserResponse, error)
	// GetCurrentUser 当前登录用户详情
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListEmployees(ctx context.Context, department string) ([]dto.UserResponse, error) {
	users, err := s.repo.User.ListEmployeesByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("查询部门员工失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
