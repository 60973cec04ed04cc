package service

import (
	"go.uber.org/zap"

	"staffhub/backend/internal/repository"
	"staffhub/backend/pkg/jwt"
	"staffhub/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	User     UserService
	Task     TaskService
	Leave    LeaveService
	Workload WorkloadService
	Export   ExportService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil：Redis 不可用时登出黑名单降级为 no-op
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Task:     NewTaskService(repo, logger),
		Leave:    NewLeaveService(repo, logger),
		Workload: NewWorkloadService(),
		Export:   NewExportService(repo, logger),
	}
}
