package handler

import "staffhub/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Task     *TaskHandler
	Leave    *LeaveHandler
	Workload *WorkloadHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Task:     NewTaskHandler(svc.Task),
		Leave:    NewLeaveHandler(svc.Leave),
		Workload: NewWorkloadHandler(svc.Workload),
		Export:   NewExportHandler(svc.Export),
	}
}
