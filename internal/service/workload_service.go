package service

import (
	"math/rand/v2"
	"time"

	"staffhub/backend/internal/dto"
)

// workloadStatuses 负载档位，随机占位实现（不是预测模型）
var workloadStatuses = []string{"Normal", "Moderate", "Overloaded"}

// WorkloadService 部门负载预测接口
type WorkloadService interface {
	Predict(department string) *dto.WorkloadResponse
}

type workloadService struct{}

// NewWorkloadService 创建 WorkloadService 实例
func NewWorkloadService() WorkloadService {
	return &workloadService{}
}

func (s *workloadService) Predict(department string) *dto.WorkloadResponse {
	return &dto.WorkloadResponse{
		Status:     workloadStatuses[rand.IntN(len(workloadStatuses))],
		Department: department,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
