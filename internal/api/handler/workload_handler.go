package handler

import (
	"github.com/gin-gonic/gin"

	"staffhub/backend/internal/service"
	"staffhub/backend/pkg/response"
)

// WorkloadHandler 负载预测模块 HTTP 处理器
type WorkloadHandler struct {
	workloadSvc service.WorkloadService
}

// NewWorkloadHandler 创建 WorkloadHandler
func NewWorkloadHandler(workloadSvc service.WorkloadService) *WorkloadHandler {
	return &WorkloadHandler{workloadSvc: workloadSvc}
}

// Predict 部门负载预测（随机占位实现）
// GET /workload/predict
func (h *WorkloadHandler) Predict(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	response.OK(c, h.workloadSvc.Predict(claims.Department))
}
