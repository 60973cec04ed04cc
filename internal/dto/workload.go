package dto

// WorkloadResponse 部门负载预测响应
// 预测结果为随机占位实现，状态取值 Normal | Moderate | Overloaded
type WorkloadResponse struct {
	Status     string `json:"status"`
	Department string `json:"department"`
	Timestamp  string `json:"timestamp"`
}
