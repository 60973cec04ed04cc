package dto

// ── 任务模块 DTO ──

// AssignTaskRequest 指派任务请求（仅经理）
type AssignTaskRequest struct {
	Title       string `json:"title"       binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	AssignedTo  string `json:"assignedTo"  binding:"required,uuid"`
}

// UpdateTaskStatusRequest 推进任务状态请求
type UpdateTaskStatusRequest struct {
	TaskID string `json:"taskId" binding:"required,uuid"`
	Status string `json:"status" binding:"required"`
}
