package dto

// ── 请假模块 DTO ──

// SubmitLeaveRequest 提交请假申请
// 日期为 "2006-01-02" 格式，解析与区间校验在 Service 层完成
type SubmitLeaveRequest struct {
	Reason    string `json:"reason"    binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"   binding:"required"`
}

// ReviewLeaveRequest 审批请假申请（仅经理）
type ReviewLeaveRequest struct {
	RequestID string `json:"requestId" binding:"required,uuid"`
	Status    string `json:"status"    binding:"required,oneof=approved rejected"`
}
