package model

import "time"

// ── 请假状态机 ──
// pending → approved | rejected，终态不可再变更

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveDecision 检查状态是否为合法的审批决定
func LeaveDecision(status string) bool {
	return status == LeaveStatusApproved || status == LeaveStatusRejected
}

// LeaveRequest 请假申请表 — 对应 leave_requests
// 审批人必须与申请人同部门；终态申请不可重复审批
type LeaveRequest struct {
	LeaveRequestID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requestId"`
	EmployeeID     string    `gorm:"type:uuid;not null"                             json:"employeeId"`
	Reason         string    `gorm:"type:text;not null"                             json:"reason"`
	StartDate      time.Time `gorm:"type:date;not null"                             json:"startDate"`
	EndDate        time.Time `gorm:"type:date;not null"                             json:"endDate"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	ReviewedBy     *string   `gorm:"type:uuid"                                      json:"reviewedBy,omitempty"`
	BaseModel

	// 关联
	Employee *User `gorm:"foreignKey:EmployeeID;references:UserID" json:"employee,omitempty"`
	Reviewer *User `gorm:"foreignKey:ReviewedBy;references:UserID" json:"reviewer,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }
