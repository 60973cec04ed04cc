package model

// ── 任务状态机 ──
// pending → in-progress → completed，只允许向前推进

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// taskStatusRank 状态序：用于校验只进不退
var taskStatusRank = map[string]int{
	TaskStatusPending:    0,
	TaskStatusInProgress: 1,
	TaskStatusCompleted:  2,
}

// ValidTaskStatus 检查任务状态取值是否合法
func ValidTaskStatus(status string) bool {
	_, ok := taskStatusRank[status]
	return ok
}

// TaskStatusAdvances 检查 from → to 是否为向前推进
func TaskStatusAdvances(from, to string) bool {
	f, okF := taskStatusRank[from]
	t, okT := taskStatusRank[to]
	return okF && okT && t > f
}

// Task 任务表 — 对应 tasks
// 创建时任务部门必须等于被指派人部门
type Task struct {
	TaskID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"taskId"`
	Title       string `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string `gorm:"type:text;not null"                             json:"description"`
	Department  string `gorm:"type:varchar(50);not null"                      json:"department"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	AssignedTo  string `gorm:"type:uuid;not null"                             json:"assignedTo"`
	AssignedBy  string `gorm:"type:uuid;not null"                             json:"assignedBy"`
	BaseModel

	// 关联
	Assignee *User `gorm:"foreignKey:AssignedTo;references:UserID" json:"assignee,omitempty"`
	Assigner *User `gorm:"foreignKey:AssignedBy;references:UserID" json:"assigner,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string { return "tasks" }
