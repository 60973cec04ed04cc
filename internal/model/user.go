package model

// ── 角色 ──

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// ValidRole 检查角色取值是否合法
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleEmployee
}

// ── 部门 ──
// 部门是固定四值枚举，不是独立实体

var Departments = []string{"Engineering", "Consulting", "Finance", "Customer Support"}

// ValidDepartment 检查部门取值是否合法
func ValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}

// User 用户表 — 对应 users
// 密码哈希永不序列化到响应中
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"userId"`
	Name         string `gorm:"type:varchar(50);not null"                      json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null"                      json:"role"`
	Department   string `gorm:"type:varchar(50);not null"                      json:"department"`
	EmployeeCode string `gorm:"type:varchar(20);uniqueIndex"                   json:"employeeId"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
