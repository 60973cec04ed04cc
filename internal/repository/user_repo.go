package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"staffhub/backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	ListEmployeesByDepartment(ctx context.Context, department string) ([]model.User, error)
	NextEmployeeCode(ctx context.Context) (string, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ListEmployeesByDepartment 列出部门内全部员工（不含经理），按姓名排序
func (r *userRepo) ListEmployeesByDepartment(ctx context.Context, department string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("department = ? AND role = ?", department, model.RoleEmployee).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// NextEmployeeCode 从数据库序列取下一个工号
// 序列保证并发注册下工号不重复
func (r *userRepo) NextEmployeeCode(ctx context.Context) (string, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval('employee_code_seq')").
		Scan(&n).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EMP%04d", n), nil
}
