package repository

import (
	"context"

	"gorm.io/gorm"

	"staffhub/backend/internal/model"
)

// LeaveRepository 请假申请数据访问接口
type LeaveRepository interface {
	Create(ctx context.Context, req *model.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	Update(ctx context.Context, req *model.LeaveRequest) error
	ListByEmployee(ctx context.Context, employeeID string) ([]model.LeaveRequest, error)
	ListByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error)
	ListApprovedByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error)
}

// leaveRepo LeaveRepository 的 GORM 实现
type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo 创建 LeaveRepository 实例
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("leave_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepo) Update(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// ListByEmployee 员工视角：仅自己的申请，最新在前
func (r *leaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListByDepartment 经理视角：部门员工的全部申请，最新在前
// 通过申请人部门联表过滤
func (r *leaveRepo) ListByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Reviewer").
		Joins("JOIN users ON users.user_id = leave_requests.employee_id").
		Where("users.department = ?", department).
		Order("leave_requests.created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListApprovedByDepartment 日历导出用：部门内已批准的申请，按开始日期排序
func (r *leaveRepo) ListApprovedByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN users ON users.user_id = leave_requests.employee_id").
		Where("users.department = ? AND leave_requests.status = ?", department, model.LeaveStatusApproved).
		Order("leave_requests.start_date ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
