package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/model"
	"staffhub/backend/internal/repository"
	"staffhub/backend/pkg/jwt"
)

var (
	ErrTaskNotFound    = errors.New("任务不存在")
	ErrTaskForbidden   = errors.New("无权操作该任务")
	ErrInvalidAssignee = errors.New("被指派员工无效")
	ErrInvalidStatus   = errors.New("任务状态取值无效")
	ErrBadTransition   = errors.New("任务状态只能向前推进")
)

// TaskService 任务业务接口
type TaskService interface {
	// List 经理看本部门全部任务；员工只看自己的任务
	List(ctx context.Context, claims *jwt.Claims) ([]model.Task, error)
	// Assign 经理向本部门员工指派任务
	Assign(ctx context.Context, claims *jwt.Claims, req *dto.AssignTaskRequest) (*model.Task, error)
	// UpdateStatus 推进任务状态，只进不退
	UpdateStatus(ctx context.Context, claims *jwt.Claims, req *dto.UpdateTaskStatusRequest) (*model.Task, error)
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService 创建 TaskService 实例
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

func (s *taskService) List(ctx context.Context, claims *jwt.Claims) ([]model.Task, error) {
	var (
		tasks []model.Task
		err   error
	)
	if claims.Role == model.RoleManager {
		tasks, err = s.repo.Task.ListByDepartment(ctx, claims.Department)
	} else {
		tasks, err = s.repo.Task.ListByAssignee(ctx, claims.UserID)
	}
	if err != nil {
		s.logger.Error("查询任务列表失败", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) Assign(ctx context.Context, claims *jwt.Claims, req *dto.AssignTaskRequest) (*model.Task, error) {
	// 被指派人必须存在且与经理同部门
	assignee, err := s.repo.User.GetByID(ctx, req.AssignedTo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAssignee
		}
		s.logger.Error("查询被指派人失败", zap.Error(err))
		return nil, err
	}
	if assignee.Department != claims.Department {
		return nil, ErrInvalidAssignee
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Department:  claims.Department,
		Status:      model.TaskStatusPending,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  claims.UserID,
	}
	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("创建任务失败", zap.Error(err))
		return nil, err
	}

	// 回读以携带被指派人信息
	created, err := s.repo.Task.GetByID(ctx, task.TaskID)
	if err != nil {
		s.logger.Error("回读任务失败", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, claims *jwt.Claims, req *dto.UpdateTaskStatusRequest) (*model.Task, error) {
	if !model.ValidTaskStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	task, err := s.repo.Task.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("查询任务失败", zap.Error(err))
		return nil, err
	}

	// 员工只能推进自己的任务；经理只能推进本部门任务
	if claims.Role == model.RoleEmployee && task.AssignedTo != claims.UserID {
		return nil, ErrTaskForbidden
	}
	if claims.Role == model.RoleManager && task.Department != claims.Department {
		return nil, ErrTaskForbidden
	}

	// 状态只进不退，终态后不可重放
	if !model.TaskStatusAdvances(task.Status, req.Status) {
		return nil, ErrBadTransition
	}

	task.Status = req.Status
	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("更新任务状态失败", zap.Error(err))
		return nil, err
	}
	return task, nil
}
