package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/model"
	"staffhub/backend/internal/repository"
	"staffhub/backend/pkg/jwt"
)

var (
	ErrLeaveNotFound   = errors.New("请假申请不存在")
	ErrLeaveForbidden  = errors.New("无权审批该请假申请")
	ErrInvalidDates    = errors.New("日期格式应为 YYYY-MM-DD 且结束不早于开始")
	ErrAlreadyReviewed = errors.New("该申请已审批，不可重复操作")
)

const leaveDateLayout = "2006-01-02"

// LeaveService 请假业务接口
type LeaveService interface {
	// Submit 员工提交请假申请
	Submit(ctx context.Context, claims *jwt.Claims, req *dto.SubmitLeaveRequest) (*model.LeaveRequest, error)
	// ListOwn 员工查看自己的申请历史
	ListOwn(ctx context.Context, userID string) ([]model.LeaveRequest, error)
	// ListDepartment 经理查看本部门员工的申请
	ListDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error)
	// Review 经理审批：pending → approved | rejected，仅一次
	Review(ctx context.Context, claims *jwt.Claims, req *dto.ReviewLeaveRequest) (*model.LeaveRequest, error)
	// BuildCalendar 生成本部门已批准请假的 iCalendar 内容
	BuildCalendar(ctx context.Context, department string) (string, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

func (s *leaveService) Submit(ctx context.Context, claims *jwt.Claims, req *dto.SubmitLeaveRequest) (*model.LeaveRequest, error) {
	start, err := time.Parse(leaveDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	end, err := time.Parse(leaveDateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	if end.Before(start) {
		return nil, ErrInvalidDates
	}

	leave := &model.LeaveRequest{
		EmployeeID: claims.UserID,
		Reason:     req.Reason,
		StartDate:  start,
		EndDate:    end,
		Status:     model.LeaveStatusPending,
	}
	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("创建请假申请失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Leave.GetByID(ctx, leave.LeaveRequestID)
	if err != nil {
		s.logger.Error("回读请假申请失败", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *leaveService) ListOwn(ctx context.Context, userID string) ([]model.LeaveRequest, error) {
	reqs, err := s.repo.Leave.ListByEmployee(ctx, userID)
	if err != nil {
		s.logger.Error("查询请假历史失败", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}

func (s *leaveService) ListDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error) {
	reqs, err := s.repo.Leave.ListByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("查询部门请假申请失败", zap.Error(err))
		return nil, err
	}
	return reqs, nil
}

func (s *leaveService) Review(ctx context.Context, claims *jwt.Claims, req *dto.ReviewLeaveRequest) (*model.LeaveRequest, error) {
	if !model.LeaveDecision(req.Status) {
		return nil, ErrInvalidStatus
	}

	leave, err := s.repo.Leave.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("查询请假申请失败", zap.Error(err))
		return nil, err
	}

	// 审批人必须与申请人同部门
	if leave.Employee == nil || leave.Employee.Department != claims.Department {
		return nil, ErrLeaveForbidden
	}

	// 终态只允许到达一次
	if leave.Status != model.LeaveStatusPending {
		return nil, ErrAlreadyReviewed
	}

	reviewer := claims.UserID
	leave.Status = req.Status
	leave.ReviewedBy = &reviewer
	if err := s.repo.Leave.Update(ctx, leave); err != nil {
		s.logger.Error("更新请假申请失败", zap.Error(err))
		return nil, err
	}
	return leave, nil
}

func (s *leaveService) BuildCalendar(ctx context.Context, department string) (string, error) {
	reqs, err := s.repo.Leave.ListApprovedByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("查询已批准请假失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//staffhub//leave-calendar//EN")

	for i := range reqs {
		r := &reqs[i]
		event := cal.AddEvent(fmt.Sprintf("leave-%s@staffhub", r.LeaveRequestID))
		name := r.EmployeeID
		if r.Employee != nil {
			name = r.Employee.Name
		}
		event.SetSummary(fmt.Sprintf("%s 请假", name))
		event.SetDescription(r.Reason)
		event.SetAllDayStartAt(r.StartDate)
		// DTEND 为排他日期，需加一天覆盖结束当日
		event.SetAllDayEndAt(r.EndDate.AddDate(0, 0, 1))
		event.SetDtStampTime(r.UpdatedAt)
	}

	return cal.Serialize(), nil
}
