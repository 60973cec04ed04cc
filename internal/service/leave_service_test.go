package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/model"
)

func setupTestLeaveService() (LeaveService, *mockUserRepo, *mockLeaveRepo) {
	repo, userRepo, _, leaveRepo := setupTestRepos()
	svc := NewLeaveService(repo, zap.NewNop())
	return svc, userRepo, leaveRepo
}

func TestLeaveSubmit_Success(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	leave, err := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason:    "年假",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})

	if err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}
	if leave.Status != model.LeaveStatusPending {
		t.Errorf("新申请状态应为 pending，实际=%s", leave.Status)
	}
	if leave.EmployeeID != ann.UserID {
		t.Errorf("申请人应为提交者，实际=%s", leave.EmployeeID)
	}
	if leave.ReviewedBy != nil {
		t.Error("未审批的申请 ReviewedBy 应为空")
	}
	if leave.StartDate.Format(leaveDateLayout) != "2026-09-01" {
		t.Errorf("开始日期解析有误: %v", leave.StartDate)
	}
}

func TestLeaveSubmit_SingleDay(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	// 起止同日合法
	_, err := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "病假", StartDate: "2026-09-01", EndDate: "2026-09-01",
	})
	if err != nil {
		t.Errorf("单日请假应合法: %v", err)
	}
}

func TestLeaveSubmit_InvalidDates(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	cases := []struct {
		name       string
		start, end string
	}{
		{"格式错误", "09/01/2026", "2026-09-03"},
		{"结束格式错误", "2026-09-01", "not-a-date"},
		{"结束早于开始", "2026-09-03", "2026-09-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
				Reason: "年假", StartDate: tc.start, EndDate: tc.end,
			})
			if !errors.Is(err, ErrInvalidDates) {
				t.Errorf("期望 ErrInvalidDates，实际: %v", err)
			}
		})
	}
}

func TestLeaveReview_Approve(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	leave, err := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	if err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}

	reviewed, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: leave.LeaveRequestID, Status: model.LeaveStatusApproved,
	})
	if err != nil {
		t.Fatalf("Review 应成功: %v", err)
	}
	if reviewed.Status != model.LeaveStatusApproved {
		t.Errorf("期望 approved，实际=%s", reviewed.Status)
	}
	if reviewed.ReviewedBy == nil || *reviewed.ReviewedBy != bob.UserID {
		t.Error("ReviewedBy 应为审批经理 ID")
	}
}

func TestLeaveReview_DoubleDecision(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	leave, _ := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	if _, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: leave.LeaveRequestID, Status: model.LeaveStatusRejected,
	}); err != nil {
		t.Fatalf("首次审批应成功: %v", err)
	}

	// 终态不可改写
	_, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: leave.LeaveRequestID, Status: model.LeaveStatusApproved,
	})
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("重复审批期望 ErrAlreadyReviewed，实际: %v", err)
	}
}

func TestLeaveReview_CrossDepartment(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	frank := createTestUser(userRepo, "frank@example.com", "pw", model.RoleManager, "Finance")
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	leave, _ := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})

	_, err := svc.Review(context.Background(), claimsFor(frank), &dto.ReviewLeaveRequest{
		RequestID: leave.LeaveRequestID, Status: model.LeaveStatusApproved,
	})
	if !errors.Is(err, ErrLeaveForbidden) {
		t.Errorf("跨部门审批期望 ErrLeaveForbidden，实际: %v", err)
	}
}

func TestLeaveReview_NotFound(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")

	_, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: "no-such-request", Status: model.LeaveStatusApproved,
	})
	if !errors.Is(err, ErrLeaveNotFound) {
		t.Errorf("期望 ErrLeaveNotFound，实际: %v", err)
	}
}

func TestLeaveReview_InvalidDecision(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")

	_, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: "leave-1", Status: model.LeaveStatusPending,
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("审批结果必须为终态，期望 ErrInvalidStatus，实际: %v", err)
	}
}

func TestLeaveList_Scoping(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")
	carol := createTestUser(userRepo, "carol@example.com", "pw", model.RoleEmployee, "Finance")

	_, _ = svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	_, _ = svc.Submit(context.Background(), claimsFor(carol), &dto.SubmitLeaveRequest{
		Reason: "病假", StartDate: "2026-09-02", EndDate: "2026-09-02",
	})

	own, err := svc.ListOwn(context.Background(), ann.UserID)
	if err != nil {
		t.Fatalf("ListOwn 应成功: %v", err)
	}
	if len(own) != 1 || own[0].EmployeeID != ann.UserID {
		t.Errorf("员工应只看到自己的申请，实际=%v", own)
	}

	dept, err := svc.ListDepartment(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("ListDepartment 应成功: %v", err)
	}
	if len(dept) != 1 || dept[0].EmployeeID != ann.UserID {
		t.Errorf("部门视图应只含本部门申请，实际=%v", dept)
	}
}

// 拒绝后可再次提交新申请
func TestLeaveSubmit_AfterRejection(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	first, _ := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	if _, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: first.LeaveRequestID, Status: model.LeaveStatusRejected,
	}); err != nil {
		t.Fatalf("审批应成功: %v", err)
	}

	second, err := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-10", EndDate: "2026-09-12",
	})
	if err != nil {
		t.Fatalf("被拒后重新提交应成功: %v", err)
	}
	if second.LeaveRequestID == first.LeaveRequestID {
		t.Error("新申请应生成新的 ID")
	}

	own, _ := svc.ListOwn(context.Background(), ann.UserID)
	if len(own) != 2 {
		t.Errorf("历史应保留两条申请，实际=%d", len(own))
	}
}

func TestLeaveBuildCalendar(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	bob := createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	approved, _ := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "年假", StartDate: "2026-09-01", EndDate: "2026-09-03",
	})
	pending, _ := svc.Submit(context.Background(), claimsFor(ann), &dto.SubmitLeaveRequest{
		Reason: "病假", StartDate: "2026-10-01", EndDate: "2026-10-02",
	})
	if _, err := svc.Review(context.Background(), claimsFor(bob), &dto.ReviewLeaveRequest{
		RequestID: approved.LeaveRequestID, Status: model.LeaveStatusApproved,
	}); err != nil {
		t.Fatalf("审批应成功: %v", err)
	}

	content, err := svc.BuildCalendar(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("BuildCalendar 应成功: %v", err)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "BEGIN:VEVENT") {
		t.Error("输出应为 iCalendar 格式且包含事件")
	}
	if !strings.Contains(content, "leave-"+approved.LeaveRequestID+"@staffhub") {
		t.Error("已批准申请应出现在日历中")
	}
	if strings.Contains(content, "leave-"+pending.LeaveRequestID+"@staffhub") {
		t.Error("未批准申请不应出现在日历中")
	}
}

func TestLeaveBuildCalendar_Empty(t *testing.T) {
	svc, _, _ := setupTestLeaveService()

	content, err := svc.BuildCalendar(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("空数据也应生成日历: %v", err)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("空日历仍应为合法 iCalendar 文档")
	}
}
