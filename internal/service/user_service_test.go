package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"staffhub/backend/internal/model"
)

func setupTestUserService() (UserService, *mockUserRepo) {
	repo, userRepo, _, _ := setupTestRepos()
	svc := NewUserService(repo, zap.NewNop())
	return svc, userRepo
}

func TestListEmployees_DepartmentOnly(t *testing.T) {
	svc, userRepo := setupTestUserService()
	createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")
	createTestUser(userRepo, "dave@example.com", "pw", model.RoleEmployee, "Engineering")
	createTestUser(userRepo, "carol@example.com", "pw", model.RoleEmployee, "Finance")
	createTestUser(userRepo, "bob@example.com", "pw", model.RoleManager, "Engineering")

	employees, err := svc.ListEmployees(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("ListEmployees 应成功: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("应只返回本部门员工（不含经理），实际=%d", len(employees))
	}
	for _, e := range employees {
		if e.Department != "Engineering" {
			t.Errorf("不应包含其他部门员工: %v", e)
		}
		if e.Role != model.RoleEmployee {
			t.Errorf("名单不应包含经理: %v", e)
		}
	}
}

func TestListEmployees_EmptyDepartment(t *testing.T) {
	svc, _ := setupTestUserService()

	employees, err := svc.ListEmployees(context.Background(), "Sales")
	if err != nil {
		t.Fatalf("空部门应返回空列表而非错误: %v", err)
	}
	if len(employees) != 0 {
		t.Errorf("期望空列表，实际=%d", len(employees))
	}
}

func TestGetCurrentUser_Success(t *testing.T) {
	svc, userRepo := setupTestUserService()
	ann := createTestUser(userRepo, "ann@example.com", "pw", model.RoleEmployee, "Engineering")

	resp, err := svc.GetCurrentUser(context.Background(), ann.UserID)
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if resp.Email != ann.Email || resp.EmployeeID != ann.EmployeeCode {
		t.Errorf("返回的用户信息不一致: %+v", resp)
	}
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.GetCurrentUser(context.Background(), "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
