package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"staffhub/backend/internal/model"
)

// ── Mock Repositories ──

type mockUserRepo struct {
	users    map[string]*model.User // key: user_id
	byEmail  map[string]*model.User
	codeSeq  int64
	nextUID  int
	codeErr  error
	listErr  error
	createFn func(user *model.User) error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) put(user *model.User) {
	m.users[user.UserID] = user
	if user.Email != "" {
		m.byEmail[user.Email] = user
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createFn != nil {
		if err := m.createFn(user); err != nil {
			return err
		}
	}
	if user.UserID == "" {
		m.nextUID++
		user.UserID = fmt.Sprintf("user-%d", m.nextUID)
	}
	m.put(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.put(user)
	return nil
}

func (m *mockUserRepo) ListEmployeesByDepartment(_ context.Context, department string) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.User
	for _, u := range m.users {
		if u.Department == department && u.Role == model.RoleEmployee {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockUserRepo) NextEmployeeCode(_ context.Context) (string, error) {
	if m.codeErr != nil {
		return "", m.codeErr
	}
	m.codeSeq++
	return fmt.Sprintf("EMP%04d", m.codeSeq), nil
}

type mockTaskRepo struct {
	tasks   map[string]*model.Task
	nextTID int
	users   *mockUserRepo // 用于 Preload 模拟
}

func newMockTaskRepo(users *mockUserRepo) *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task), users: users}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		m.nextTID++
		task.TaskID = fmt.Sprintf("task-%d", m.nextTID)
	}
	m.tasks[task.TaskID] = task
	return nil
}

// withAssignee 模拟 Preload("Assignee")
func (m *mockTaskRepo) withAssignee(task model.Task) model.Task {
	if u, ok := m.users.users[task.AssignedTo]; ok {
		task.Assignee = u
	}
	return task
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		loaded := m.withAssignee(*t)
		return &loaded, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) ListByDepartment(_ context.Context, department string) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.Department == department {
			result = append(result, m.withAssignee(*t))
		}
	}
	return result, nil
}

func (m *mockTaskRepo) ListByAssignee(_ context.Context, userID string) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.AssignedTo == userID {
			result = append(result, *t)
		}
	}
	return result, nil
}

type mockLeaveRepo struct {
	requests map[string]*model.LeaveRequest
	nextLID  int
	users    *mockUserRepo
}

func newMockLeaveRepo(users *mockUserRepo) *mockLeaveRepo {
	return &mockLeaveRepo{requests: make(map[string]*model.LeaveRequest), users: users}
}

func (m *mockLeaveRepo) Create(_ context.Context, req *model.LeaveRequest) error {
	if req.LeaveRequestID == "" {
		m.nextLID++
		req.LeaveRequestID = fmt.Sprintf("leave-%d", m.nextLID)
	}
	m.requests[req.LeaveRequestID] = req
	return nil
}

// withEmployee 模拟 Preload("Employee")
func (m *mockLeaveRepo) withEmployee(req model.LeaveRequest) model.LeaveRequest {
	if u, ok := m.users.users[req.EmployeeID]; ok {
		req.Employee = u
	}
	return req
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (*model.LeaveRequest, error) {
	if r, ok := m.requests[id]; ok {
		loaded := m.withEmployee(*r)
		return &loaded, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) Update(_ context.Context, req *model.LeaveRequest) error {
	stored := *req
	stored.Employee = nil
	m.requests[req.LeaveRequestID] = &stored
	return nil
}

func (m *mockLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, r := range m.requests {
		if r.EmployeeID == employeeID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) ListByDepartment(_ context.Context, department string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, r := range m.requests {
		if u, ok := m.users.users[r.EmployeeID]; ok && u.Department == department {
			result = append(result, m.withEmployee(*r))
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) ListApprovedByDepartment(_ context.Context, department string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, r := range m.requests {
		if r.Status != model.LeaveStatusApproved {
			continue
		}
		if u, ok := m.users.users[r.EmployeeID]; ok && u.Department == department {
			result = append(result, m.withEmployee(*r))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}
