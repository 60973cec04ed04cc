package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/service"
	"staffhub/backend/pkg/response"
)

// TaskHandler 任务模块 HTTP 处理器
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler 创建 TaskHandler
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// List 任务列表：经理看部门全部任务，员工只看自己的
// GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	tasks, err := h.taskSvc.List(c.Request.Context(), claims)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"tasks": tasks})
}

// Assign 经理向本部门员工指派任务
// POST /tasks/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "标题、描述与被指派人不能为空")
		return
	}

	task, err := h.taskSvc.Assign(c.Request.Context(), claims, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAssignee) {
			response.BadRequest(c, "被指派员工无效")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"task": task})
}

// UpdateStatus 推进任务状态
// PATCH /tasks
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "任务 ID 与状态不能为空")
		return
	}

	task, err := h.taskSvc.UpdateStatus(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			response.NotFound(c, "任务不存在")
		case errors.Is(err, service.ErrTaskForbidden):
			response.Unauthorized(c, "无权操作该任务")
		case errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrBadTransition):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"task": task})
}
