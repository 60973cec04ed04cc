package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/backend/internal/dto"
	"staffhub/backend/internal/service"
	"staffhub/backend/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// ListOwn 员工查看自己的请假历史
// GET /leave-requests
func (h *LeaveHandler) ListOwn(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	reqs, err := h.leaveSvc.ListOwn(c.Request.Context(), claims.UserID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"leaveRequests": reqs})
}

// Submit 提交请假申请
// POST /leave-requests
func (h *LeaveHandler) Submit(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "事由与起止日期不能为空")
		return
	}

	leave, err := h.leaveSvc.Submit(c.Request.Context(), claims, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDates) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"leaveRequest": leave})
}

// ListDepartment 经理查看本部门员工的请假申请
// GET /leave-requests/manage
func (h *LeaveHandler) ListDepartment(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	reqs, err := h.leaveSvc.ListDepartment(c.Request.Context(), claims.Department)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"leaveRequests": reqs})
}

// Review 经理审批请假申请
// PATCH /leave-requests/manage
func (h *LeaveHandler) Review(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "申请 ID 与审批结果不能为空")
		return
	}

	leave, err := h.leaveSvc.Review(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, "请假申请不存在")
		case errors.Is(err, service.ErrLeaveForbidden):
			response.Unauthorized(c, "无权审批该请假申请")
		case errors.Is(err, service.ErrAlreadyReviewed),
			errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"leaveRequest": leave})
}

// Calendar 导出本部门已批准请假的 iCalendar
// GET /leave-requests/calendar
func (h *LeaveHandler) Calendar(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	content, err := h.leaveSvc.BuildCalendar(c.Request.Context(), claims.Department)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leave-calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
