package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/backend/internal/service"
	"staffhub/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTasks 导出本部门任务报表为 Excel
// GET /export/tasks
func (h *ExportHandler) ExportTasks(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportTasks(c.Request.Context(), claims.Department)
	if err != nil {
		if errors.Is(err, service.ErrExportNoTasks) {
			response.NotFound(c, "该部门暂无任务可导出")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}
