package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"staffhub/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoTasks      = errors.New("该部门暂无任务可导出")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTasks 将部门任务清单导出为 Excel
	ExportTasks(ctx context.Context, department string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportTasks 导出部门任务报表
// Sheet "任务清单"：标题 / 描述 / 状态 / 负责人 / 工号 / 创建时间
func (s *exportService) ExportTasks(ctx context.Context, department string) (*bytes.Buffer, string, error) {
	tasks, err := s.repo.Task.ListByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("查询部门任务失败", zap.Error(err))
		return nil, "", err
	}
	if len(tasks) == 0 {
		return nil, "", ErrExportNoTasks
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "任务清单"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	headers := []string{"标题", "描述", "状态", "负责人", "工号", "创建时间"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, task := range tasks {
		assignee, code := task.AssignedTo, ""
		if task.Assignee != nil {
			assignee = task.Assignee.Name
			code = task.Assignee.EmployeeCode
		}
		values := []interface{}{
			task.Title,
			task.Description,
			task.Status,
			assignee,
			code,
			task.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 缓冲失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("tasks_%s_%s.xlsx",
		strings.ReplaceAll(department, " ", "_"),
		time.Now().Format("20060102"),
	)
	return buf, filename, nil
}
