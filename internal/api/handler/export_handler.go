package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roqaia-shehab/Is-roqia/internal/service"
	"github.com/roqaia-shehab/Is-roqia/internal/timetable"
	"github.com/roqaia-shehab/Is-roqia/pkg/response"
)

// ExportHandler 导出模块 Handler
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportCSV 导出当前课表为 CSV
// GET /api/v1/timetables/export/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	h.serve(c, h.svc.ExportCSV, "text/csv")
}

// ExportJSON 导出当前课表为 JSON
// GET /api/v1/timetables/export/json
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	h.serve(c, h.svc.ExportJSON, "application/json")
}

// ExportXLSX 导出当前课表为 Excel
// GET /api/v1/timetables/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.serve(c, h.svc.ExportXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportICS 导出当前课表为 iCalendar
// GET /api/v1/timetables/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	h.serve(c, h.svc.ExportICS, "text/calendar")
}

func (h *ExportHandler) serve(c *gin.Context, export func(context.Context) (*bytes.Buffer, string, error), contentType string) {
	buf, filename, err := export(c.Request.Context())
	if err != nil {
		handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// handleExportError 导出模块错误 → HTTP 状态映射
func handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timetable.ErrNoTimetable):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrExportEmpty):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
