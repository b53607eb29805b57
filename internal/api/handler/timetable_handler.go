package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roqaia-shehab/Is-roqia/internal/dto"
	"github.com/roqaia-shehab/Is-roqia/internal/service"
	"github.com/roqaia-shehab/Is-roqia/internal/timetable"
	"github.com/roqaia-shehab/Is-roqia/pkg/response"
)

// TimetableHandler 课表模块 Handler
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler 实例
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// LoadTimetable 载入生成结果，整表替换当前课表
// POST /api/v1/timetables/current
func (h *TimetableHandler) LoadTimetable(c *gin.Context) {
	var req dto.LoadTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Load(c.Request.Context(), &req)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.Created(c, gin.H{"timetable": result})
}

// GetTimetable 当前课表
// GET /api/v1/timetables/current
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	result, err := h.svc.Current(c.Request.Context())
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, gin.H{"timetable": result})
}

// GetProjection 过滤后按 周天 → 时间段 分组的课表视图
// GET /api/v1/timetables/projection?day=&kind=&q=
func (h *TimetableHandler) GetProjection(c *gin.Context) {
	var q dto.ProjectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.svc.Projection(c.Request.Context(), &q)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, gin.H{
		"days":    view.Days,
		"showing": view.Showing,
		"total":   view.Total,
		"summary": view.Summary,
	})
}

// UpdateEntry 冲突校验后的单条目调整
// PUT /api/v1/timetables/entries/:id
func (h *TimetableHandler) UpdateEntry(c *gin.Context) {
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.UpdateEntry(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, gin.H{
		"entry":    updated,
		"entry_id": timetable.ComputeEntryID(updated),
	})
}

// GetStatistics 当前课表统计
// GET /api/v1/statistics
func (h *TimetableHandler) GetStatistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context())
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, gin.H{"statistics": stats})
}

// handleTimetableError 课表模块错误 → HTTP 状态映射
// 冲突响应附带冲突条目信息，供前端提示操作员
func handleTimetableError(c *gin.Context, err error) {
	var conflict *timetable.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"success":              false,
			"error":                conflict.Error(),
			"conflict_resource":    conflict.Resource,
			"conflicting_entry_id": conflict.ConflictingEntryID,
		})
	case errors.Is(err, timetable.ErrNoTimetable):
		response.NotFound(c, err.Error())
	case errors.Is(err, timetable.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, timetable.ErrInvalidReference):
		response.BadRequest(c, err.Error())
	case errors.Is(err, timetable.ErrInvalidPlacement):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
