package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/roqaia-shehab/Is-roqia/internal/dto"
	"github.com/roqaia-shehab/Is-roqia/internal/service"
	"github.com/roqaia-shehab/Is-roqia/pkg/response"
)

// CatalogHandler 目录模块 Handler
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler 实例
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// GetSummary 数据集概要
// GET /api/v1/datasets/summary
func (h *CatalogHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"summary": summary})
}

// Reload 从 CSV 数据集重载目录表
// POST /api/v1/datasets/reload
func (h *CatalogHandler) Reload(c *gin.Context) {
	result, err := h.svc.Reload(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "Data reloaded successfully",
		"loaded":  result,
	})
}

// ListCourses 课程列表
// GET /api/v1/courses
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.svc.ListCourses(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"courses": courses})
}

// CreateCourse 新增课程
// POST /api/v1/courses
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course, err := h.svc.AddCourse(c.Request.Context(), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, gin.H{"course": course})
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:id
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	if err := h.svc.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Course deleted successfully"})
}

// ListInstructors 教师列表
// GET /api/v1/instructors
func (h *CatalogHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.svc.ListInstructors(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"instructors": instructors})
}

// ListRooms 教室列表
// GET /api/v1/rooms
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.ListRooms(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"rooms": rooms})
}

// ListTimeSlots 时间段列表
// GET /api/v1/time-slots
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.svc.ListTimeSlots(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, gin.H{"time_slots": slots})
}

// handleCatalogError 目录模块错误 → HTTP 状态映射
func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDatasetFile):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
