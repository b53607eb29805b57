package dto

import "github.com/roqaia-shehab/Is-roqia/internal/timetable"

// ── 课表模块 DTO ──

// LoadTimetableRequest 载入课表请求（生成结果整表替换当前会话）
type LoadTimetableRequest struct {
	Schedule         []timetable.Entry `json:"schedule"          binding:"required"`
	TotalCourses     int               `json:"total_courses"     binding:"omitempty,min=0"`
	ScheduledCourses int               `json:"scheduled_courses" binding:"omitempty,min=0"`
	SuccessRate      float64           `json:"success_rate"      binding:"omitempty,min=0,max=100"`
}

// UpdateEntryRequest 调整课表条目请求
type UpdateEntryRequest struct {
	Day          string `json:"day"           binding:"required"`
	StartTime    string `json:"start_time"    binding:"required"`
	EndTime      string `json:"end_time"      binding:"omitempty"`
	RoomID       string `json:"room_id"       binding:"required"`
	InstructorID string `json:"instructor_id" binding:"required"`
}

// ProjectionQuery 课表投影查询参数
type ProjectionQuery struct {
	Day  string `form:"day"`
	Kind string `form:"kind"`
	Q    string `form:"q"`
}

// ── 响应 ──

// ProjectionResponse 按天/时段分组的课表视图响应
type ProjectionResponse struct {
	Days    []timetable.DayGroup `json:"days"`
	Showing int                  `json:"showing"`
	Total   int                  `json:"total"`
	Summary string               `json:"summary"`
}

// TimetableResponse 当前课表响应
type TimetableResponse struct {
	Schedule         []timetable.Entry `json:"schedule"`
	TotalCourses     int               `json:"total_courses"`
	ScheduledCourses int               `json:"scheduled_courses"`
	SuccessRate      float64           `json:"success_rate"`
}

// StatisticsResponse 课表统计响应
type StatisticsResponse struct {
	TotalEntries       int            `json:"total_entries"`
	TotalCourses       int            `json:"total_courses"`
	ScheduledCourses   int            `json:"scheduled_courses"`
	SuccessRate        float64        `json:"success_rate"`
	DayDistribution    map[string]int `json:"day_distribution"`
	InstructorWorkload map[string]int `json:"instructor_workload"`
	RoomUtilization    map[string]int `json:"room_utilization"`
	TimeslotUsage      map[string]int `json:"timeslot_usage"`
}
