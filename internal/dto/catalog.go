package dto

// ── 目录模块 DTO ──

// CreateCourseRequest 新增课程请求
type CreateCourseRequest struct {
	CourseID   string `json:"course_id"   binding:"required,min=2,max=32"`
	Name       string `json:"name"        binding:"required,min=2,max=128"`
	Credits    int    `json:"credits"     binding:"omitempty,min=1,max=10"`
	CourseType string `json:"course_type" binding:"omitempty,max=32"`
}

// DatasetSummaryResponse 数据集概要响应
type DatasetSummaryResponse struct {
	Courses     int64 `json:"courses"`
	Instructors int64 `json:"instructors"`
	Rooms       int64 `json:"rooms"`
	TimeSlots   int64 `json:"time_slots"`
}

// ReloadResultResponse 数据集重载结果响应
type ReloadResultResponse struct {
	Courses     int `json:"courses"`
	Instructors int `json:"instructors"`
	Rooms       int `json:"rooms"`
	TimeSlots   int `json:"time_slots"`
}
