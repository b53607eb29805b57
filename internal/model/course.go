package model

// Course 课程目录表 — 对应 courses
type Course struct {
	BaseModel
	CourseID   string `gorm:"type:varchar(32);not null;uniqueIndex"       json:"course_id"`
	Name       string `gorm:"type:varchar(128);not null"                  json:"name"`
	Credits    int    `gorm:"not null;default:3"                          json:"credits"`
	CourseType string `gorm:"type:varchar(32);not null;default:'Lecture'" json:"course_type"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
