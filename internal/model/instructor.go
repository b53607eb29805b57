package model

// Instructor 教师目录表 — 对应 instructors
type Instructor struct {
	BaseModel
	InstructorID     string      `gorm:"type:varchar(32);not null;uniqueIndex"         json:"instructor_id"`
	Name             string      `gorm:"type:varchar(128);not null"                    json:"name"`
	Role             string      `gorm:"type:varchar(32);not null;default:'Professor'" json:"role"`
	UnavailableDay   string      `gorm:"type:varchar(16);not null;default:''"          json:"unavailable_day"`
	QualifiedCourses StringArray `gorm:"type:text[];not null;default:'{}'"             json:"qualified_courses"`
}

// TableName 指定表名
func (Instructor) TableName() string { return "instructors" }
