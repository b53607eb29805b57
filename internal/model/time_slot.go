package model

// TimeSlot 时间段目录表 — 对应 time_slots
// (day, start_time) 唯一，作为课表格位的合法性来源
type TimeSlot struct {
	BaseModel
	Day       string `gorm:"type:varchar(16);not null;uniqueIndex:uq_slot_day_start" json:"day"`
	StartTime string `gorm:"type:varchar(16);not null;uniqueIndex:uq_slot_day_start" json:"start_time"`
	EndTime   string `gorm:"type:varchar(16);not null"                               json:"end_time"`
}

// TableName 指定表名
func (TimeSlot) TableName() string { return "time_slots" }
