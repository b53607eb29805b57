package model

// Room 教室目录表 — 对应 rooms
type Room struct {
	BaseModel
	RoomID   string `gorm:"type:varchar(32);not null;uniqueIndex"       json:"room_id"`
	RoomType string `gorm:"type:varchar(32);not null;default:'Lecture'" json:"room_type"`
	Capacity int    `gorm:"not null;default:0"                          json:"capacity"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }
