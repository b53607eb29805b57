package timetable

import "strings"

// ── 周天与时间段枚举 ──
//
// 教学周为周日至周四；每天四个固定开课时间。
// 排课结果中的 day / start_time 只允许取自这两个枚举。

// Days 周天的规范顺序（分组投影按此顺序输出）
var Days = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

// slotRank 开课时间排序权重表
// 分组投影内的时间段按该表排序，而非字典序或时刻序；
// 表外的开课时间一律排在最后，彼此之间保持出现顺序。
var slotRank = map[string]int{
	"9:00 AM":  1,
	"10:45 AM": 2,
	"12:30 PM": 3,
	"2:15 PM":  4,
}

// unrankedSlot 表外时间的排序权重（恒排最后）
const unrankedSlot = 999

// ── 班次标识 ──

const (
	// SectionDefault 未拆分课程的默认班次标识
	SectionDefault = "S1"
	// SectionLecture "理论+实验" 拆分课程的理论班次标识
	SectionLecture = "LECTURE"
	// SectionLab "理论+实验" 拆分课程的实验班次标识
	SectionLab = "LAB"
)

// EntryID 排课条目的确定性标识
// 只能由 ComputeEntryID 生成；比较使用结构相等，不做字符串反解析。
type EntryID string

// Entry 一条排课结果：某课程班次在 (周天, 时间段, 教室, 教师) 上的一次指派
//
// 身份字段（CourseID/SectionID/CourseName/CourseType/InstructorName 为展示）
// 在创建后不变；位置字段（Day/StartTime/EndTime/RoomID/RoomType/InstructorID）
// 仅允许经编辑器修改，修改后必须重算 EntryID。
type Entry struct {
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	CourseType     string `json:"course_type"`
	SectionID      string `json:"section_id"`
	Day            string `json:"day"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RoomID         string `json:"room_id"`
	RoomType       string `json:"room_type"`
	RoomCapacity   int    `json:"room_capacity,omitempty"`
	InstructorID   string `json:"instructor_id"`
	InstructorName string `json:"instructor_name"`
	InstructorRole string `json:"instructor_role,omitempty"`
}

// timeStripper 去除时间串中的冒号与空格（"9:00 AM" → "900AM"）
var timeStripper = strings.NewReplacer(":", "", " ", "")

// ComputeEntryID 由不可变身份字段与当前位置派生条目标识
//
// 组成: course_id-section_id-day-start_time，其中 section_id 缺省取
// SectionDefault，start_time 去除所有冒号和空格。在有限的
// 周天 × 时间段 × 课程班次 组合空间内无碰撞。
func ComputeEntryID(e *Entry) EntryID {
	section := e.SectionID
	if section == "" {
		section = SectionDefault
	}
	return EntryID(e.CourseID + "-" + section + "-" + e.Day + "-" + timeStripper.Replace(e.StartTime))
}

// SlotLabel 时间段展示标签（"9:00 AM - 10:30 AM"）
func (e *Entry) SlotLabel() string {
	return e.StartTime + " - " + e.EndTime
}

// ValidDay 判断 day 是否属于规范周天枚举
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
