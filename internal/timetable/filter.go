package timetable

import "strings"

// ── 过滤条件 ──

// FilterAll day / kind 条件的"不限"取值
const FilterAll = "all"

// Criteria 过滤条件：三个谓词取 AND
type Criteria struct {
	Day  string // 周天精确匹配；"all" 跳过
	Kind string // "lab" | "lecture"；"all" 跳过
	Text string // 不区分大小写的子串搜索；空串跳过
}

// Filter 按条件过滤条目序列
//
// 纯函数：不修改输入，不改变存活条目的相对顺序，不产生重复；
// 相同条件重复应用结果不变。过滤结果通常再经 Project 投影后展示。
func Filter(entries []Entry, c Criteria) []Entry {
	needle := strings.ToLower(c.Text)

	result := make([]Entry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if c.Day != "" && c.Day != FilterAll && e.Day != c.Day {
			continue
		}
		if c.Kind != "" && c.Kind != FilterAll && !matchesKindFilter(e, c.Kind) {
			continue
		}
		if needle != "" && !matchesText(e, needle) {
			continue
		}
		result = append(result, *e)
	}
	return result
}

// matchesKindFilter 过滤器的课次判定：course_type 是否包含 "lab"
// （不区分大小写）。
//
// 与投影的 resolveSessionKind 判定来源字段、大小写语义均不同：
// 前者看 section_id 优先、区分大小写；此处只看 course_type 且忽略
// 大小写。对非常规 section_id 的条目两者可能得出不同结论，
// 为保持既有行为两套判定各自独立保留。
func matchesKindFilter(e *Entry, kind string) bool {
	isLab := strings.Contains(strings.ToLower(e.CourseType), "lab")
	if kind == string(KindLab) {
		return isLab
	}
	return !isLab
}

// matchesText 在 课程号+课程名+教师名+教室号 拼接串上做
// 不区分大小写的子串匹配
func matchesText(e *Entry, needle string) bool {
	haystack := strings.ToLower(e.CourseID) +
		strings.ToLower(e.CourseName) +
		strings.ToLower(e.InstructorName) +
		strings.ToLower(e.RoomID)
	return strings.Contains(haystack, needle)
}
