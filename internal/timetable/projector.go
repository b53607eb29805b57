package timetable

import (
	"sort"
	"strings"
)

// ── 会话类型 ──

// SessionKind 条目派生的课次类型（理论课 / 实验课）
type SessionKind string

const (
	KindLecture SessionKind = "lecture"
	KindLab     SessionKind = "lab"
)

// DisplayType 条目类型的展示文案
// 拆分课程的班次标识优先于课程类型字段。
func DisplayType(e *Entry) string {
	switch e.SectionID {
	case SectionLab:
		return "Lab Session"
	case SectionLecture:
		return "Lecture Session"
	}
	return e.CourseType
}

// resolveSessionKind 三级判定条目课次类型：
//  1. section_id 为 LAB → 实验课
//  2. section_id 为 LECTURE → 理论课
//  3. 其余按 course_type 是否包含 "Lab"（区分大小写）推断，默认理论课
//
// 注意：过滤器的课次判定（matchesKindFilter）取不同字段、不同大小写
// 语义，两者独立维护，不得合并。
func resolveSessionKind(e *Entry) SessionKind {
	switch e.SectionID {
	case SectionLab:
		return KindLab
	case SectionLecture:
		return KindLecture
	}
	if strings.Contains(e.CourseType, "Lab") {
		return KindLab
	}
	return KindLecture
}

// ── 分组投影 ──

// ProjectedEntry 投影内的单条目：条目本身 + 派生课次信息
type ProjectedEntry struct {
	Entry       Entry       `json:"entry"`
	EntryID     EntryID     `json:"entry_id"`
	Kind        SessionKind `json:"kind"`
	DisplayType string      `json:"display_type"`
}

// SlotGroup 某一时间段标签下的条目序列（保持输入顺序）
type SlotGroup struct {
	Label   string           `json:"label"` // "<start> - <end>"
	Entries []ProjectedEntry `json:"entries"`
}

// DayGroup 某一天的时间段分组
type DayGroup struct {
	Day   string      `json:"day"`
	Count int         `json:"count"` // 当天条目总数
	Slots []SlotGroup `json:"slots"`
}

// Project 将条目序列投影为 天 → 时间段 → 条目 的有序结构
//
// 规则：
//   - 天按 Days 规范顺序输出，无条目的天整体省略；
//   - 天内时间段标签按 slotRank 权重排序，表外开课时间排最后，
//     彼此保持出现顺序（稳定排序保证）；
//   - 时间段内条目保持输入顺序，不做隐式排序。
//
// 投影每次调用都重新计算，绝不跨编辑缓存，因此不会出现陈旧视图。
func Project(entries []Entry) []DayGroup {
	type slotBucket struct {
		label   string
		start   string
		order   int // 同权重（表外）标签的出现序
		entries []ProjectedEntry
	}

	// 按天收集时间段桶
	dayBuckets := make(map[string][]*slotBucket, len(Days))
	for i := range entries {
		e := &entries[i]
		label := e.SlotLabel()

		buckets := dayBuckets[e.Day]
		var bucket *slotBucket
		for _, b := range buckets {
			if b.label == label {
				bucket = b
				break
			}
		}
		if bucket == nil {
			bucket = &slotBucket{label: label, start: e.StartTime, order: len(buckets)}
			dayBuckets[e.Day] = append(buckets, bucket)
		}

		bucket.entries = append(bucket.entries, ProjectedEntry{
			Entry:       *e,
			EntryID:     ComputeEntryID(e),
			Kind:        resolveSessionKind(e),
			DisplayType: DisplayType(e),
		})
	}

	// 按规范天序输出
	result := make([]DayGroup, 0, len(dayBuckets))
	for _, day := range Days {
		buckets, ok := dayBuckets[day]
		if !ok {
			continue
		}

		sort.SliceStable(buckets, func(i, j int) bool {
			return slotRankOf(buckets[i].start) < slotRankOf(buckets[j].start)
		})

		group := DayGroup{Day: day, Slots: make([]SlotGroup, 0, len(buckets))}
		for _, b := range buckets {
			group.Count += len(b.entries)
			group.Slots = append(group.Slots, SlotGroup{Label: b.label, Entries: b.entries})
		}
		result = append(result, group)
	}
	return result
}

// slotRankOf 查时间排序权重，表外时间取 unrankedSlot
func slotRankOf(start string) int {
	if r, ok := slotRank[start]; ok {
		return r
	}
	return unrankedSlot
}
