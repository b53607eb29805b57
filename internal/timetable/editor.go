package timetable

import (
	"errors"
	"fmt"
)

// ── 编辑器业务错误 ──

var (
	// ErrInvalidReference 教室或教师标识不在目录中
	ErrInvalidReference = errors.New("教室或教师不存在")
	// ErrInvalidPlacement 周天或时间段取值不在枚举内
	ErrInvalidPlacement = errors.New("周天或时间段取值非法")
)

// ConflictResource 冲突资源类型
type ConflictResource string

const (
	ResourceRoom       ConflictResource = "room"
	ResourceInstructor ConflictResource = "instructor"
)

// ConflictError 提议的位置与已有条目发生教室或教师占用冲突
// 携带冲突条目的标识与资源归属，供调用方提示操作员手工修正。
type ConflictError struct {
	Resource           ConflictResource
	ConflictingEntryID EntryID
	RoomID             string
	InstructorID       string
}

func (e *ConflictError) Error() string {
	if e.Resource == ResourceRoom {
		return fmt.Sprintf("教室 %s 在该时段已被占用（冲突条目 %s）", e.RoomID, e.ConflictingEntryID)
	}
	return fmt.Sprintf("教师 %s 在该时段已有排课（冲突条目 %s）", e.InstructorID, e.ConflictingEntryID)
}

// ── 只读目录引用 ──

// RoomRef 教室目录条目（外部只读参照数据）
type RoomRef struct {
	RoomID   string
	Type     string
	Capacity int
}

// InstructorRef 教师目录条目（外部只读参照数据）
type InstructorRef struct {
	InstructorID     string
	Name             string
	Role             string
	UnavailableDay   string
	QualifiedCourses []string
}

// SlotRef 时间段目录条目
type SlotRef struct {
	Day       string
	StartTime string
	EndTime   string
}

// SlotKey 时间段目录键（与生成器侧 slot id 同构: day_start）
func SlotKey(day, startTime string) string {
	return day + "_" + startTime
}

// Catalogs 编辑时查询的只读目录集合
// Slots 为空表示不校验时间段枚举（仅校验周天）。
type Catalogs struct {
	Rooms       map[string]RoomRef
	Instructors map[string]InstructorRef
	Slots       map[string]SlotRef
}

// EditRequest 单条目迁移提议：新的 (周天, 时间段, 教室, 教师)
type EditRequest struct {
	Day          string
	StartTime    string
	EndTime      string
	RoomID       string
	InstructorID string
}

// ProposeEdit 冲突校验后的单条目编辑
//
// 流程：
//  1. 按标识解析目标条目，不存在返回 ErrNotFound；
//  2. 校验位置取值（周天枚举、时间段目录）与教室/教师目录引用；
//  3. 单趟扫描其余条目（按标识排除目标自身——位置字段即将变更，
//     不能按值比较）：同 (周天, 开始时间) 且教室或教师相同即冲突。
//     教室冲突与教师冲突任一命中都足以拒绝；同一冲突条目两者皆命中
//     时按 教室优先 上报；
//  4. 有冲突返回 ConflictError，不发生任何写入；
//  5. 无冲突则落位置补丁，从目录刷新教师姓名与教室类型/容量，
//     重算条目标识后返回更新后的条目。
//
// 单写者、单条目操作：不会尝试移动多个条目，也不搜索替代落点；
// 拒绝即终态，由操作员另行修正。错误路径上存储保持逐字节不变。
func ProposeEdit(s *Session, id EntryID, req EditRequest, cat Catalogs) (*Entry, error) {
	// 1. 解析目标
	idx, err := s.Resolve(id)
	if err != nil {
		return nil, err
	}

	// 2. 位置与目录引用校验
	if !ValidDay(req.Day) {
		return nil, fmt.Errorf("%w: day=%q", ErrInvalidPlacement, req.Day)
	}
	if len(cat.Slots) > 0 {
		slot, ok := cat.Slots[SlotKey(req.Day, req.StartTime)]
		if !ok || slot.EndTime != req.EndTime {
			return nil, fmt.Errorf("%w: %s %s - %s", ErrInvalidPlacement, req.Day, req.StartTime, req.EndTime)
		}
	}
	room, ok := cat.Rooms[req.RoomID]
	if !ok {
		return nil, fmt.Errorf("%w: room_id=%q", ErrInvalidReference, req.RoomID)
	}
	instructor, ok := cat.Instructors[req.InstructorID]
	if !ok {
		return nil, fmt.Errorf("%w: instructor_id=%q", ErrInvalidReference, req.InstructorID)
	}

	// 3. 单趟冲突扫描
	entries := s.All()
	for i := range entries {
		if i == idx {
			continue
		}
		other := &entries[i]
		if other.Day != req.Day || other.StartTime != req.StartTime {
			continue
		}
		if other.RoomID == req.RoomID {
			return nil, &ConflictError{
				Resource:           ResourceRoom,
				ConflictingEntryID: ComputeEntryID(other),
				RoomID:             req.RoomID,
				InstructorID:       req.InstructorID,
			}
		}
		if other.InstructorID == req.InstructorID {
			return nil, &ConflictError{
				Resource:           ResourceInstructor,
				ConflictingEntryID: ComputeEntryID(other),
				RoomID:             req.RoomID,
				InstructorID:       req.InstructorID,
			}
		}
	}

	// 4/5. 落补丁并刷新目录派生字段
	patched := entries[idx]
	patched.Day = req.Day
	patched.StartTime = req.StartTime
	patched.EndTime = req.EndTime
	patched.RoomID = req.RoomID
	patched.RoomType = room.Type
	patched.RoomCapacity = room.Capacity
	patched.InstructorID = req.InstructorID
	patched.InstructorName = instructor.Name
	patched.InstructorRole = instructor.Role

	if err := s.Replace(id, patched); err != nil {
		return nil, err
	}

	updated := &s.All()[idx]
	return updated, nil
}
