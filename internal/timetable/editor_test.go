package timetable

import (
	"errors"
	"reflect"
	"testing"
)

func editorCatalogs() Catalogs {
	return Catalogs{
		Rooms: map[string]RoomRef{
			"R1": {RoomID: "R1", Type: "Lecture Hall", Capacity: 100},
			"R2": {RoomID: "R2", Type: "Lecture Hall", Capacity: 80},
			"R3": {RoomID: "R3", Type: "Lecture Hall", Capacity: 60},
			"L1": {RoomID: "L1", Type: "Lab", Capacity: 30},
		},
		Instructors: map[string]InstructorRef{
			"I1": {InstructorID: "I1", Name: "Dr. Ahmed", Role: "Professor"},
			"I2": {InstructorID: "I2", Name: "Dr. Sara", Role: "Lecturer"},
			"I3": {InstructorID: "I3", Name: "Dr. Omar", Role: "TA"},
		},
		Slots: map[string]SlotRef{},
	}
}

// 场景 A/B 的公共初始状态：周一 9:00 两条课, R1/I1 与 R2/I2
func editorSession() *Session {
	s := NewSession()
	s.Load(&Timetable{Entries: []Entry{
		makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
		makeEntry("MA150", "S1", "Monday", "9:00 AM", "10:30 AM", "R2", "I2"),
	}})
	return s
}

// 场景 A：把 R2/I2 条目移入 R1 → 教室冲突
func TestProposeEditRoomConflict(t *testing.T) {
	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	_, err := ProposeEdit(s, id, EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R1", InstructorID: "I2",
	}, editorCatalogs())

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 ConflictError, 实际 %v", err)
	}
	if conflict.Resource != ResourceRoom {
		t.Errorf("冲突资源期望 room, 实际 %s", conflict.Resource)
	}
	if conflict.ConflictingEntryID != "CS101-S1-Monday-900AM" {
		t.Errorf("冲突条目标识错误: %s", conflict.ConflictingEntryID)
	}
}

// 场景 B：改移 R3 → 成功, 投影显示周一 9:00 两条课 R1 与 R3
func TestProposeEditSuccess(t *testing.T) {
	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	updated, err := ProposeEdit(s, id, EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R3", InstructorID: "I2",
	}, editorCatalogs())
	if err != nil {
		t.Fatalf("ProposeEdit 失败: %v", err)
	}

	if updated.RoomID != "R3" || updated.RoomType != "Lecture Hall" {
		t.Errorf("教室字段未刷新: %+v", updated)
	}
	if updated.InstructorName != "Dr. Sara" {
		t.Errorf("教师姓名未从目录刷新: %s", updated.InstructorName)
	}

	groups := Project(s.All())
	if len(groups) != 1 || groups[0].Day != "Monday" {
		t.Fatalf("投影天数错误: %+v", groups)
	}
	slot := groups[0].Slots[0]
	if len(slot.Entries) != 2 {
		t.Fatalf("周一 9:00 期望 2 条, 实际 %d", len(slot.Entries))
	}
	rooms := []string{slot.Entries[0].Entry.RoomID, slot.Entries[1].Entry.RoomID}
	if rooms[0] != "R1" || rooms[1] != "R3" {
		t.Errorf("教室组合期望 [R1 R3], 实际 %v", rooms)
	}
}

func TestProposeEditInstructorConflict(t *testing.T) {
	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	// 教室不同但教师与 CS101 条目相同
	_, err := ProposeEdit(s, id, EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R3", InstructorID: "I1",
	}, editorCatalogs())

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 ConflictError, 实际 %v", err)
	}
	if conflict.Resource != ResourceInstructor {
		t.Errorf("冲突资源期望 instructor, 实际 %s", conflict.Resource)
	}
}

// 同一冲突条目同时命中教室与教师时, 按教室优先上报
func TestProposeEditRoomReportedFirst(t *testing.T) {
	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	_, err := ProposeEdit(s, id, EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R1", InstructorID: "I1",
	}, editorCatalogs())

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 ConflictError, 实际 %v", err)
	}
	if conflict.Resource != ResourceRoom {
		t.Errorf("教室教师双冲突期望上报 room, 实际 %s", conflict.Resource)
	}
}

// 错误路径原子性：任何失败都不得改动存储内容
func TestProposeEditAtomicOnError(t *testing.T) {
	cases := []struct {
		name string
		id   EntryID
		req  EditRequest
	}{
		{
			"冲突拒绝",
			"MA150-S1-Monday-900AM",
			EditRequest{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R1", InstructorID: "I2"},
		},
		{
			"条目不存在",
			"NOPE-S1-Monday-900AM",
			EditRequest{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R3", InstructorID: "I2"},
		},
		{
			"教室不存在",
			"MA150-S1-Monday-900AM",
			EditRequest{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R99", InstructorID: "I2"},
		},
		{
			"教师不存在",
			"MA150-S1-Monday-900AM",
			EditRequest{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R3", InstructorID: "I99"},
		},
		{
			"周天非法",
			"MA150-S1-Monday-900AM",
			EditRequest{Day: "Saturday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R3", InstructorID: "I2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := editorSession()
			before := make([]Entry, len(s.All()))
			copy(before, s.All())

			if _, err := ProposeEdit(s, tc.id, tc.req, editorCatalogs()); err == nil {
				t.Fatalf("期望错误, 实际成功")
			}
			if !reflect.DeepEqual(before, s.All()) {
				t.Errorf("错误路径修改了存储内容")
			}
		})
	}
}

func TestProposeEditInvalidReferenceKind(t *testing.T) {
	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	_, err := ProposeEdit(s, id, EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R99", InstructorID: "I2",
	}, editorCatalogs())
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("未知教室期望 ErrInvalidReference, 实际 %v", err)
	}

	_, err = ProposeEdit(s, "NOPE-S1-Monday-900AM", EditRequest{
		Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM",
		RoomID: "R3", InstructorID: "I2",
	}, editorCatalogs())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("未知条目期望 ErrNotFound, 实际 %v", err)
	}
}

func TestProposeEditSlotCatalogValidation(t *testing.T) {
	cat := editorCatalogs()
	cat.Slots = map[string]SlotRef{
		SlotKey("Monday", "9:00 AM"):  {Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM"},
		SlotKey("Tuesday", "2:15 PM"): {Day: "Tuesday", StartTime: "2:15 PM", EndTime: "3:45 PM"},
	}

	s := editorSession()
	id := ComputeEntryID(&s.All()[1])

	// 目录内时间段: 成功
	if _, err := ProposeEdit(s, id, EditRequest{
		Day: "Tuesday", StartTime: "2:15 PM", EndTime: "3:45 PM",
		RoomID: "R3", InstructorID: "I2",
	}, cat); err != nil {
		t.Fatalf("目录内时间段编辑失败: %v", err)
	}

	// 目录外时间段: 拒绝
	s2 := editorSession()
	id2 := ComputeEntryID(&s2.All()[1])
	_, err := ProposeEdit(s2, id2, EditRequest{
		Day: "Tuesday", StartTime: "4:00 PM", EndTime: "5:30 PM",
		RoomID: "R3", InstructorID: "I2",
	}, cat)
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("目录外时间段期望 ErrInvalidPlacement, 实际 %v", err)
	}
}

// 编辑成功后条目标识随位置重算, 新旧标识互换有效性
func TestProposeEditRecomputesEntryID(t *testing.T) {
	s := editorSession()
	oldID := ComputeEntryID(&s.All()[1])

	updated, err := ProposeEdit(s, oldID, EditRequest{
		Day: "Tuesday", StartTime: "2:15 PM", EndTime: "3:45 PM",
		RoomID: "R3", InstructorID: "I2",
	}, editorCatalogs())
	if err != nil {
		t.Fatalf("ProposeEdit 失败: %v", err)
	}

	newID := ComputeEntryID(updated)
	if newID != "MA150-S1-Tuesday-215PM" {
		t.Errorf("新标识错误: %s", newID)
	}
	if _, err := s.Resolve(oldID); err != ErrNotFound {
		t.Errorf("旧标识期望失效, 实际 %v", err)
	}
	if _, err := s.Resolve(newID); err != nil {
		t.Errorf("新标识解析失败: %v", err)
	}
}

// 不变式 I1/I2：任意成功编辑序列之后, 同 (day, start_time) 的两条
// 条目教室与教师都互不相同
func TestInvariantsAfterEditSequence(t *testing.T) {
	s := NewSession()
	s.Load(&Timetable{Entries: []Entry{
		makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
		makeEntry("MA150", "S1", "Monday", "9:00 AM", "10:30 AM", "R2", "I2"),
		makeEntry("PHY200", "S1", "Tuesday", "9:00 AM", "10:30 AM", "R1", "I1"),
		makeEntry("EN210", "S1", "Wednesday", "12:30 PM", "2:00 PM", "R3", "I3"),
	}})
	cat := editorCatalogs()

	edits := []struct {
		id  EntryID
		req EditRequest
	}{
		{"PHY200-S1-Tuesday-900AM", EditRequest{Day: "Monday", StartTime: "9:00 AM", EndTime: "10:30 AM", RoomID: "R3", InstructorID: "I3"}},
		{"EN210-S1-Wednesday-1230PM", EditRequest{Day: "Monday", StartTime: "10:45 AM", EndTime: "12:15 PM", RoomID: "R1", InstructorID: "I1"}},
		{"MA150-S1-Monday-900AM", EditRequest{Day: "Thursday", StartTime: "2:15 PM", EndTime: "3:45 PM", RoomID: "R2", InstructorID: "I2"}},
	}
	for _, e := range edits {
		if _, err := ProposeEdit(s, e.id, e.req, cat); err != nil {
			t.Fatalf("编辑 %s 失败: %v", e.id, err)
		}
	}

	entries := s.All()
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			a, b := &entries[i], &entries[j]
			if a.Day != b.Day || a.StartTime != b.StartTime {
				continue
			}
			if a.RoomID == b.RoomID {
				t.Errorf("I1 违反: %s 与 %s 同时段同教室 %s",
					ComputeEntryID(a), ComputeEntryID(b), a.RoomID)
			}
			if a.InstructorID == b.InstructorID {
				t.Errorf("I2 违反: %s 与 %s 同时段同教师 %s",
					ComputeEntryID(a), ComputeEntryID(b), a.InstructorID)
			}
		}
	}
}
