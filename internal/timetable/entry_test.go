package timetable

import "testing"

// 构造测试条目的辅助函数
func makeEntry(courseID, sectionID, day, start, end, roomID, instructorID string) Entry {
	return Entry{
		CourseID:       courseID,
		CourseName:     "Course " + courseID,
		CourseType:     "Lecture",
		SectionID:      sectionID,
		Day:            day,
		StartTime:      start,
		EndTime:        end,
		RoomID:         roomID,
		RoomType:       "Lecture Hall",
		InstructorID:   instructorID,
		InstructorName: "Instructor " + instructorID,
	}
}

func TestComputeEntryID(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  EntryID
	}{
		{
			name:  "常规班次",
			entry: makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
			want:  "CS101-S1-Monday-900AM",
		},
		{
			name:  "缺省班次回退 S1",
			entry: makeEntry("CS101", "", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
			want:  "CS101-S1-Monday-900AM",
		},
		{
			name:  "实验班次",
			entry: makeEntry("PHY200", "LAB", "Tuesday", "2:15 PM", "3:45 PM", "L2", "I3"),
			want:  "PHY200-LAB-Tuesday-215PM",
		},
		{
			name:  "时间串去除全部冒号与空格",
			entry: makeEntry("MA150", "LECTURE", "Sunday", "10:45 AM", "12:15 PM", "R4", "I2"),
			want:  "MA150-LECTURE-Sunday-1045AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeEntryID(&tt.entry); got != tt.want {
				t.Errorf("ComputeEntryID = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

// 标识往返：对载入课表中的每个条目, Resolve(ComputeEntryID(e)) 必须
// 落回条目本身——这是整个核心最重要的往返性质。
func TestEntryIDRoundTrip(t *testing.T) {
	entries := []Entry{
		makeEntry("CS101", "S1", "Sunday", "9:00 AM", "10:30 AM", "R1", "I1"),
		makeEntry("CS101", "LAB", "Sunday", "10:45 AM", "12:15 PM", "L1", "I1"),
		makeEntry("CS101", "LECTURE", "Monday", "9:00 AM", "10:30 AM", "R2", "I1"),
		makeEntry("MA150", "", "Wednesday", "12:30 PM", "2:00 PM", "R3", "I2"),
		makeEntry("PHY200", "S1", "Thursday", "2:15 PM", "3:45 PM", "L2", "I3"),
	}

	s := NewSession()
	s.Load(&Timetable{Entries: entries})

	for i := range entries {
		id := ComputeEntryID(&entries[i])
		idx, err := s.Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%q) 失败: %v", id, err)
		}
		if idx != i {
			t.Errorf("Resolve(%q) = 下标 %d, 期望 %d", id, idx, i)
		}
	}
}

func TestSessionResolveErrors(t *testing.T) {
	s := NewSession()

	if _, err := s.Resolve("CS101-S1-Monday-900AM"); err != ErrNoTimetable {
		t.Errorf("未载入课表时 Resolve 期望 ErrNoTimetable, 实际 %v", err)
	}

	s.Load(&Timetable{Entries: []Entry{
		makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
	}})

	if _, err := s.Resolve("NOPE-S1-Monday-900AM"); err != ErrNotFound {
		t.Errorf("未知标识 Resolve 期望 ErrNotFound, 实际 %v", err)
	}
}

func TestSessionLoadReplacesWholesale(t *testing.T) {
	s := NewSession()
	s.Load(&Timetable{Entries: []Entry{
		makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1"),
	}})
	s.Load(&Timetable{Entries: []Entry{
		makeEntry("MA150", "S1", "Tuesday", "10:45 AM", "12:15 PM", "R2", "I2"),
	}})

	if len(s.All()) != 1 {
		t.Fatalf("整表替换后条目数期望 1, 实际 %d", len(s.All()))
	}
	if s.All()[0].CourseID != "MA150" {
		t.Errorf("整表替换后旧条目仍然可见: %+v", s.All()[0])
	}
	if _, err := s.Resolve("CS101-S1-Monday-900AM"); err != ErrNotFound {
		t.Errorf("旧课表条目标识期望失效, 实际 %v", err)
	}
}
