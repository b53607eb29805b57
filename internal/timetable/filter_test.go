package timetable

import (
	"reflect"
	"testing"
)

func filterFixture() []Entry {
	lec1 := makeEntry("CS101", "S1", "Monday", "9:00 AM", "10:30 AM", "R1", "I1")
	lec2 := makeEntry("MA150", "S1", "Tuesday", "10:45 AM", "12:15 PM", "R2", "I2")
	lec3 := makeEntry("EN210", "S1", "Wednesday", "12:30 PM", "2:00 PM", "Room3", "I3")
	lab1 := makeEntry("PHY200", "S1", "Monday", "2:15 PM", "3:45 PM", "L1", "I4")
	lab1.CourseType = "Lab"
	lab2 := makeEntry("CH110", "S1", "Thursday", "9:00 AM", "10:30 AM", "L2", "I5")
	lab2.CourseType = "Science Lab"
	return []Entry{lec1, lab1, lec2, lab2, lec3}
}

// 场景 C：3 理论 + 2 实验, kind=lab 恰好返回 2 条实验, 顺序保持
func TestFilterKindLab(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Day: FilterAll, Kind: "lab", Text: ""})

	if len(got) != 2 {
		t.Fatalf("期望 2 条实验课, 实际 %d", len(got))
	}
	if got[0].CourseID != "PHY200" || got[1].CourseID != "CH110" {
		t.Errorf("实验课顺序错误: %s, %s", got[0].CourseID, got[1].CourseID)
	}
}

func TestFilterKindLecture(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Day: FilterAll, Kind: "lecture", Text: ""})

	want := []string{"CS101", "MA150", "EN210"}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 条理论课, 实际 %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].CourseID != id {
			t.Errorf("第 %d 条期望 %s, 实际 %s", i, id, got[i].CourseID)
		}
	}
}

func TestFilterDay(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Day: "Monday", Kind: FilterAll})
	if len(got) != 2 {
		t.Fatalf("Monday 期望 2 条, 实际 %d", len(got))
	}
	for _, e := range got {
		if e.Day != "Monday" {
			t.Errorf("混入非 Monday 条目: %+v", e)
		}
	}
}

// 场景 D：文本 "room3" 不区分大小写命中 room_id "Room3", 其余排除
func TestFilterTextCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Day: FilterAll, Kind: FilterAll, Text: "room3"})

	if len(got) != 1 {
		t.Fatalf("期望恰好 1 条命中, 实际 %d", len(got))
	}
	if got[0].RoomID != "Room3" {
		t.Errorf("命中条目错误: %+v", got[0])
	}
}

func TestFilterConjunctive(t *testing.T) {
	got := Filter(filterFixture(), Criteria{Day: "Monday", Kind: "lab", Text: "phy"})
	if len(got) != 1 || got[0].CourseID != "PHY200" {
		t.Fatalf("三条件合取结果错误: %+v", got)
	}

	// 任一条件不满足即排除
	got = Filter(filterFixture(), Criteria{Day: "Tuesday", Kind: "lab", Text: "phy"})
	if len(got) != 0 {
		t.Errorf("期望空结果, 实际 %d 条", len(got))
	}
}

// 过滤器是纯函数：两次应用与一次等价, 且不修改输入
func TestFilterIdempotentAndPure(t *testing.T) {
	entries := filterFixture()
	snapshot := make([]Entry, len(entries))
	copy(snapshot, entries)

	c := Criteria{Day: FilterAll, Kind: "lab", Text: ""}
	once := Filter(entries, c)
	twice := Filter(once, c)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("重复应用结果不一致:\n一次 %+v\n两次 %+v", once, twice)
	}
	if !reflect.DeepEqual(entries, snapshot) {
		t.Errorf("过滤修改了输入序列")
	}
}

func TestFilterBypassValues(t *testing.T) {
	entries := filterFixture()

	got := Filter(entries, Criteria{Day: FilterAll, Kind: FilterAll, Text: ""})
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("全部旁路时应返回等值序列")
	}

	// 零值条件同样全部旁路
	got = Filter(entries, Criteria{})
	if len(got) != len(entries) {
		t.Errorf("零值条件期望 %d 条, 实际 %d", len(entries), len(got))
	}
}

// 两套课次判定的已知分歧：section_id 为 LAB 但 course_type 不含
// "lab" 的条目, 投影判为实验课而过滤器判为理论课。此行为与既有
// 系统一致, 此测试钉住分歧以防误合并。
func TestKindHeuristicsDivergence(t *testing.T) {
	e := makeEntry("CS101", "LAB", "Monday", "9:00 AM", "10:30 AM", "L1", "I1")
	e.CourseType = "Lecture and Lab" // 含 "Lab": 两者一致

	if resolveSessionKind(&e) != KindLab {
		t.Errorf("投影判定期望 lab")
	}
	if !matchesKindFilter(&e, "lab") {
		t.Errorf("过滤判定期望 lab")
	}

	e.CourseType = "Practical" // 不含 "lab": 两者分歧
	if resolveSessionKind(&e) != KindLab {
		t.Errorf("section_id=LAB 时投影判定仍应为 lab")
	}
	if matchesKindFilter(&e, "lab") {
		t.Errorf("course_type 不含 lab 时过滤判定应为 lecture")
	}
}
