package timetable

import "errors"

// ── 会话存储业务错误 ──

var (
	// ErrNoTimetable 尚未载入任何课表
	ErrNoTimetable = errors.New("尚未载入课表")
	// ErrNotFound 指定的条目标识在当前课表中不存在
	ErrNotFound = errors.New("排课条目不存在")
)

// Timetable 一次生成结果：有序条目序列 + 生成器侧的只读元数据
type Timetable struct {
	Entries          []Entry `json:"schedule"`
	TotalCourses     int     `json:"total_courses"`
	ScheduledCourses int     `json:"scheduled_courses"`
	SuccessRate      float64 `json:"success_rate,omitempty"`
}

// Session 当前会话的排课状态，单一事实来源
//
// 设计说明：
//   - 同一时间最多持有一张激活课表，Load 是唯一的整表替换入口；
//   - 条目变更只通过编辑器（editor.go）落到 Replace；
//   - 不做任何缓存：分组/过滤均为按需只读投影，不随变更推送重算；
//   - 自身不加锁，并发保护由持有方负责（服务层单写者）。
type Session struct {
	current *Timetable
}

// NewSession 创建空会话
func NewSession() *Session {
	return &Session{}
}

// Load 整表替换当前课表，清除此前的全部会话状态
func (s *Session) Load(t *Timetable) {
	s.current = t
}

// Loaded 是否已载入课表
func (s *Session) Loaded() bool {
	return s.current != nil
}

// Current 当前课表（含元数据）；未载入时返回 ErrNoTimetable
func (s *Session) Current() (*Timetable, error) {
	if s.current == nil {
		return nil, ErrNoTimetable
	}
	return s.current, nil
}

// All 当前课表的活动条目序列
// 返回底层切片本身而非副本，调用方不得越过编辑器直接修改。
func (s *Session) All() []Entry {
	if s.current == nil {
		return nil
	}
	return s.current.Entries
}

// Resolve 按条目标识定位条目，返回其在序列中的下标
// 标识是条目在当前课表内唯一的外部句柄（身份解析的反向操作）。
func (s *Session) Resolve(id EntryID) (int, error) {
	if s.current == nil {
		return -1, ErrNoTimetable
	}
	for i := range s.current.Entries {
		if ComputeEntryID(&s.current.Entries[i]) == id {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Replace 按标识查找条目并以 patch 后的值整体覆盖，随后条目标识随
// 位置字段一起更新（由调用方在 patched 中重算）。
func (s *Session) Replace(id EntryID, patched Entry) error {
	idx, err := s.Resolve(id)
	if err != nil {
		return err
	}
	s.current.Entries[idx] = patched
	return nil
}
