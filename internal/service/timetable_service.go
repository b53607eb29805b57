package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/roqaia-shehab/Is-roqia/internal/dto"
	"github.com/roqaia-shehab/Is-roqia/internal/repository"
	"github.com/roqaia-shehab/Is-roqia/internal/timetable"
)

// TimetableService 课表会话业务接口
//
// 设计说明：
//   - 当前课表只存内存，生成结果通过 Load 整表载入，重启即清空；
//   - 核心存储（timetable.Session）本身不加锁，并发保护集中在本层：
//     读操作共享锁，Load/UpdateEntry 独占锁，保证编辑的原子可见性；
//   - 编辑所需的教室/教师/时间段目录在每次编辑时从数据库取快照，
//     避免在核心层引入数据访问依赖。
type TimetableService interface {
	// Load 载入一次生成结果，整表替换当前课表
	Load(ctx context.Context, req *dto.LoadTimetableRequest) (*dto.TimetableResponse, error)
	// Current 当前课表（含生成器侧元数据）
	Current(ctx context.Context) (*dto.TimetableResponse, error)
	// Projection 过滤后按 周天 → 时间段 分组的课表视图
	Projection(ctx context.Context, q *dto.ProjectionQuery) (*dto.ProjectionResponse, error)
	// UpdateEntry 冲突校验后的单条目调整
	UpdateEntry(ctx context.Context, id string, req *dto.UpdateEntryRequest) (*timetable.Entry, error)
	// Statistics 当前课表的分布统计
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

type timetableService struct {
	mu      sync.RWMutex
	session *timetable.Session
	repo    *repository.Repository
	logger  *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{
		session: timetable.NewSession(),
		repo:    repo,
		logger:  logger,
	}
}

func (s *timetableService) Load(ctx context.Context, req *dto.LoadTimetableRequest) (*dto.TimetableResponse, error) {
	t := &timetable.Timetable{
		Entries:          req.Schedule,
		TotalCourses:     req.TotalCourses,
		ScheduledCourses: req.ScheduledCourses,
		SuccessRate:      req.SuccessRate,
	}

	s.mu.Lock()
	s.session.Load(t)
	s.mu.Unlock()

	s.logger.Info("课表已载入",
		zap.Int("entries", len(t.Entries)),
		zap.Float64("success_rate", t.SuccessRate),
	)

	return &dto.TimetableResponse{
		Schedule:         t.Entries,
		TotalCourses:     t.TotalCourses,
		ScheduledCourses: t.ScheduledCourses,
		SuccessRate:      t.SuccessRate,
	}, nil
}

func (s *timetableService) Current(ctx context.Context) (*dto.TimetableResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.session.Current()
	if err != nil {
		return nil, err
	}
	return &dto.TimetableResponse{
		Schedule:         t.Entries,
		TotalCourses:     t.TotalCourses,
		ScheduledCourses: t.ScheduledCourses,
		SuccessRate:      t.SuccessRate,
	}, nil
}

func (s *timetableService) Projection(ctx context.Context, q *dto.ProjectionQuery) (*dto.ProjectionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.Loaded() {
		return nil, timetable.ErrNoTimetable
	}

	all := s.session.All()
	filtered := timetable.Filter(all, timetable.Criteria{
		Day:  q.Day,
		Kind: q.Kind,
		Text: q.Q,
	})

	return &dto.ProjectionResponse{
		Days:    timetable.Project(filtered),
		Showing: len(filtered),
		Total:   len(all),
		Summary: fmt.Sprintf("Showing %d of %d sessions", len(filtered), len(all)),
	}, nil
}

func (s *timetableService) UpdateEntry(ctx context.Context, id string, req *dto.UpdateEntryRequest) (*timetable.Entry, error) {
	cat, err := s.loadCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	// end_time 省略时从时间段目录补齐
	endTime := req.EndTime
	if endTime == "" {
		if slot, ok := cat.Slots[timetable.SlotKey(req.Day, req.StartTime)]; ok {
			endTime = slot.EndTime
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := timetable.ProposeEdit(s.session, timetable.EntryID(id), timetable.EditRequest{
		Day:          req.Day,
		StartTime:    req.StartTime,
		EndTime:      endTime,
		RoomID:       req.RoomID,
		InstructorID: req.InstructorID,
	}, cat)
	if err != nil {
		return nil, err
	}

	s.logger.Info("课表条目已调整",
		zap.String("entry_id", string(timetable.ComputeEntryID(updated))),
		zap.String("day", updated.Day),
		zap.String("start_time", updated.StartTime),
		zap.String("room_id", updated.RoomID),
		zap.String("instructor_id", updated.InstructorID),
	)
	return updated, nil
}

func (s *timetableService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.session.Current()
	if err != nil {
		return nil, err
	}

	stats := &dto.StatisticsResponse{
		TotalEntries:       len(t.Entries),
		TotalCourses:       t.TotalCourses,
		ScheduledCourses:   t.ScheduledCourses,
		SuccessRate:        t.SuccessRate,
		DayDistribution:    make(map[string]int),
		InstructorWorkload: make(map[string]int),
		RoomUtilization:    make(map[string]int),
		TimeslotUsage:      make(map[string]int),
	}
	for i := range t.Entries {
		e := &t.Entries[i]
		stats.DayDistribution[e.Day]++
		stats.InstructorWorkload[e.InstructorName]++
		stats.RoomUtilization[e.RoomID]++
		stats.TimeslotUsage[e.Day+" "+e.StartTime]++
	}
	return stats, nil
}

// loadCatalogs 从数据库取编辑校验所需的目录快照
func (s *timetableService) loadCatalogs(ctx context.Context) (timetable.Catalogs, error) {
	cat := timetable.Catalogs{
		Rooms:       make(map[string]timetable.RoomRef),
		Instructors: make(map[string]timetable.InstructorRef),
		Slots:       make(map[string]timetable.SlotRef),
	}

	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("查询教室目录失败", zap.Error(err))
		return cat, err
	}
	for _, r := range rooms {
		cat.Rooms[r.RoomID] = timetable.RoomRef{
			RoomID:   r.RoomID,
			Type:     r.RoomType,
			Capacity: r.Capacity,
		}
	}

	instructors, err := s.repo.Instructor.List(ctx)
	if err != nil {
		s.logger.Error("查询教师目录失败", zap.Error(err))
		return cat, err
	}
	for _, ins := range instructors {
		cat.Instructors[ins.InstructorID] = timetable.InstructorRef{
			InstructorID:     ins.InstructorID,
			Name:             ins.Name,
			Role:             ins.Role,
			UnavailableDay:   ins.UnavailableDay,
			QualifiedCourses: ins.QualifiedCourses,
		}
	}

	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		s.logger.Error("查询时间段目录失败", zap.Error(err))
		return cat, err
	}
	for _, slot := range slots {
		cat.Slots[timetable.SlotKey(slot.Day, slot.StartTime)] = timetable.SlotRef{
			Day:       slot.Day,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return cat, nil
}
