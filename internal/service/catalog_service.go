package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/config"
	"github.com/roqaia-shehab/Is-roqia/internal/dto"
	"github.com/roqaia-shehab/Is-roqia/internal/model"
	"github.com/roqaia-shehab/Is-roqia/internal/repository"
)

// ── 目录模块业务错误 ──

var (
	ErrCourseExists   = errors.New("课程编号已存在")
	ErrCourseNotFound = errors.New("课程不存在")
	ErrDatasetFile    = errors.New("数据集文件读取失败")
)

// CatalogService 目录业务接口
//
// 设计说明：
//   - 课程/教师/教室/时间段四张目录表由 CSV 数据集灌入 PostgreSQL
//   - Reload 按配置路径重读 CSV 并整表替换（单表事务内完成）
//   - 课程支持单条增删；教师/教室/时间段仅随数据集整体更新
type CatalogService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	ListInstructors(ctx context.Context) ([]model.Instructor, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error)
	Summary(ctx context.Context) (*dto.DatasetSummaryResponse, error)
	AddCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
	Reload(ctx context.Context) (*dto.ReloadResultResponse, error)
}

type catalogService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{cfg: cfg, repo: repo, logger: logger}
}

func (s *catalogService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.Course.List(ctx)
}

func (s *catalogService) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return s.repo.Instructor.List(ctx)
}

func (s *catalogService) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.Room.List(ctx)
}

func (s *catalogService) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return s.repo.TimeSlot.List(ctx)
}

func (s *catalogService) Summary(ctx context.Context) (*dto.DatasetSummaryResponse, error) {
	courses, err := s.repo.Course.Count(ctx)
	if err != nil {
		return nil, err
	}
	instructors, err := s.repo.Instructor.Count(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := s.repo.Room.Count(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.TimeSlot.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DatasetSummaryResponse{
		Courses:     courses,
		Instructors: instructors,
		Rooms:       rooms,
		TimeSlots:   slots,
	}, nil
}

func (s *catalogService) AddCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	// 课程编号唯一性校验
	existing, err := s.repo.Course.GetByCourseID(ctx, req.CourseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrCourseExists
	}

	credits := req.Credits
	if credits == 0 {
		credits = 3
	}
	courseType := req.CourseType
	if courseType == "" {
		courseType = "Lecture"
	}

	course := &model.Course{
		CourseID:   req.CourseID,
		Name:       req.Name,
		Credits:    credits,
		CourseType: courseType,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("课程已创建", zap.String("course_id", course.CourseID))
	return course, nil
}

func (s *catalogService) DeleteCourse(ctx context.Context, courseID string) error {
	if err := s.repo.Course.Delete(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.Error(err))
		return err
	}
	s.logger.Info("课程已删除", zap.String("course_id", courseID))
	return nil
}

// ═══════════════════════════════════════════════════════════
// Reload — 从 CSV 数据集重载四张目录表
// ═══════════════════════════════════════════════════════════

func (s *catalogService) Reload(ctx context.Context) (*dto.ReloadResultResponse, error) {
	ds := s.cfg.Dataset

	courses, err := loadCoursesCSV(ds.CoursesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetFile, err)
	}
	instructors, err := loadInstructorsCSV(ds.InstructorsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetFile, err)
	}
	rooms, err := loadRoomsCSV(ds.RoomsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetFile, err)
	}
	slots, err := loadTimeSlotsCSV(ds.TimeslotsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetFile, err)
	}

	if err := s.repo.Course.ReplaceAll(ctx, courses); err != nil {
		s.logger.Error("重载课程表失败", zap.Error(err))
		return nil, err
	}
	if err := s.repo.Instructor.ReplaceAll(ctx, instructors); err != nil {
		s.logger.Error("重载教师表失败", zap.Error(err))
		return nil, err
	}
	if err := s.repo.Room.ReplaceAll(ctx, rooms); err != nil {
		s.logger.Error("重载教室表失败", zap.Error(err))
		return nil, err
	}
	if err := s.repo.TimeSlot.ReplaceAll(ctx, slots); err != nil {
		s.logger.Error("重载时间段表失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("数据集重载完成",
		zap.Int("courses", len(courses)),
		zap.Int("instructors", len(instructors)),
		zap.Int("rooms", len(rooms)),
		zap.Int("time_slots", len(slots)),
	)

	return &dto.ReloadResultResponse{
		Courses:     len(courses),
		Instructors: len(instructors),
		Rooms:       len(rooms),
		TimeSlots:   len(slots),
	}, nil
}

// ── CSV 解析辅助 ──
//
// 数据集列名固定：
//   Courses.csv:     CourseID, CourseName, Credits, Type
//   instructors.csv: InstructorID, Name, Role, PreferredSlots, QualifiedCourses
//   Rooms.csv:       RoomID, Type, Capacity
//   TimeSlots.csv:   Day, StartTime, EndTime

func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func loadCoursesCSV(path string) ([]model.Course, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	courses := make([]model.Course, 0, len(rows))
	for _, row := range rows {
		credits, _ := strconv.Atoi(row["Credits"])
		if credits == 0 {
			credits = 3
		}
		courses = append(courses, model.Course{
			CourseID:   row["CourseID"],
			Name:       row["CourseName"],
			Credits:    credits,
			CourseType: row["Type"],
		})
	}
	return courses, nil
}

func loadInstructorsCSV(path string) ([]model.Instructor, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	instructors := make([]model.Instructor, 0, len(rows))
	for _, row := range rows {
		// QualifiedCourses 在单元格内以逗号分隔
		var qualified model.StringArray
		if raw := row["QualifiedCourses"]; raw != "" {
			for _, c := range strings.Split(raw, ",") {
				qualified = append(qualified, strings.TrimSpace(c))
			}
		}
		instructors = append(instructors, model.Instructor{
			InstructorID:     row["InstructorID"],
			Name:             row["Name"],
			Role:             row["Role"],
			UnavailableDay:   row["PreferredSlots"],
			QualifiedCourses: qualified,
		})
	}
	return instructors, nil
}

func loadRoomsCSV(path string) ([]model.Room, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	rooms := make([]model.Room, 0, len(rows))
	for _, row := range rows {
		capacity, _ := strconv.Atoi(row["Capacity"])
		rooms = append(rooms, model.Room{
			RoomID:   row["RoomID"],
			RoomType: row["Type"],
			Capacity: capacity,
		})
	}
	return rooms, nil
}

func loadTimeSlotsCSV(path string) ([]model.TimeSlot, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	slots := make([]model.TimeSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, model.TimeSlot{
			Day:       row["Day"],
			StartTime: row["StartTime"],
			EndTime:   row["EndTime"],
		})
	}
	return slots, nil
}
