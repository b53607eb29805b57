package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/internal/model"
	"github.com/roqaia-shehab/Is-roqia/internal/repository"
)

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByCourseID(_ context.Context, courseID string) (*model.Course, error) {
	if c, ok := m.courses[courseID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, courseID string) error {
	if _, ok := m.courses[courseID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, courseID)
	return nil
}

func (m *mockCourseRepo) ReplaceAll(_ context.Context, courses []model.Course) error {
	m.courses = make(map[string]*model.Course, len(courses))
	for i := range courses {
		m.courses[courses[i].CourseID] = &courses[i]
	}
	return nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[string]*model.Instructor
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{instructors: make(map[string]*model.Instructor)}
}

func (m *mockInstructorRepo) GetByInstructorID(_ context.Context, instructorID string) (*model.Instructor, error) {
	if ins, ok := m.instructors[instructorID]; ok {
		return ins, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) List(_ context.Context) ([]model.Instructor, error) {
	result := make([]model.Instructor, 0, len(m.instructors))
	for _, ins := range m.instructors {
		result = append(result, *ins)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].InstructorID < result[j].InstructorID })
	return result, nil
}

func (m *mockInstructorRepo) ReplaceAll(_ context.Context, instructors []model.Instructor) error {
	m.instructors = make(map[string]*model.Instructor, len(instructors))
	for i := range instructors {
		m.instructors[instructors[i].InstructorID] = &instructors[i]
	}
	return nil
}

func (m *mockInstructorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.instructors)), nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) GetByRoomID(_ context.Context, roomID string) (*model.Room, error) {
	if r, ok := m.rooms[roomID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	result := make([]model.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RoomID < result[j].RoomID })
	return result, nil
}

func (m *mockRoomRepo) ReplaceAll(_ context.Context, rooms []model.Room) error {
	m.rooms = make(map[string]*model.Room, len(rooms))
	for i := range rooms {
		m.rooms[rooms[i].RoomID] = &rooms[i]
	}
	return nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots []model.TimeSlot
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{}
}

func (m *mockTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	result := make([]model.TimeSlot, len(m.slots))
	copy(result, m.slots)
	return result, nil
}

func (m *mockTimeSlotRepo) ReplaceAll(_ context.Context, slots []model.TimeSlot) error {
	m.slots = make([]model.TimeSlot, len(slots))
	copy(m.slots, slots)
	return nil
}

func (m *mockTimeSlotRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.slots)), nil
}

// ── 测试辅助 ──

// newTestRepository 以全套 mock 构建 Repository 聚合
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Course:     newMockCourseRepo(),
		Instructor: newMockInstructorRepo(),
		Room:       newMockRoomRepo(),
		TimeSlot:   newMockTimeSlotRepo(),
	}
}
