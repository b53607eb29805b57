package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/internal/model"
)

// CourseRepository 课程目录数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByCourseID(ctx context.Context, courseID string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Delete(ctx context.Context, courseID string) error
	ReplaceAll(ctx context.Context, courses []model.Course) error
	Count(ctx context.Context) (int64, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByCourseID(ctx context.Context, courseID string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Order("course_id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Delete(ctx context.Context, courseID string) error {
	result := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAll 整表替换，CSV 数据集重载时使用
func (r *courseRepo) ReplaceAll(ctx context.Context, courses []model.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Course{}).Error; err != nil {
			return err
		}
		if len(courses) == 0 {
			return nil
		}
		return tx.Create(&courses).Error
	})
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&count).Error
	return count, err
}
