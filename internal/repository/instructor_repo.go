package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/internal/model"
)

// InstructorRepository 教师目录数据访问接口
type InstructorRepository interface {
	GetByInstructorID(ctx context.Context, instructorID string) (*model.Instructor, error)
	List(ctx context.Context) ([]model.Instructor, error)
	ReplaceAll(ctx context.Context, instructors []model.Instructor) error
	Count(ctx context.Context) (int64, error)
}

type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) GetByInstructorID(ctx context.Context, instructorID string) (*model.Instructor, error) {
	var instructor model.Instructor
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepo) List(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	err := r.db.WithContext(ctx).
		Order("instructor_id ASC").
		Find(&instructors).Error
	return instructors, err
}

// ReplaceAll 整表替换，CSV 数据集重载时使用
func (r *instructorRepo) ReplaceAll(ctx context.Context, instructors []model.Instructor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Instructor{}).Error; err != nil {
			return err
		}
		if len(instructors) == 0 {
			return nil
		}
		return tx.Create(&instructors).Error
	})
}

func (r *instructorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Instructor{}).Count(&count).Error
	return count, err
}
