package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/internal/model"
)

// TimeSlotRepository 时间段目录数据访问接口
type TimeSlotRepository interface {
	List(ctx context.Context) ([]model.TimeSlot, error)
	ReplaceAll(ctx context.Context, slots []model.TimeSlot) error
	Count(ctx context.Context) (int64, error)
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo 创建 TimeSlotRepository 实例
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) List(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Order("day ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

// ReplaceAll 整表替换，CSV 数据集重载时使用
func (r *timeSlotRepo) ReplaceAll(ctx context.Context, slots []model.TimeSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TimeSlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

func (r *timeSlotRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TimeSlot{}).Count(&count).Error
	return count, err
}
