package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/roqaia-shehab/Is-roqia/internal/model"
)

// RoomRepository 教室目录数据访问接口
type RoomRepository interface {
	GetByRoomID(ctx context.Context, roomID string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	ReplaceAll(ctx context.Context, rooms []model.Room) error
	Count(ctx context.Context) (int64, error)
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo 创建 RoomRepository 实例
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) GetByRoomID(ctx context.Context, roomID string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Order("room_id ASC").
		Find(&rooms).Error
	return rooms, err
}

// ReplaceAll 整表替换，CSV 数据集重载时使用
func (r *roomRepo) ReplaceAll(ctx context.Context, rooms []model.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Room{}).Error; err != nil {
			return err
		}
		if len(rooms) == 0 {
			return nil
		}
		return tx.Create(&rooms).Error
	})
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&count).Error
	return count, err
}
