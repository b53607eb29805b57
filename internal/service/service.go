package service

import (
	"go.uber.org/zap"

	"github.com/roqaia-shehab/Is-roqia/config"
	"github.com/roqaia-shehab/Is-roqia/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Catalog   CatalogService
	Timetable TimetableService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	timetableSvc := NewTimetableService(repo, logger)
	return &Service{
		Catalog:   NewCatalogService(cfg, repo, logger),
		Timetable: timetableSvc,
		Export:    NewExportService(timetableSvc, logger),
	}
}
