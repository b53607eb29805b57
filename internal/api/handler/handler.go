package handler

import "github.com/roqaia-shehab/Is-roqia/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Catalog   *CatalogHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Catalog:   NewCatalogHandler(svc.Catalog),
		Timetable: NewTimetableHandler(svc.Timetable),
		Export:    NewExportHandler(svc.Export),
	}
}
