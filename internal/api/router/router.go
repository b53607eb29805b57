package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roqaia-shehab/Is-roqia/config"
	"github.com/roqaia-shehab/Is-roqia/internal/api/handler"
	"github.com/roqaia-shehab/Is-roqia/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 数据集模块
		datasets := v1.Group("/datasets")
		{
			datasets.GET("/summary", h.Catalog.GetSummary)
			datasets.POST("/reload", h.Catalog.Reload)
		}

		// 目录模块
		v1.GET("/courses", h.Catalog.ListCourses)
		v1.POST("/courses", h.Catalog.CreateCourse)
		v1.DELETE("/courses/:id", h.Catalog.DeleteCourse)
		v1.GET("/instructors", h.Catalog.ListInstructors)
		v1.GET("/rooms", h.Catalog.ListRooms)
		v1.GET("/time-slots", h.Catalog.ListTimeSlots)

		// 课表模块
		timetables := v1.Group("/timetables")
		{
			timetables.POST("/current", h.Timetable.LoadTimetable)
			timetables.GET("/current", h.Timetable.GetTimetable)
			timetables.GET("/projection", h.Timetable.GetProjection)
			timetables.PUT("/entries/:id", h.Timetable.UpdateEntry)

			// 导出模块
			export := timetables.Group("/export")
			{
				export.GET("/csv", h.Export.ExportCSV)
				export.GET("/json", h.Export.ExportJSON)
				export.GET("/xlsx", h.Export.ExportXLSX)
				export.GET("/ics", h.Export.ExportICS)
			}
		}

		// 统计模块
		v1.GET("/statistics", h.Timetable.GetStatistics)
	}

	return r
}
