package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/roqaia-shehab/Is-roqia/config"
	"github.com/roqaia-shehab/Is-roqia/internal/api/handler"
	"github.com/roqaia-shehab/Is-roqia/internal/api/router"
	"github.com/roqaia-shehab/Is-roqia/internal/repository"
	"github.com/roqaia-shehab/Is-roqia/internal/service"
	"github.com/roqaia-shehab/Is-roqia/pkg/database"
	applogger "github.com/roqaia-shehab/Is-roqia/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（缺省按 ./config/config.yaml 查找）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 4.1 目录表为空时按配置路径自动灌入 CSV 数据集
	if err := seedIfEmpty(svc, logger); err != nil {
		logger.Warn("数据集初始化失败，可稍后通过 /api/v1/datasets/reload 重试", zap.Error(err))
	}

	// 5. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	logger.Info("服务器已关闭")
}

// seedIfEmpty 首次启动（目录表全空）时从 CSV 数据集灌入
func seedIfEmpty(svc *service.Service, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := svc.Catalog.Summary(ctx)
	if err != nil {
		return err
	}
	if summary.Courses > 0 || summary.Instructors > 0 || summary.Rooms > 0 || summary.TimeSlots > 0 {
		return nil
	}

	result, err := svc.Catalog.Reload(ctx)
	if err != nil {
		return err
	}
	logger.Info("数据集已初始化",
		zap.Int("courses", result.Courses),
		zap.Int("instructors", result.Instructors),
		zap.Int("rooms", result.Rooms),
		zap.Int("time_slots", result.TimeSlots),
	)
	return nil
}
