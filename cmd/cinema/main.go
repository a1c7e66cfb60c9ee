package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/application"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/cli"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/config"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/infrastructure/lock"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/infrastructure/memory"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/worker"
)

func main() {
	// .env があれば読み込む（なくてもよい）
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLogger(cfg.App.Env, cfg.App.LogLevel))
	defer func() { _ = logger.Sync() }()

	m := metrics.Init()

	// リポジトリとサービスの組み立て
	movieRepo := memory.NewMovieRepository()
	screeningRepo := memory.NewScreeningRepository()
	bookingRepo := memory.NewBookingRepository()
	lockManager := lock.NewManager()

	catalogService := application.NewCatalogService(movieRepo)
	scheduleService := application.NewScheduleService(movieRepo, screeningRepo)
	bookingService := application.NewBookingService(bookingRepo, screeningRepo, lockManager, m)

	// SIGINT / SIGTERM でメニューとワーカーを止める
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Catalog.SeedDefault {
		if err := catalogService.SeedDefaultCatalog(ctx); err != nil {
			logger.Fatal("初期カタログの投入に失敗", zap.Error(err))
		}
	}

	reporter := worker.NewInventoryReporter(screeningRepo, bookingRepo, m, cfg.Worker.ReportInterval)
	go reporter.Start(ctx)

	menu := cli.NewMenu(catalogService, scheduleService, bookingService, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("メニューが異常終了", zap.Error(err))
	}

	stop()
	reporter.Stop()
	logger.Info("正常にシャットダウンしました")
}
