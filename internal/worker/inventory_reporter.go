package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/screening"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/metrics"
)

// ScheduleSource は上映一覧を提供するインターフェース
type ScheduleSource interface {
	List(ctx context.Context) ([]*screening.Screening, error)
}

// LedgerSource は予約一覧を提供するインターフェース
type LedgerSource interface {
	List(ctx context.Context) ([]*booking.Booking, error)
}

// InventoryReporter は座席在庫のスナップショットを定期的にメトリクスへ
// 反映するワーカー
type InventoryReporter struct {
	schedule ScheduleSource
	ledger   LedgerSource
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewInventoryReporter は新しいレポーターを作成
func NewInventoryReporter(schedule ScheduleSource, ledger LedgerSource, m *metrics.Metrics, interval time.Duration) *InventoryReporter {
	return &InventoryReporter{
		schedule: schedule,
		ledger:   ledger,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はレポーターを開始
func (r *InventoryReporter) Start(ctx context.Context) {
	logger.Info("在庫レポーター開始", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("在庫レポーター停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("在庫レポーター停止（シグナル受信）")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

// Stop はレポーターを停止
func (r *InventoryReporter) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// report は現在の在庫をメトリクスへ反映
func (r *InventoryReporter) report(ctx context.Context) {
	log := logger.Get()

	screenings, err := r.schedule.List(ctx)
	if err != nil {
		log.Error("上映一覧の取得に失敗", zap.Error(err))
		return
	}
	bookings, err := r.ledger.List(ctx)
	if err != nil {
		log.Error("予約一覧の取得に失敗", zap.Error(err))
		return
	}

	var total, booked int
	for _, s := range screenings {
		total += s.TotalSeats
		booked += s.BookedSeats
	}

	if r.metrics != nil {
		r.metrics.Screenings.Set(float64(len(screenings)))
		r.metrics.ActiveBookings.Set(float64(len(bookings)))
		r.metrics.ScreeningSeats.WithLabelValues("total").Set(float64(total))
		r.metrics.ScreeningSeats.WithLabelValues("booked").Set(float64(booked))
		r.metrics.ScreeningSeats.WithLabelValues("available").Set(float64(total - booked))
	}

	log.Debug("在庫スナップショット",
		zap.Int("screenings", len(screenings)),
		zap.Int("bookings", len(bookings)),
		zap.Int("total_seats", total),
		zap.Int("booked_seats", booked),
	)
}
