package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// 予約試行の総数（status: success, not_found, invalid_count, sold_out, lock_failed, error）
	BookingsTotal *prometheus.CounterVec

	// 取り消し試行の総数（status: success, not_found, screening_missing, lock_failed, error）
	CancellationsTotal *prometheus.CounterVec

	// 台帳上のアクティブな予約数
	ActiveBookings prometheus.Gauge

	// 全上映の座席数（state: total, booked, available）。ワーカーが定期更新する
	ScreeningSeats *prometheus.GaugeVec

	// スケジュール上の上映数
	Screenings prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Total number of ticket booking attempts",
			},
			[]string{"status"},
		),
		CancellationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cancellations_total",
				Help: "Total number of booking cancellation attempts",
			},
			[]string{"status"},
		),
		ActiveBookings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_bookings",
				Help: "Current number of bookings in the ledger",
			},
		),
		ScreeningSeats: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "screening_seats",
				Help: "Seat counts across all scheduled screenings",
			},
			[]string{"state"},
		),
		Screenings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "screenings",
				Help: "Current number of scheduled screenings",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.BookingsTotal,
		m.CancellationsTotal,
		m.ActiveBookings,
		m.ScreeningSeats,
		m.Screenings,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す
func Get() *Metrics {
	return defaultMetrics
}
