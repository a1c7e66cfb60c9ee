package worker

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/screening"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/metrics"
)

// MockScheduleSource はScheduleSourceのモック
type MockScheduleSource struct {
	mock.Mock
}

func (m *MockScheduleSource) List(ctx context.Context) ([]*screening.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*screening.Screening), args.Error(1)
}

// MockLedgerSource はLedgerSourceのモック
type MockLedgerSource struct {
	mock.Mock
}

func (m *MockLedgerSource) List(ctx context.Context) ([]*booking.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func TestNewInventoryReporter(t *testing.T) {
	schedule := new(MockScheduleSource)
	ledger := new(MockLedgerSource)

	reporter := NewInventoryReporter(schedule, ledger, nil, time.Minute)

	assert.NotNil(t, reporter)
	assert.Equal(t, time.Minute, reporter.interval)
	assert.NotNil(t, reporter.stopCh)
	assert.NotNil(t, reporter.doneCh)
}

func TestInventoryReporter_Report(t *testing.T) {
	t.Run("在庫がメトリクスに反映される", func(t *testing.T) {
		schedule := new(MockScheduleSource)
		ledger := new(MockLedgerSource)

		s1 := &screening.Screening{ID: "s1", MovieTitle: "マトリックス", Time: "2025-12-01 10:00", TotalSeats: 100, BookedSeats: 30}
		s2 := &screening.Screening{ID: "s2", MovieTitle: "インセプション", Time: "2025-12-01 21:00", TotalSeats: 50, BookedSeats: 10}
		schedule.On("List", mock.Anything).Return([]*screening.Screening{s1, s2}, nil)
		ledger.On("List", mock.Anything).Return([]*booking.Booking{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}}, nil)

		reg := prometheus.NewRegistry()
		m := metrics.NewWithRegistry(reg)
		reporter := NewInventoryReporter(schedule, ledger, m, time.Minute)

		reporter.report(context.Background())

		families, err := reg.Gather()
		require.NoError(t, err)

		values := map[string]float64{}
		for _, f := range families {
			for _, metric := range f.GetMetric() {
				key := f.GetName()
				for _, l := range metric.GetLabel() {
					key += ":" + l.GetValue()
				}
				values[key] = metric.GetGauge().GetValue()
			}
		}
		assert.Equal(t, float64(2), values["screenings"])
		assert.Equal(t, float64(3), values["active_bookings"])
		assert.Equal(t, float64(150), values["screening_seats:total"])
		assert.Equal(t, float64(40), values["screening_seats:booked"])
		assert.Equal(t, float64(110), values["screening_seats:available"])

		schedule.AssertExpectations(t)
		ledger.AssertExpectations(t)
	})

	t.Run("取得エラーでもパニックしない", func(t *testing.T) {
		schedule := new(MockScheduleSource)
		ledger := new(MockLedgerSource)
		schedule.On("List", mock.Anything).Return(nil, assert.AnError)

		reporter := NewInventoryReporter(schedule, ledger, nil, time.Minute)

		assert.NotPanics(t, func() {
			reporter.report(context.Background())
		})
		schedule.AssertExpectations(t)
	})
}

func TestInventoryReporter_StartStop(t *testing.T) {
	t.Run("開始と停止が正常に動作する", func(t *testing.T) {
		schedule := new(MockScheduleSource)
		ledger := new(MockLedgerSource)
		schedule.On("List", mock.Anything).Return([]*screening.Screening{}, nil).Maybe()
		ledger.On("List", mock.Anything).Return([]*booking.Booking{}, nil).Maybe()

		reporter := NewInventoryReporter(schedule, ledger, nil, 50*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go reporter.Start(ctx)

		time.Sleep(120 * time.Millisecond)
		reporter.Stop()

		select {
		case <-reporter.doneCh:
			// 正常に終了
		case <-time.After(1 * time.Second):
			t.Error("reporter did not stop in time")
		}
	})

	t.Run("コンテキストキャンセルで停止する", func(t *testing.T) {
		schedule := new(MockScheduleSource)
		ledger := new(MockLedgerSource)
		schedule.On("List", mock.Anything).Return([]*screening.Screening{}, nil).Maybe()
		ledger.On("List", mock.Anything).Return([]*booking.Booking{}, nil).Maybe()

		reporter := NewInventoryReporter(schedule, ledger, nil, 50*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			reporter.Start(ctx)
			close(done)
		}()

		time.Sleep(80 * time.Millisecond)
		cancel()

		select {
		case <-done:
			// 正常に終了
		case <-time.After(1 * time.Second):
			t.Error("reporter did not stop after context cancel")
		}
	})
}
