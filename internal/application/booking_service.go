package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/screening"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/infrastructure/lock"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/metrics"
)

// BookingService は予約台帳を管理する
type BookingService struct {
	bookingRepo   booking.Repository
	screeningRepo screening.Repository
	lockManager   *lock.Manager
	metrics       *metrics.Metrics
}

func NewBookingService(br booking.Repository, sr screening.Repository, lm *lock.Manager, m *metrics.Metrics) *BookingService {
	return &BookingService{bookingRepo: br, screeningRepo: sr, lockManager: lm, metrics: m}
}

// BookTickets はチケットを予約する。空席確認と座席更新は上映ごとの
// ロック下でひとつのクリティカルセクションとして実行される。残り1席に
// 対する同時予約が両方成功することはない
func (s *BookingService) BookTickets(ctx context.Context, screeningID string, numTickets int) (*booking.Booking, error) {
	release, err := s.acquireScreeningLock(ctx, screeningID)
	if err != nil {
		s.countBooking("lock_failed")
		return nil, err
	}
	defer release()

	sc, err := s.screeningRepo.GetByID(ctx, screeningID)
	if err != nil {
		s.countBooking("not_found")
		return nil, err
	}

	if err := sc.Book(numTickets); err != nil {
		switch {
		case errors.Is(err, screening.ErrInvalidTicketCount):
			s.countBooking("invalid_count")
		case errors.Is(err, screening.ErrNotEnoughSeats):
			s.countBooking("sold_out")
		}
		return nil, err
	}

	b := booking.NewBooking(sc.ID, sc.MovieTitle, numTickets)
	b.ID = uuid.New().String()
	if err := s.bookingRepo.Add(ctx, b); err != nil {
		// 台帳に載せられなかった予約は座席ごと巻き戻す
		sc.ReleaseSeats(numTickets)
		s.countBooking("error")
		return nil, fmt.Errorf("予約の登録に失敗しました: %w", err)
	}

	s.countBooking("success")
	if s.metrics != nil {
		s.metrics.ActiveBookings.Inc()
	}
	logger.Info("チケットを予約",
		zap.String("booking_id", b.ID),
		zap.String("screening_id", sc.ID),
		zap.String("movie_title", sc.MovieTitle),
		zap.Int("num_tickets", numTickets),
		zap.Int("available_seats", sc.AvailableSeats()),
	)
	return b, nil
}

// CancelBooking は予約を取り消す。上映がまだ存在する場合は座席を返却する
// （帯域外の状態破壊があっても予約済み座席数は0未満にならない）。上映が
// 既に取り除かれている場合でも取り消し自体は成功し、予約は台帳から消える。
// 同じ予約への同時取り消しはクリティカルセクション内の再取得で検出され、
// 座席が返却されるのは最初の1回だけになる
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.countCancellation("not_found")
		return err
	}

	release, err := s.acquireScreeningLock(ctx, b.ScreeningID)
	if err != nil {
		s.countCancellation("lock_failed")
		return err
	}
	defer release()

	// ロック待ちの間に別の取り消しが先行した場合はここで止める
	b, err = s.bookingRepo.GetByID(ctx, b.ID)
	if err != nil {
		s.countCancellation("not_found")
		return err
	}

	sc, scErr := s.screeningRepo.GetByID(ctx, b.ScreeningID)
	if scErr != nil && !errors.Is(scErr, screening.ErrScreeningNotFound) {
		s.countCancellation("error")
		return fmt.Errorf("上映の取得に失敗しました: %w", scErr)
	}

	// 座席の返却は台帳からの削除が確定してから行う
	if err := s.bookingRepo.Delete(ctx, b.ID); err != nil {
		s.countCancellation("error")
		return fmt.Errorf("予約の削除に失敗しました: %w", err)
	}

	if scErr == nil {
		sc.ReleaseSeats(b.NumTickets)
		s.countCancellation("success")
	} else {
		// 上映が帯域外で取り除かれている。座席は返却できないが取り消しは成立する
		s.countCancellation("screening_missing")
	}

	if s.metrics != nil {
		s.metrics.ActiveBookings.Dec()
	}
	logger.Info("予約を取り消し",
		zap.String("booking_id", b.ID),
		zap.String("screening_id", b.ScreeningID),
		zap.Int("num_tickets", b.NumTickets),
	)
	return nil
}

// ListBookings は予約一覧を追加順で返す
func (s *BookingService) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) acquireScreeningLock(ctx context.Context, screeningID string) (func(), error) {
	if s.lockManager == nil {
		return func() {}, nil
	}
	l, err := s.lockManager.AcquireWithRetry(ctx, "screening:"+screeningID, 50, 10*time.Millisecond)
	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			return nil, fmt.Errorf("上映が他の操作によって処理中です: %w", err)
		}
		return nil, fmt.Errorf("ロック取得に失敗しました: %w", err)
	}
	return func() {
		if err := l.Release(ctx); err != nil {
			logger.Warn("ロック解放に失敗", zap.Error(err))
		}
	}, nil
}

func (s *BookingService) countBooking(status string) {
	if s.metrics != nil {
		s.metrics.BookingsTotal.WithLabelValues(status).Inc()
	}
}

func (s *BookingService) countCancellation(status string) {
	if s.metrics != nil {
		s.metrics.CancellationsTotal.WithLabelValues(status).Inc()
	}
}
