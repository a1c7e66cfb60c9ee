package memory

import (
	"context"
	"sync"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/booking"
)

// BookingRepository はインメモリの予約台帳
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []*booking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, b)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, booking.ErrBookingNotFound
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*booking.Booking, len(r.bookings))
	copy(result, r.bookings)
	return result, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return booking.ErrBookingNotFound
}
