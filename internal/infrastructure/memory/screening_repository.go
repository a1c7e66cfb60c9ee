package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/screening"
)

// ScreeningRepository はインメモリの上映スケジュール
type ScreeningRepository struct {
	mu         sync.RWMutex
	screenings []*screening.Screening
}

func NewScreeningRepository() *ScreeningRepository {
	return &ScreeningRepository{}
}

func (r *ScreeningRepository) Add(ctx context.Context, s *screening.Screening) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screenings = append(r.screenings, s)
	return nil
}

func (r *ScreeningRepository) GetByID(ctx context.Context, id string) (*screening.Screening, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.screenings {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, screening.ErrScreeningNotFound
}

func (r *ScreeningRepository) FindByMovieTitle(ctx context.Context, title string) ([]*screening.Screening, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(title)
	var result []*screening.Screening
	for _, s := range r.screenings {
		if strings.ToLower(s.MovieTitle) == lower {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *ScreeningRepository) List(ctx context.Context) ([]*screening.Screening, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*screening.Screening, len(r.screenings))
	copy(result, r.screenings)
	return result, nil
}

func (r *ScreeningRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.screenings {
		if s.ID == id {
			r.screenings = append(r.screenings[:i], r.screenings[i+1:]...)
			return nil
		}
	}
	return screening.ErrScreeningNotFound
}
