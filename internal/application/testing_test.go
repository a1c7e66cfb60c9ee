package application

import (
	"testing"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/infrastructure/lock"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/infrastructure/memory"
)

// testEnv はテスト用に組み立てたサービス一式
type testEnv struct {
	catalog       *CatalogService
	schedule      *ScheduleService
	booking       *BookingService
	movieRepo     *memory.MovieRepository
	screeningRepo *memory.ScreeningRepository
	bookingRepo   *memory.BookingRepository
	lockManager   *lock.Manager
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	movieRepo := memory.NewMovieRepository()
	screeningRepo := memory.NewScreeningRepository()
	bookingRepo := memory.NewBookingRepository()
	lockManager := lock.NewManager()

	return &testEnv{
		catalog:       NewCatalogService(movieRepo),
		schedule:      NewScheduleService(movieRepo, screeningRepo),
		booking:       NewBookingService(bookingRepo, screeningRepo, lockManager, nil),
		movieRepo:     movieRepo,
		screeningRepo: screeningRepo,
		bookingRepo:   bookingRepo,
		lockManager:   lockManager,
	}
}

func setupServices(t *testing.T) (*CatalogService, *ScheduleService, *BookingService) {
	t.Helper()
	env := setupTestEnv(t)
	return env.catalog, env.schedule, env.booking
}
