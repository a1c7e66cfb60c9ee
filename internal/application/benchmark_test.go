package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBenchmark_LargeSchedule は多数の上映・予約でのパフォーマンスと
// 整合性を計測するテスト
func TestBenchmark_LargeSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("大規模ベンチマークテストはshortモードではスキップ")
	}

	env := setupTestEnv(t)
	ctx := context.Background()

	const (
		numMovies     = 20
		numScreenings = 100
		numBookers    = 200
	)

	// 1. 映画と上映を準備
	for i := 0; i < numMovies; i++ {
		require.NoError(t, env.catalog.AddMovie(ctx, AddMovieInput{
			Title:  fmt.Sprintf("Movie %02d", i),
			Year:   1990 + i,
			Rating: 7.0,
		}))
	}

	screeningIDs := make([]string, 0, numScreenings)
	for i := 0; i < numScreenings; i++ {
		title := fmt.Sprintf("Movie %02d", i%numMovies)
		sc, err := env.schedule.AddScreening(ctx, AddScreeningInput{
			MovieTitle: title,
			Time:       fmt.Sprintf("2025-12-%02d %02d:00", i%28+1, i%24),
			TotalSeats: 200,
		})
		require.NoError(t, err)
		screeningIDs = append(screeningIDs, sc.ID)
	}

	// 2. 予約を並行実行
	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < numBookers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := screeningIDs[i%numScreenings]
			_, err := env.booking.BookTickets(ctx, id, 2)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	t.Logf("予約 %d 件を %v で処理", numBookers, time.Since(start))

	// 3. 帳尻が合っていることを確認
	bookings, err := env.booking.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, numBookers)

	screenings, err := env.screeningRepo.List(ctx)
	require.NoError(t, err)
	var totalBooked int
	for _, s := range screenings {
		assert.GreaterOrEqual(t, s.AvailableSeats(), 0)
		totalBooked += s.BookedSeats
	}
	assert.Equal(t, numBookers*2, totalBooked)
}
