package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/movie"
)

// MovieRepository はインメモリの映画カタログ。
// コレクションは追加順を保持し、プロセスの生存期間だけ存在する
type MovieRepository struct {
	mu     sync.RWMutex
	movies []*movie.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{}
}

// Add は映画を追加する。同一タイトル（大文字小文字を区別しない）かつ
// 同一公開年の映画が既にある場合は何もしない
func (r *MovieRepository) Add(ctx context.Context, m *movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(m.Title)
	for _, existing := range r.movies {
		if strings.ToLower(existing.Title) == lower && existing.Year == m.Year {
			return nil
		}
	}
	r.movies = append(r.movies, m)
	return nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*movie.Movie, len(r.movies))
	copy(result, r.movies)
	return result, nil
}

func (r *MovieRepository) FindBySubstring(ctx context.Context, query string) ([]*movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(query)
	var result []*movie.Movie
	for _, m := range r.movies {
		if strings.Contains(strings.ToLower(m.Title), lower) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *MovieRepository) FindByExactTitle(ctx context.Context, title string) ([]*movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(title)
	var result []*movie.Movie
	for _, m := range r.movies {
		if strings.ToLower(m.Title) == lower {
			result = append(result, m)
		}
	}
	return result, nil
}
