package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/logger"
)

// CatalogService は映画カタログを管理する
type CatalogService struct {
	movieRepo movie.Repository
}

func NewCatalogService(movieRepo movie.Repository) *CatalogService {
	return &CatalogService{movieRepo: movieRepo}
}

type AddMovieInput struct {
	Title          string
	Year           int
	Director       string
	Genres         []string
	Actors         []string
	RuntimeMinutes int
	Rating         float64
}

// AddMovie は映画をカタログに追加する。生成時検証に失敗した場合は
// エンティティを作らずに即座にエラーを返す。同一タイトル・同一公開年の
// 重複は黙って無視される（冪等）
func (s *CatalogService) AddMovie(ctx context.Context, input AddMovieInput) error {
	m, err := movie.NewMovie(input.Title, input.Year, input.Director, input.Genres, input.Actors, input.RuntimeMinutes, input.Rating)
	if err != nil {
		return fmt.Errorf("バリデーションエラー: %w", err)
	}
	if err := s.movieRepo.Add(ctx, m); err != nil {
		return fmt.Errorf("映画の追加に失敗しました: %w", err)
	}
	logger.Debug("映画を追加", zap.String("title", m.Title), zap.Int("year", m.Year))
	return nil
}

// SeedDefaultCatalog は初期カタログを投入する
func (s *CatalogService) SeedDefaultCatalog(ctx context.Context) error {
	catalog, err := movie.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("初期カタログの構築に失敗しました: %w", err)
	}
	for _, m := range catalog {
		if err := s.movieRepo.Add(ctx, m); err != nil {
			return fmt.Errorf("初期カタログの投入に失敗しました: %w", err)
		}
	}
	logger.Info("初期カタログを投入", zap.Int("count", len(catalog)))
	return nil
}

// ListMovies は映画一覧を追加順で返す
func (s *CatalogService) ListMovies(ctx context.Context) ([]*movie.Movie, error) {
	return s.movieRepo.List(ctx)
}

// FindMovies はタイトルに部分一致する映画を返す（大文字小文字を区別しない）
func (s *CatalogService) FindMovies(ctx context.Context, query string) ([]*movie.Movie, error) {
	return s.movieRepo.FindBySubstring(ctx, query)
}
