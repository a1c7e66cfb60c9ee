package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/domain/screening"
	"github.com/sanosuguru/go-cinema-ticket-booking/internal/pkg/logger"
)

// ScheduleService は上映スケジュールを管理する
type ScheduleService struct {
	movieRepo     movie.Repository
	screeningRepo screening.Repository
}

func NewScheduleService(movieRepo movie.Repository, screeningRepo screening.Repository) *ScheduleService {
	return &ScheduleService{movieRepo: movieRepo, screeningRepo: screeningRepo}
}

type AddScreeningInput struct {
	MovieTitle string
	Time       string // YYYY-MM-DD HH:MM
	TotalSeats int
}

// AddScreening は上映をスケジュールに追加する。
// タイトルは完全一致（大文字小文字を区別しない）で解決し、一致が
// ちょうど1件であることを要求する。0件（未登録）も2件以上（同名作品の
// 衝突、例えばリメイク）も失敗とし、副作用を残さない。先頭一致を採用する
// 実装は誤った映画に上映を登録してしまう
func (s *ScheduleService) AddScreening(ctx context.Context, input AddScreeningInput) (*screening.Screening, error) {
	if err := screening.ValidateTime(input.Time); err != nil {
		return nil, err
	}
	if input.TotalSeats <= 0 {
		return nil, screening.ErrInvalidTotalSeats
	}

	found, err := s.movieRepo.FindByExactTitle(ctx, input.MovieTitle)
	if err != nil {
		return nil, fmt.Errorf("映画の検索に失敗しました: %w", err)
	}
	if len(found) == 0 {
		return nil, movie.ErrMovieNotFound
	}
	if len(found) > 1 {
		return nil, movie.ErrAmbiguousTitle
	}

	// カタログに登録されている正規のタイトルを保持する（呼び出し側の表記ではなく）
	sc := screening.NewScreening(found[0].Title, input.Time, input.TotalSeats)
	sc.ID = uuid.New().String()
	if err := s.screeningRepo.Add(ctx, sc); err != nil {
		return nil, fmt.Errorf("上映の追加に失敗しました: %w", err)
	}

	logger.Info("上映を追加",
		zap.String("screening_id", sc.ID),
		zap.String("movie_title", sc.MovieTitle),
		zap.String("time", sc.Time),
		zap.Int("total_seats", sc.TotalSeats),
	)
	return sc, nil
}

// ScreeningsFor は映画の上映一覧を時刻の昇順で返す。タイトルは完全一致
// （部分一致にすると "The Father" の検索が "The Godfather" にも誤一致する）。
// 上映時刻の形式は辞書順と時刻順が一致するため文字列ソートで足りる
func (s *ScheduleService) ScreeningsFor(ctx context.Context, movieTitle string) ([]*screening.Screening, error) {
	found, err := s.screeningRepo.FindByMovieTitle(ctx, movieTitle)
	if err != nil {
		return nil, fmt.Errorf("上映の検索に失敗しました: %w", err)
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Time < found[j].Time
	})
	return found, nil
}

// GetScreening はIDから上映を取得する
func (s *ScheduleService) GetScreening(ctx context.Context, id string) (*screening.Screening, error) {
	return s.screeningRepo.GetByID(ctx, id)
}
