package movie

import "time"

// Movie は映画エンティティを表す
type Movie struct {
	Title          string
	Year           int
	Director       string
	Genres         []string
	Actors         []string
	RuntimeMinutes int
	Rating         float64
	CreatedAt      time.Time
}

// 映画の発明年。これより前の公開年は存在しない
const MinYear = 1888

// NewMovie は新しい映画を作成する。検証に失敗した場合はエンティティを生成しない
func NewMovie(title string, year int, director string, genres, actors []string, runtimeMinutes int, rating float64) (*Movie, error) {
	m := &Movie{
		Title:          title,
		Year:           year,
		Director:       director,
		Genres:         genres,
		Actors:         actors,
		RuntimeMinutes: runtimeMinutes,
		Rating:         rating,
		CreatedAt:      time.Now(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate は映画の検証を行う
func (m *Movie) Validate() error {
	if m.Title == "" {
		return ErrTitleRequired
	}
	if m.Rating < 0 || m.Rating > 10 {
		return ErrInvalidRating
	}
	if m.Year < MinYear {
		return ErrInvalidYear
	}
	if m.RuntimeMinutes < 0 {
		return ErrInvalidRuntime
	}
	return nil
}
