package screening

import "time"

// TimeLayout は上映時刻の形式。この形式では辞書順ソートが時刻順ソートと一致する
const TimeLayout = "2006-01-02 15:04"

// Screening は上映エンティティを表す
type Screening struct {
	ID          string
	MovieTitle  string // カタログに登録されている正規のタイトル
	Time        string // TimeLayout 形式
	TotalSeats  int
	BookedSeats int
	CreatedAt   time.Time
}

// NewScreening は新しい上映を作成する
func NewScreening(movieTitle, screeningTime string, totalSeats int) *Screening {
	return &Screening{
		MovieTitle:  movieTitle,
		Time:        screeningTime,
		TotalSeats:  totalSeats,
		BookedSeats: 0,
		CreatedAt:   time.Now(),
	}
}

// ValidateTime は上映時刻の形式を検証する
func ValidateTime(value string) error {
	if _, err := time.Parse(TimeLayout, value); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// AvailableSeats は空席数を返す。常に導出値であり、保持はしない
func (s *Screening) AvailableSeats() int {
	return s.TotalSeats - s.BookedSeats
}

// Book は座席を確保する。確保後の予約済み座席数が範囲内に収まる場合のみ遷移する
func (s *Screening) Book(numTickets int) error {
	if numTickets <= 0 {
		return ErrInvalidTicketCount
	}
	if numTickets > s.AvailableSeats() {
		return ErrNotEnoughSeats
	}
	s.BookedSeats += numTickets
	return nil
}

// ReleaseSeats は座席を返却する。外部から状態が壊された場合でも
// 予約済み座席数が負になることはない（0で打ち止め）
func (s *Screening) ReleaseSeats(numTickets int) {
	s.BookedSeats -= numTickets
	if s.BookedSeats < 0 {
		s.BookedSeats = 0
	}
}

// Validate は上映の検証を行う
func (s *Screening) Validate() error {
	if s.MovieTitle == "" {
		return ErrMovieTitleRequired
	}
	if err := ValidateTime(s.Time); err != nil {
		return err
	}
	if s.TotalSeats <= 0 {
		return ErrInvalidTotalSeats
	}
	if s.BookedSeats < 0 || s.BookedSeats > s.TotalSeats {
		return ErrSeatCountOutOfRange
	}
	return nil
}
