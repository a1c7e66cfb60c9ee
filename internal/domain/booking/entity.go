package booking

import "time"

// Booking は予約エンティティを表す。上映はIDで参照し、
// 映画タイトルは表示用に非正規化して保持する
type Booking struct {
	ID          string
	ScreeningID string
	MovieTitle  string
	NumTickets  int
	CreatedAt   time.Time
}

// NewBooking は新しい予約を作成する
func NewBooking(screeningID, movieTitle string, numTickets int) *Booking {
	return &Booking{
		ScreeningID: screeningID,
		MovieTitle:  movieTitle,
		NumTickets:  numTickets,
		CreatedAt:   time.Now(),
	}
}

// Validate は予約の検証を行う
func (b *Booking) Validate() error {
	if b.ScreeningID == "" {
		return ErrScreeningIDRequired
	}
	if b.NumTickets <= 0 {
		return ErrInvalidNumTickets
	}
	return nil
}
