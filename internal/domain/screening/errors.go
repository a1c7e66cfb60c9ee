package screening

import "errors"

// Screening ドメインのエラー定義
var (
	ErrScreeningNotFound   = errors.New("上映が見つかりません")
	ErrMovieTitleRequired  = errors.New("映画タイトルは必須です")
	ErrInvalidTimeFormat   = errors.New("上映時刻は YYYY-MM-DD HH:MM 形式である必要があります")
	ErrInvalidTotalSeats   = errors.New("座席数は1以上である必要があります")
	ErrInvalidTicketCount  = errors.New("チケット枚数は1以上である必要があります")
	ErrNotEnoughSeats      = errors.New("空席が不足しています")
	ErrSeatCountOutOfRange = errors.New("予約済み座席数が範囲外です")
)
