package booking

import "errors"

// Booking ドメインのエラー定義
var (
	ErrBookingNotFound     = errors.New("予約が見つかりません")
	ErrScreeningIDRequired = errors.New("上映IDは必須です")
	ErrInvalidNumTickets   = errors.New("チケット枚数は1以上である必要があります")
)
