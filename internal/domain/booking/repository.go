package booking

import "context"

// Repository は予約台帳のインターフェース
type Repository interface {
	// Add は予約を台帳に追加する
	Add(ctx context.Context, booking *Booking) error

	// GetByID はIDから予約を取得する
	GetByID(ctx context.Context, id string) (*Booking, error)

	// List は予約一覧を追加順で取得する
	List(ctx context.Context) ([]*Booking, error)

	// Delete は予約を台帳から削除する（論理削除ではなく物理削除）
	Delete(ctx context.Context, id string) error
}
