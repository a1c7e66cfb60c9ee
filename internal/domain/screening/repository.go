package screening

import "context"

// Repository は上映スケジュールのインターフェース
type Repository interface {
	// Add は上映をスケジュールに追加する
	Add(ctx context.Context, screening *Screening) error

	// GetByID はIDから上映を取得する
	GetByID(ctx context.Context, id string) (*Screening, error)

	// FindByMovieTitle はタイトルが完全一致する上映を追加順で取得する
	// （大文字小文字を区別しない）
	FindByMovieTitle(ctx context.Context, title string) ([]*Screening, error)

	// List は上映一覧を追加順で取得する
	List(ctx context.Context) ([]*Screening, error)

	// Remove は上映をスケジュールから取り除く。コアのAPIは削除を公開しないが、
	// 外側のシェルが帯域外で上映を取り除くことを許容する
	Remove(ctx context.Context, id string) error
}
