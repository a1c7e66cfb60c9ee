package movie

import "context"

// Repository は映画カタログのインターフェース
type Repository interface {
	// Add は映画をカタログに追加する。同一タイトル（大文字小文字を区別しない）
	// かつ同一公開年の映画が既に存在する場合は何もしない（冪等）
	Add(ctx context.Context, movie *Movie) error

	// List は映画一覧を追加順で取得する
	List(ctx context.Context) ([]*Movie, error)

	// FindBySubstring はタイトルに部分文字列を含む映画を追加順で取得する
	// （大文字小文字を区別しない）
	FindBySubstring(ctx context.Context, query string) ([]*Movie, error)

	// FindByExactTitle はタイトルが完全一致する映画を追加順で取得する
	// （大文字小文字を区別しない。同名作品が複数ある場合はすべて返す）
	FindByExactTitle(ctx context.Context, title string) ([]*Movie, error)
}
