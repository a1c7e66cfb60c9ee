package movie

import "errors"

// Movie ドメインのエラー定義
var (
	ErrMovieNotFound  = errors.New("映画が見つかりません")
	ErrAmbiguousTitle = errors.New("同じタイトルの映画が複数存在します")
	ErrTitleRequired  = errors.New("タイトルは必須です")
	ErrInvalidRating  = errors.New("評価は0から10の範囲である必要があります")
	ErrInvalidYear    = errors.New("公開年は1888年以降である必要があります")
	ErrInvalidRuntime = errors.New("上映時間は0以上である必要があります")
)
