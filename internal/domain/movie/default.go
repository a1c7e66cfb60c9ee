package movie

// DefaultCatalog は初期カタログとして投入する10作品を返す。各作品は
// NewMovie を通して構築されるため、検証を通らないエントリは返されない
func DefaultCatalog() ([]*Movie, error) {
	seeds := []struct {
		title          string
		year           int
		director       string
		genres         []string
		actors         []string
		runtimeMinutes int
		rating         float64
	}{
		{"ショーシャンクの空に", 1994, "フランク・ダラボン", []string{"ドラマ"}, []string{"ティム・ロビンス", "モーガン・フリーマン"}, 142, 9.3},
		{"ゴッドファーザー", 1972, "フランシス・フォード・コッポラ", []string{"犯罪", "ドラマ"}, []string{"マーロン・ブランド", "アル・パチーノ"}, 175, 9.2},
		{"ダークナイト", 2008, "クリストファー・ノーラン", []string{"アクション", "犯罪", "ドラマ"}, []string{"クリスチャン・ベール", "ヒース・レジャー"}, 152, 9.0},
		{"パルプ・フィクション", 1994, "クエンティン・タランティーノ", []string{"犯罪", "ドラマ"}, []string{"ジョン・トラボルタ", "ユマ・サーマン", "サミュエル・L・ジャクソン"}, 154, 8.9},
		{"フォレスト・ガンプ 一期一会", 1994, "ロバート・ゼメキス", []string{"ドラマ", "ロマンス"}, []string{"トム・ハンクス", "ロビン・ライト"}, 142, 8.8},
		{"インセプション", 2010, "クリストファー・ノーラン", []string{"アクション", "アドベンチャー", "SF"}, []string{"レオナルド・ディカプリオ", "ジョセフ・ゴードン＝レヴィット"}, 148, 8.8},
		{"マトリックス", 1999, "ラナ・ウォシャウスキー", []string{"アクション", "SF"}, []string{"キアヌ・リーブス", "ローレンス・フィッシュバーン"}, 136, 8.7},
		{"ファイト・クラブ", 1999, "デヴィッド・フィンチャー", []string{"ドラマ"}, []string{"ブラッド・ピット", "エドワード・ノートン"}, 139, 8.8},
		{"グッドフェローズ", 1990, "マーティン・スコセッシ", []string{"伝記", "犯罪", "ドラマ"}, []string{"ロバート・デ・ニーロ", "レイ・リオッタ", "ジョー・ペシ"}, 146, 8.7},
		{"パラサイト 半地下の家族", 2019, "ポン・ジュノ", []string{"コメディ", "ドラマ", "スリラー"}, []string{"ソン・ガンホ", "イ・ソンギュン"}, 132, 8.6},
	}

	catalog := make([]*Movie, 0, len(seeds))
	for _, s := range seeds {
		m, err := NewMovie(s.title, s.year, s.director, s.genres, s.actors, s.runtimeMinutes, s.rating)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, m)
	}
	return catalog, nil
}
