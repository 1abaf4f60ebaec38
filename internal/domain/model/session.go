package model

import "time"

// 1ブラウザセッション分のストアフロント状態。
// カート・検索クエリ・詳細表示の選択をまとめて持つ。リロードで消える前提。
type Session struct {
	ID string `json:"id"`

	// カート明細（追加順を保つ。商品IDで一意）
	CartItems []CartItem `json:"cart_items"`

	// 現在の検索クエリ（空文字は「絞り込みなし」）
	SearchQuery string `json:"search_query"`

	// 詳細表示中の商品（nilなら閉じている）
	Selected *Product `json:"selected"`

	// 詳細表示の数量ステッパー（常に1以上）
	StepperQuantity int64 `json:"stepper_quantity"`

	// カタログ取得失敗をこのセッションに通知済みか
	FetchErrorNotified bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
