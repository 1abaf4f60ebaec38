package model

// カートの明細。
// ID は商品IDと同じ（同一商品につき明細は1行だけ）。
// Quantity は明細が存在する間は常に1以上。0になったら明細ごと削除する。
type CartItem struct {
	ID       int64   `json:"id"`
	Quantity int64   `json:"quantity"`
	Product  Product `json:"product"`
}
