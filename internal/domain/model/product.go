package model

// カタログの商品。セッション中は不変（クライアント側で作成・更新しない）。
// PriceInCents は最小通貨単位（セント）。負にならないこと。
type Product struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	PriceInCents int64  `gorm:"not null;column:price_in_cents" json:"price_in_cents"`
	ImageURL     string `gorm:"type:text;column:image_url" json:"image_url"`
}
