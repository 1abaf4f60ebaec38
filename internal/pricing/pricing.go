package pricing

import (
	"fmt"

	"storefront/internal/domain/model"
)

// FormatPrice はセント額を "$29.99" 形式にする。
func FormatPrice(priceInCents int64) string {
	return fmt.Sprintf("$%d.%02d", priceInCents/100, priceInCents%100)
}

// CartTotal は sum(単価 × 数量)。空カートは0。
// 合計は保存せず毎回ここで計算する（二重管理しない）。
func CartTotal(items []model.CartItem) int64 {
	var total int64 = 0
	for _, it := range items {
		total += it.Product.PriceInCents * it.Quantity
	}
	return total
}

// ItemCount は sum(数量)。バッジ表示用（明細行数ではない）。
func ItemCount(items []model.CartItem) int64 {
	var count int64 = 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
