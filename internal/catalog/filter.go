package catalog

import (
	"strings"

	"storefront/internal/domain/model"
)

// Filter はカタログの絞り込み条件。
// Q は空白のみ・空文字なら「絞り込みなし」として全件一致させる。
// 価格境界は未指定（nil）と0を区別するためポインタにする。
type Filter struct {
	Q        string
	MinPrice *int64
	MaxPrice *int64
}

// Apply は一致する商品だけを元の順序のまま新しいスライスで返す。
// 入力スライスは変更しない。
func (f Filter) Apply(products []model.Product) []model.Product {
	q := strings.ToLower(strings.TrimSpace(f.Q))

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if f.MinPrice != nil && p.PriceInCents < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.PriceInCents > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}
