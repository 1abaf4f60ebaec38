package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品一覧の取得元（起動時に1回だけ呼ぶ）。
// 失敗は全体失敗として扱う（部分結果なし・自動リトライなし）。
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]model.Product, error)
}
