package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// セッション状態の保存・取得だけを約束。
// 実装はコピーを返すこと（呼び出し側の変更はSaveするまで反映されない）。
type SessionRepository interface {
	Create(ctx context.Context, id string) (model.Session, error)
	FindByID(ctx context.Context, id string) (model.Session, error)
	Save(ctx context.Context, s model.Session) error
}
