package usecase

import (
	"context"
	"time"
)

// 疑似バックエンド処理の待ち（将来のAPI呼び出しの置き場所）。
// キャンセルされたら待ちを打ち切ってctxのエラーを返す。
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
