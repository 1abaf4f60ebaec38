package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogURL    string // 商品一覧エンドポイント（例: http://localhost:9090/products）
	SessionSecret string // セッションCookieのJWT署名シークレット

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う。任意）

	// 疑似バックエンド処理の待ち時間（本物のAPI呼び出しの置き場所）
	AddToCartDelay time.Duration
	CheckoutDelay  time.Duration
}

// Loadは環境変数
func Load() (Config, error) {
	addDelayMS, err := atoiDefault("ADD_TO_CART_DELAY_MS", 600)
	if err != nil {
		return Config{}, err
	}
	checkoutDelayMS, err := atoiDefault("CHECKOUT_DELAY_MS", 2000)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		CatalogURL:    os.Getenv("CATALOG_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),

		AddToCartDelay: time.Duration(addDelayMS) * time.Millisecond,
		CheckoutDelay:  time.Duration(checkoutDelayMS) * time.Millisecond,
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.CatalogURL == "" {
		return Config{}, fmt.Errorf("CATALOG_URL is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	if i < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return i, nil
}
