package main

import (
	"context"
	"log"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	infraCatalog "storefront/internal/infra/catalog"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/notify"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数だけ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//状態の置き場所（全部インメモリ、リロードで消える）
	sessions := infraRepo.NewSessionMemoryRepository()
	feed := notify.NewFeed()

	//カタログ取得元
	catalogClient := infraCatalog.NewClient(cfg.CatalogURL)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogClient, sessions, feed)
	cartUC := usecase.NewCartUsecase(sessions, catalogUC, feed, cfg.CheckoutDelay)
	selectionUC := usecase.NewSelectionUsecase(sessions, catalogUC, cartUC, cfg.AddToCartDelay)

	//起動時に1回だけカタログを取得。失敗してもリトライせず空のまま起動する
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := catalogUC.LoadCatalog(ctx); err != nil {
		log.Printf("catalog fetch failed: %v", err)
	}
	cancel()

	//Handler生成
	productH := handler.NewProductHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	selectionH := handler.NewSelectionHandler(selectionUC)
	notificationH := handler.NewNotificationHandler(feed)

	//Server起動
	e := server.New(cfg, sessions, productH, cartH, selectionH, notificationH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
