package main

import (
	"context"
	"net/http"
	"os"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// catalogd はストアフロントが起動時に取りに来る商品一覧エンドポイント。
// 商品データの出どころはここだけ（ストアフロント本体はDBを持たない）。
func main() {
	_ = godotenv.Load()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		panic(err)
	}

	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)

	//空なら初期データを入れる
	if err := catalogRepo.SeedIfEmpty(context.Background(), seedProducts()); err != nil {
		panic(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.GET("/products", func(c echo.Context) error {
		products, err := catalogRepo.ListAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}
		return c.JSON(http.StatusOK, products)
	})

	addr := ":9090"
	if v := os.Getenv("CATALOGD_PORT"); v != "" {
		if v[0] != ':' {
			addr = ":" + v
		} else {
			addr = v
		}
	}

	if err := e.Start(addr); err != nil {
		panic(err)
	}
}

func seedProducts() []model.Product {
	return []model.Product{
		{Name: "Cyan Lamp", PriceInCents: 4999, ImageURL: "https://images.vibe.example/cyan-lamp.jpg"},
		{Name: "Green Chair", PriceInCents: 12900, ImageURL: "https://images.vibe.example/green-chair.jpg"},
		{Name: "Quantum Desk Lamp", PriceInCents: 8900, ImageURL: "https://images.vibe.example/quantum-desk-lamp.jpg"},
		{Name: "Void Table", PriceInCents: 25000, ImageURL: "https://images.vibe.example/void-table.jpg"},
		{Name: "Neon Shelf", PriceInCents: 15800, ImageURL: "https://images.vibe.example/neon-shelf.jpg"},
		{Name: "Plasma Sofa", PriceInCents: 89900, ImageURL: "https://images.vibe.example/plasma-sofa.jpg"},
		{Name: "Orbit Stool", PriceInCents: 6500, ImageURL: "https://images.vibe.example/orbit-stool.jpg"},
		{Name: "Flux Mirror", PriceInCents: 11200, ImageURL: "https://images.vibe.example/flux-mirror.jpg"},
	}
}
