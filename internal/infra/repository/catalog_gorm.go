package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

// CatalogGormRepository はcatalogd側の商品テーブル。
// ストアフロント本体はここを直接見ず、HTTP経由で一覧を取得する。
type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// 全商品をID順で返す。
func (r *CatalogGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// テーブルが空のときだけ初期データを入れる。
func (r *CatalogGormRepository) SeedIfEmpty(ctx context.Context, products []model.Product) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range products {
		p := p
		if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
