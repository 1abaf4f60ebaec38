package usecase

import (
	"context"
	"net/http"
	"sync"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
	"storefront/internal/notify"
	repo "storefront/internal/repository"
)

// CatalogUsecase は商品一覧の取得と検索の業務ロジック。
// カタログ本体はプロセスで1つ、検索クエリはセッションごとに持つ。
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
	sessionRepo repo.SessionRepository
	notifier    notify.Notifier

	mu       sync.RWMutex
	products []model.Product
	loading  bool
	fetchErr error
}

func NewCatalogUsecase(
	catalogRepo repo.CatalogRepository,
	sessionRepo repo.SessionRepository,
	notifier notify.Notifier,
) *CatalogUsecase {
	return &CatalogUsecase{
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
	}
}

// LoadCatalog は起動時に1回だけ呼ぶ。
// 失敗してもリトライしない。カタログは空のまま、各セッションに1回だけ通知する。
func (u *CatalogUsecase) LoadCatalog(ctx context.Context) error {
	u.mu.Lock()
	u.loading = true
	u.mu.Unlock()

	products, err := u.catalogRepo.FetchAll(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.loading = false

	if err != nil {
		u.fetchErr = err
		u.products = []model.Product{}
		return err
	}

	u.fetchErr = nil
	u.products = products
	return nil
}

// GET /products の入力DTO
type ListProductsInput struct {
	Query    string
	QuerySet bool // qパラメータが来たか（空文字の指定と未指定を区別する）
	MinPrice *int64
	MaxPrice *int64
}

type ProductListOutput struct {
	Items   []model.Product `json:"items"`
	Total   int             `json:"total"`
	Query   string          `json:"query"`
	Loading bool            `json:"loading"`
}

// ListProducts は現在のクエリでカタログを絞り込んで返す。
// qが指定されたらセッションのクエリを差し替えてから再導出する。
// 絞り込み結果は保存しない（毎回フルリストから導出）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, sessionID string, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Query) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}

	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	dirty := false
	if in.QuerySet && s.SearchQuery != in.Query {
		s.SearchQuery = in.Query
		dirty = true
	}

	u.mu.RLock()
	products := u.products
	loading := u.loading
	fetchErr := u.fetchErr
	u.mu.RUnlock()

	// 取得失敗はセッションごとに1回だけ通知する
	if fetchErr != nil && !s.FetchErrorNotified {
		u.notifier.Error(sessionID, "Failed to load products. Please refresh the page.")
		s.FetchErrorNotified = true
		dirty = true
	}

	if dirty {
		if err := u.sessionRepo.Save(ctx, s); err != nil {
			return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
		}
	}

	f := catalog.Filter{
		Q:        s.SearchQuery,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	}
	items := f.Apply(products)

	return ProductListOutput{
		Items:   items,
		Total:   len(items),
		Query:   s.SearchQuery,
		Loading: loading,
	}, nil
}

// FindProduct はカタログのスナップショットから商品を引く。
func (u *CatalogUsecase) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, p := range u.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.FindProduct(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	return p, nil
}
