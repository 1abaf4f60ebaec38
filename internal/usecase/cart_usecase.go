package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/notify"
	"storefront/internal/pricing"
	repo "storefront/internal/repository"
)

// ProductFinder はカタログから商品を引くための口（CatalogUsecaseが満たす）。
type ProductFinder interface {
	FindProduct(ctx context.Context, productID int64) (model.Product, error)
}

// CartUsecase はセッションのカート状態を扱う業務ロジック。
type CartUsecase struct {
	sessionRepo   repo.SessionRepository
	products      ProductFinder
	notifier      notify.Notifier
	checkoutDelay time.Duration
}

func NewCartUsecase(
	sessionRepo repo.SessionRepository,
	products ProductFinder,
	notifier notify.Notifier,
	checkoutDelay time.Duration,
) *CartUsecase {
	return &CartUsecase{
		sessionRepo:   sessionRepo,
		products:      products,
		notifier:      notifier,
		checkoutDelay: checkoutDelay,
	}
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type CartResponse struct {
	Items          []model.CartItem `json:"items"`
	Count          int64            `json:"count"`
	Total          int64            `json:"total"`
	TotalFormatted string           `json:"total_formatted"`
}

type CheckoutResponse struct {
	Message        string `json:"message"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return buildCartResponse(s.CartItems), nil
}

// AddToCart はカートに追加（同一商品は数量加算、新規は末尾に追加）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.products.FindProduct(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	existing := -1
	for i, it := range s.CartItems {
		if it.ID == in.ProductID {
			existing = i
			break
		}
	}

	if existing >= 0 {
		s.CartItems[existing].Quantity += in.Quantity
		u.notifier.Success(sessionID, fmt.Sprintf("Updated %s quantity in cart", p.Name))
	} else {
		s.CartItems = append(s.CartItems, model.CartItem{
			ID:       p.ID,
			Quantity: in.Quantity,
			Product:  p,
		})
		u.notifier.Success(sessionID, fmt.Sprintf("Added %s to cart", p.Name))
	}

	if err := u.sessionRepo.Save(ctx, s); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return buildCartResponse(s.CartItems), nil
}

// UpdateCartItem は数量の絶対値セット。0なら明細削除と同じ。
// 該当明細がなければ何もしない（エラーにしない）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, sessionID string, itemID int64, quantity int64) (CartResponse, error) {
	if quantity < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if quantity == 0 {
		return u.RemoveFromCart(ctx, sessionID, itemID)
	}

	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	for i, it := range s.CartItems {
		if it.ID == itemID {
			s.CartItems[i].Quantity = quantity
			if err := u.sessionRepo.Save(ctx, s); err != nil {
				return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
			}
			break
		}
	}

	return buildCartResponse(s.CartItems), nil
}

// RemoveFromCart は明細を削除。残りの順序は保つ。
// 該当明細がなければ何もしない（エラーにしない）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, itemID int64) (CartResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	for i, it := range s.CartItems {
		if it.ID == itemID {
			u.notifier.Success(sessionID, fmt.Sprintf("Removed %s from cart", it.Product.Name))
			s.CartItems = append(s.CartItems[:i], s.CartItems[i+1:]...)
			if err := u.sessionRepo.Save(ctx, s); err != nil {
				return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
			}
			break
		}
	}

	return buildCartResponse(s.CartItems), nil
}

// Checkout は疑似決済。待つだけでカートは変更しない。
// キャンセルされたら処理せず打ち切る。
func (u *CartUsecase) Checkout(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	if len(s.CartItems) == 0 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	if err := wait(ctx, u.checkoutDelay); err != nil {
		return CheckoutResponse{}, err
	}

	total := pricing.CartTotal(s.CartItems)
	return CheckoutResponse{
		Message:        "checkout processed",
		Total:          total,
		TotalFormatted: pricing.FormatPrice(total),
	}, nil
}

// 明細からレスポンスを作る。合計・件数はその場で再計算する。
func buildCartResponse(items []model.CartItem) CartResponse {
	if items == nil {
		items = []model.CartItem{}
	}

	total := pricing.CartTotal(items)
	return CartResponse{
		Items:          items,
		Count:          pricing.ItemCount(items),
		Total:          total,
		TotalFormatted: pricing.FormatPrice(total),
	}
}
