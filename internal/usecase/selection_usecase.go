package usecase

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// SelectionUsecase は詳細表示の選択と数量ステッパーの業務ロジック。
// 選択はカートの中身と独立（カートに無い商品も選択できる）。
type SelectionUsecase struct {
	sessionRepo repo.SessionRepository
	products    ProductFinder
	cart        *CartUsecase
	addDelay    time.Duration
}

func NewSelectionUsecase(
	sessionRepo repo.SessionRepository,
	products ProductFinder,
	cart *CartUsecase,
	addDelay time.Duration,
) *SelectionUsecase {
	return &SelectionUsecase{
		sessionRepo: sessionRepo,
		products:    products,
		cart:        cart,
		addDelay:    addDelay,
	}
}

type SelectionResponse struct {
	Selected *model.Product `json:"selected"`
	Quantity int64          `json:"quantity"`
}

func (u *SelectionUsecase) Get(ctx context.Context, sessionID string) (SelectionResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return SelectionResponse{Selected: s.Selected, Quantity: s.StepperQuantity}, nil
}

// Select は詳細表示を開く。開いたままでも選択を差し替えられる。
// ステッパーは開くたびに1へ戻す。
func (u *SelectionUsecase) Select(ctx context.Context, sessionID string, productID int64) (SelectionResponse, error) {
	if productID <= 0 {
		return SelectionResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindProduct(ctx, productID)
	if err == repo.ErrNotFound {
		return SelectionResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	s.Selected = &p
	s.StepperQuantity = 1
	if err := u.sessionRepo.Save(ctx, s); err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return SelectionResponse{Selected: s.Selected, Quantity: s.StepperQuantity}, nil
}

// Clear は詳細表示を閉じる。閉じているときに呼ばれても何もしない。
func (u *SelectionUsecase) Clear(ctx context.Context, sessionID string) (SelectionResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	if s.Selected != nil {
		s.Selected = nil
		if err := u.sessionRepo.Save(ctx, s); err != nil {
			return SelectionResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
		}
	}

	return SelectionResponse{Selected: nil, Quantity: s.StepperQuantity}, nil
}

// Increment はステッパーを+1。
func (u *SelectionUsecase) Increment(ctx context.Context, sessionID string) (SelectionResponse, error) {
	return u.step(ctx, sessionID, +1)
}

// Decrement はステッパーを-1。1未満にはしない（下限でのデクリメントはno-op）。
func (u *SelectionUsecase) Decrement(ctx context.Context, sessionID string) (SelectionResponse, error) {
	return u.step(ctx, sessionID, -1)
}

func (u *SelectionUsecase) step(ctx context.Context, sessionID string, delta int64) (SelectionResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return SelectionResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	if s.Selected == nil {
		return SelectionResponse{}, NewHTTPError(http.StatusBadRequest, "no selection")
	}

	q := s.StepperQuantity + delta
	if q < 1 {
		q = 1
	}

	if q != s.StepperQuantity {
		s.StepperQuantity = q
		if err := u.sessionRepo.Save(ctx, s); err != nil {
			return SelectionResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
		}
	}

	return SelectionResponse{Selected: s.Selected, Quantity: s.StepperQuantity}, nil
}

// AddSelectedToCart は詳細表示からのカート追加。
// 疑似待ちのあと追加し、成功したらステッパーを1に戻して詳細表示を閉じる。
func (u *SelectionUsecase) AddSelectedToCart(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	if s.Selected == nil {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "no selection")
	}

	if err := wait(ctx, u.addDelay); err != nil {
		return CartResponse{}, err
	}

	out, err := u.cart.AddToCart(ctx, sessionID, AddCartInput{
		ProductID: s.Selected.ID,
		Quantity:  s.StepperQuantity,
	})
	if err != nil {
		return CartResponse{}, err
	}

	// AddToCartがセッションを保存し直しているので取り直す
	s, err = u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	s.Selected = nil
	s.StepperQuantity = 1
	if err := u.sessionRepo.Save(ctx, s); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return out, nil
}
