package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	infraCatalog "storefront/internal/infra/catalog"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/notify"
	"storefront/internal/server"
	"storefront/internal/usecase"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// newTestServer はアプリ一式をインプロセスで起動して接続済みクライアントを返す。
// カタログ取得元もhttptestで立てる（upstreamがnilなら標準の商品リスト）。
func newTestServer(t *testing.T, upstream *httptest.Server) *TestClient {
	t.Helper()

	if upstream == nil {
		upstream = newCatalogUpstream(t, seedProducts())
	}

	cfg := config.Config{
		Port:          "0",
		CatalogURL:    upstream.URL + "/products",
		SessionSecret: "test_secret",
		GoEnv:         "test",

		// テストでは疑似待ちをほぼ無しにする
		AddToCartDelay: time.Millisecond,
		CheckoutDelay:  time.Millisecond,
	}

	sessions := infraRepo.NewSessionMemoryRepository()
	feed := notify.NewFeed()
	catalogClient := infraCatalog.NewClient(cfg.CatalogURL)

	catalogUC := usecase.NewCatalogUsecase(catalogClient, sessions, feed)
	cartUC := usecase.NewCartUsecase(sessions, catalogUC, feed, cfg.CheckoutDelay)
	selectionUC := usecase.NewSelectionUsecase(sessions, catalogUC, cartUC, cfg.AddToCartDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// 取得失敗は起動を止めない（通知経由でユーザーに伝わる）
	_ = catalogUC.LoadCatalog(ctx)

	e := server.New(
		cfg,
		sessions,
		handler.NewProductHandler(catalogUC),
		handler.NewCartHandler(cartUC),
		handler.NewSelectionHandler(selectionUC),
		handler.NewNotificationHandler(feed),
	)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New failed: %v", err)
	}

	return &TestClient{
		BaseURL: strings.TrimRight(srv.URL, "/"),
		HTTP: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

func newCatalogUpstream(t *testing.T, products []model.Product) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(products)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newFailingUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func seedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Cyan Lamp", PriceInCents: 4999, ImageURL: "https://images.vibe.example/cyan-lamp.jpg"},
		{ID: 2, Name: "Green Chair", PriceInCents: 12900, ImageURL: "https://images.vibe.example/green-chair.jpg"},
		{ID: 3, Name: "Quantum Desk Lamp", PriceInCents: 8900, ImageURL: "https://images.vibe.example/quantum-desk-lamp.jpg"},
		{ID: 4, Name: "Void Table", PriceInCents: 25000, ImageURL: "https://images.vibe.example/void-table.jpg"},
	}
}

// =====================
// レスポンスDTO
// =====================

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PriceInCents int64  `json:"price_in_cents"`
	ImageURL     string `json:"image_url"`
}

type ProductListResponse struct {
	Items   []ProductDTO `json:"items"`
	Total   int          `json:"total"`
	Query   string       `json:"query"`
	Loading bool         `json:"loading"`
}

type CartItemDTO struct {
	ID       int64      `json:"id"`
	Quantity int64      `json:"quantity"`
	Product  ProductDTO `json:"product"`
}

type CartResponse struct {
	Items          []CartItemDTO `json:"items"`
	Count          int64         `json:"count"`
	Total          int64         `json:"total"`
	TotalFormatted string        `json:"total_formatted"`
}

type CartSummaryResponse struct {
	Count          int64  `json:"count"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

type CheckoutResponse struct {
	Message        string `json:"message"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

type SelectionResponse struct {
	Selected *ProductDTO `json:"selected"`
	Quantity int64       `json:"quantity"`
}

type NotificationDTO struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type NotificationListResponse struct {
	Items []NotificationDTO `json:"items"`
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type SelectRequest struct {
	ProductID int64 `json:"product_id"`
}

// =====================
// リクエストヘルパー
// =====================

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProductList(t *testing.T, body []byte) ProductListResponse {
	t.Helper()
	var v ProductListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ProductListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProduct(t *testing.T, body []byte) ProductDTO {
	t.Helper()
	var v ProductDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ProductDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCart(t *testing.T, body []byte) CartResponse {
	t.Helper()
	var v CartResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeSummary(t *testing.T, body []byte) CartSummaryResponse {
	t.Helper()
	var v CartSummaryResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartSummaryResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCheckout(t *testing.T, body []byte) CheckoutResponse {
	t.Helper()
	var v CheckoutResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CheckoutResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeSelection(t *testing.T, body []byte) SelectionResponse {
	t.Helper()
	var v SelectionResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(SelectionResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeNotifications(t *testing.T, body []byte) NotificationListResponse {
	t.Helper()
	var v NotificationListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(NotificationListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

func addToCart(t *testing.T, c *TestClient, ctx context.Context, productID int64, quantity int64) CartResponse {
	t.Helper()

	b, err := json.Marshal(AddCartRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		t.Fatalf("json.Marshal(AddCartRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/cart", b)
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecodeCart(t, body)
}

// 通知を読み捨てて空にする（後続のテストが前のトーストを拾わないように）
func drainNotifications(t *testing.T, c *TestClient, ctx context.Context) []NotificationDTO {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/notifications", nil)
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecodeNotifications(t, body).Items
}
