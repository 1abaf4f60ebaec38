package unit

import (
	"context"
	"testing"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) FetchAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type ProductFinderMock struct{ mock.Mock }

func (m *ProductFinderMock) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) Success(sessionID string, message string) {
	m.Called(sessionID, message)
}

func (m *NotifierMock) Error(sessionID string, message string) {
	m.Called(sessionID, message)
}

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", substr)
	}
	assert.Contains(t, err.Error(), substr)
}
