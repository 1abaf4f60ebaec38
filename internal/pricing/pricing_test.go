package pricing

import (
	"testing"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$29.99", FormatPrice(2999))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$9.99", FormatPrice(999))
	assert.Equal(t, "$1.05", FormatPrice(105))
	assert.Equal(t, "$120.00", FormatPrice(12000))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), CartTotal(nil))
	assert.Equal(t, int64(0), CartTotal([]model.CartItem{}))
}

func TestCartTotal_SumOfPriceTimesQuantity(t *testing.T) {
	items := []model.CartItem{
		{ID: 1, Quantity: 3, Product: model.Product{ID: 1, PriceInCents: 999}},
		{ID: 2, Quantity: 1, Product: model.Product{ID: 2, PriceInCents: 2500}},
	}

	// 999*3 + 2500*1
	assert.Equal(t, int64(5497), CartTotal(items))
}

func TestItemCount_SumOfQuantities(t *testing.T) {
	items := []model.CartItem{
		{ID: 1, Quantity: 3, Product: model.Product{ID: 1}},
		{ID: 2, Quantity: 2, Product: model.Product{ID: 2}},
	}

	// 明細数（2）ではなく数量合計（5）
	assert.Equal(t, int64(5), ItemCount(items))
	assert.Equal(t, int64(0), ItemCount(nil))
}
