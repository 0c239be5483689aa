package test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vouchers-system/domain/entities"
)

func TestVoucherApplication_ConsumerProductSync(t *testing.T) {
	t.Run("test-case-1 catalogue row is mirrored into the product store", func(t *testing.T) {
		th := NewTestVoucherApplication()

		product := entities.Product{Id: "prod-voucher", Name: "Memorial Tribute Voucher", Price: 49.90, IsVoucher: true}
		payload, _ := json.Marshal(product)

		var stored *entities.Product
		th.ProductRepository.On("Upsert", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*entities.Product) }).
			Return(func(ctx context.Context, e *entities.Product) *entities.Product { return e }, nil)

		err := th.VoucherApplication.ConsumerProductSync(payload)

		assert.NoError(t, err)
		th.ProductRepository.AssertNumberOfCalls(t, "Upsert", 1)
		assert.Equal(t, product.Id, stored.Id)
		assert.Equal(t, product.Name, stored.Name)
		assert.Equal(t, product.Price, stored.Price)
		assert.True(t, stored.IsVoucher)
	})

	t.Run("test-case-2 payload without a product id is dropped without requeue", func(t *testing.T) {
		th := NewTestVoucherApplication()

		err := th.VoucherApplication.ConsumerProductSync([]byte(`{"name":"Candles"}`))

		assert.NoError(t, err)
		th.ProductRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("test-case-3 malformed payload is dropped without requeue", func(t *testing.T) {
		th := NewTestVoucherApplication()

		err := th.VoucherApplication.ConsumerProductSync([]byte("{not-json"))

		assert.NoError(t, err)
		th.ProductRepository.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
