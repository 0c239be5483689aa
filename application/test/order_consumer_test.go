package test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
)

func TestVoucherApplication_ConsumerOrderPaid(t *testing.T) {
	event := entities.OrderPaidEvent{
		OrderID:       "VO21100002",
		CustomerName:  "Aoife Byrne",
		CustomerEmail: "aoife@example.com",
		Amount:        49.90,
		LineItems: []entities.OrderLineItem{
			{ProductID: "prod-voucher", Quantity: 1, Message: "With sympathy"},
		},
	}
	payload, _ := json.Marshal(event)

	t.Run("test-case-1 first delivery records the order and fulfills it", func(t *testing.T) {
		th := NewTestVoucherApplication()
		passThroughRepos(th)

		th.OrderRepository.On("FindByOrderID", mock.Anything, event.OrderID).Return(nil, errors.ErrOrderNotFound)
		th.OrderRepository.On("Create", mock.Anything, mock.Anything).
			Return(func(ctx context.Context, e *entities.OrderEntity) *entities.OrderEntity { return e }, nil)
		th.ProductRepository.On("FindByID", mock.Anything, "prod-voucher").
			Return(&entities.Product{Id: "prod-voucher", Name: "Memorial Tribute Voucher", Price: 49.90, IsVoucher: true}, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, nil)
		th.Mailer.On("Send", mock.Anything, mock.Anything).Return(nil)
		th.Mqtt.On("Publish", mock.Anything, mock.Anything, false, mock.Anything).Return(nil)
		th.Notifier.On("Send", mock.Anything, mock.Anything).Return(nil)
		th.Queue.On("PublishToExchange", mock.Anything, mock.Anything).Return(nil)

		err := th.VoucherApplication.ConsumerOrderPaid(payload)

		assert.NoError(t, err)
		th.OrderRepository.AssertCalled(t, "Create", mock.Anything, mock.Anything)
		th.Mailer.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("test-case-2 redelivery of a fulfilled order is dropped", func(t *testing.T) {
		th := NewTestVoucherApplication()

		th.OrderRepository.On("FindByOrderID", mock.Anything, event.OrderID).
			Return(&entities.OrderEntity{OrderID: event.OrderID, Status: entities.FulfillmentFulfilled}, nil)

		err := th.VoucherApplication.ConsumerOrderPaid(payload)

		assert.NoError(t, err)
		th.Mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("test-case-3 malformed payload is dropped without requeue", func(t *testing.T) {
		th := NewTestVoucherApplication()

		err := th.VoucherApplication.ConsumerOrderPaid([]byte("{not-json"))

		assert.NoError(t, err)
		th.OrderRepository.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
	})
}
