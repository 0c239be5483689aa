package application

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"vouchers-system/domain/constants"
	"vouchers-system/domain/entities"
	"vouchers-system/errors"
)

func (us *VoucherApplication) RegisterConsumers() {
	if us.Queue == nil {
		return
	}

	_ = us.Queue.WithConsumerQueue(us.ConsumerOrderPaid, constants.QueueOrderPaid, true)
	_ = us.Queue.WithConsumerQueue(us.ConsumerProductSync, constants.QueueProductSync, true)
}

// ConsumerProductSync mirrors one storefront catalogue row into the local
// product store so line items can be priced and flagged at fulfillment time.
func (us *VoucherApplication) ConsumerProductSync(msg []byte) error {
	product := &entities.Product{}

	err := json.Unmarshal(msg, product)
	if err != nil || product.Id == "" {
		us.Logger.With(zap.ByteString("value", msg)).Error("product_sync_decode_err", zap.Error(err))
		// poison message, do not requeue
		return nil
	}

	_, err = us.ProductRepository.Upsert(context.Background(), product)
	if err != nil {
		us.Logger.Error("product_sync_upsert_err", zap.String("product_id", product.Id), zap.Error(err))
	}

	return err
}

// ConsumerOrderPaid handles one payment confirmation from the storefront.
// The order is recorded if this is the first time we see it, then handed to
// the fulfillment pipeline. Replays of already fulfilled orders are dropped
// so redelivered messages never double-issue vouchers.
func (us *VoucherApplication) ConsumerOrderPaid(msg []byte) error {
	event := &entities.OrderPaidEvent{}

	err := json.Unmarshal(msg, event)
	if err != nil {
		us.Logger.With(zap.ByteString("value", msg)).Error("order_paid_decode_err", zap.Error(err))
		// poison message, do not requeue
		return nil
	}

	us.Logger.With(zap.Reflect("value", event)).Info("order_paid_event")

	ctx := context.Background()

	orderDto, err := us.OrderRepository.FindByOrderID(ctx, event.OrderID)
	if err == errors.ErrOrderNotFound {
		orderDto, err = us.InitOrder(ctx, &entities.OrderEntity{
			OrderID:       event.OrderID,
			RefID:         event.RefID,
			CustomerName:  event.CustomerName,
			CustomerEmail: event.CustomerEmail,
			Amount:        event.Amount,
			LineItems:     event.LineItems,
		})
	}
	if err != nil {
		us.Logger.Error("order_paid_init_err", zap.Error(err))
		return err
	}

	_, err = us.FulfillOrder(ctx, orderDto)
	if err == errors.ErrFulfilledOrder {
		us.Logger.With(zap.String("order_id", orderDto.OrderID)).Info("order_paid_replay_dropped")
		return nil
	}
	if err != nil {
		us.Logger.Error("fulfill_order_err", zap.String("order_id", orderDto.OrderID), zap.Error(err))
	}

	return err
}
