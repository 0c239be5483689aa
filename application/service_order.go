package application

import (
	"context"

	"vouchers-system/domain/constants"
	"vouchers-system/domain/entities"
	"vouchers-system/utils/helpers"
	"vouchers-system/utils/telegram"
)

func (us *VoucherApplication) FindOrderByID(ctx context.Context, orderID string) (*entities.OrderEntity, error) {
	return us.OrderRepository.FindByOrderID(ctx, orderID)
}

func (us *VoucherApplication) InitOrder(ctx context.Context, orderDto *entities.OrderEntity) (*entities.OrderEntity, error) {
	orderDto.CreatedAt = helpers.GetCurrentTime()
	orderDto.UpdatedAt = orderDto.CreatedAt
	orderDto.Status.ConvertStatusOrderEntity(entities.FulfillmentPending)

	return us.OrderRepository.Create(ctx, orderDto)
}

func (us *VoucherApplication) ProcessingOrder(ctx context.Context, orderDto *entities.OrderEntity) (*entities.OrderEntity, error) {
	orderDto.Status.ConvertStatusOrderEntity(entities.FulfillmentProcessing)
	orderDto.UpdatedAt = helpers.GetCurrentTime()

	return us.OrderRepository.ReplaceByID(ctx, orderDto)
}

// FulfilledOrder closes the order out. The fulfilled notification is skipped
// when notify is false, which the pipeline uses after a delivery failure so
// the ops channel only sees the failure alert.
func (us *VoucherApplication) FulfilledOrder(ctx context.Context, orderDto *entities.OrderEntity, notify bool) (*entities.OrderEntity, error) {
	orderDto.Status.ConvertStatusOrderEntity(entities.FulfillmentFulfilled)
	orderDto.UpdatedAt = helpers.GetCurrentTime()
	orderDto.FulfilledAt = orderDto.UpdatedAt

	fulfilledOrder, err := us.OrderRepository.ReplaceByID(ctx, orderDto)
	if err != nil {
		return fulfilledOrder, err
	}

	if us.Queue != nil {
		_ = us.Queue.PublishToExchange(orderDto, constants.QueueOrderFulfilled)
	}

	if notify {
		us.IPool.Submit(func() {
			_ = us.sendFulfilledOrderTelegram(orderDto)
		})
		_ = us.CreateMessageMqtt(context.TODO(), constants.TopicMQTTOrderFulfilled, constants.MQTTEventBackground, orderDto.OrderID, orderDto, false)
	}

	return fulfilledOrder, nil
}

func (us *VoucherApplication) FailedOrder(ctx context.Context, orderDto *entities.OrderEntity) (*entities.OrderEntity, error) {
	orderDto.Status.ConvertStatusOrderEntity(entities.FulfillmentFailed)
	orderDto.UpdatedAt = helpers.GetCurrentTime()

	return us.OrderRepository.ReplaceByID(ctx, orderDto)
}

func (us *VoucherApplication) sendFulfilledOrderTelegram(orderDto *entities.OrderEntity) error {
	orderInfoSend := telegram.SendFulfilledInfo(*orderDto, orderDto.VoucherCodes())

	return us.Notifier.Send(orderInfoSend, us.Config.Telegram.ChannelId.Fulfillment)
}
