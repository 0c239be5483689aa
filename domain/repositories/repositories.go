package repositories

import (
	"context"

	"vouchers-system/domain/entities"
)

type TemplateRepository interface {
	Create(ctx context.Context, entity *entities.VoucherTemplate) (*entities.VoucherTemplate, error)
	Update(ctx context.Context, entity *entities.VoucherTemplate) (*entities.VoucherTemplate, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entities.VoucherTemplate, error)
	List(ctx context.Context, limit, offset int64) ([]*entities.VoucherTemplate, error)
	// GetDefault returns (nil, nil) when no template is marked default;
	// the pipeline then falls back to the hard-coded layout.
	GetDefault(ctx context.Context) (*entities.VoucherTemplate, error)
	// SetDefault swaps the single default flag inside one transaction.
	SetDefault(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, entity *entities.OrderEntity) (*entities.OrderEntity, error)
	FindByOrderID(ctx context.Context, orderID string) (*entities.OrderEntity, error)
	ReplaceByID(ctx context.Context, entity *entities.OrderEntity) (*entities.OrderEntity, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	Upsert(ctx context.Context, entity *entities.Product) (*entities.Product, error)
}

type IssueRepository interface {
	Create(ctx context.Context, entity *entities.VoucherIssue) (*entities.VoucherIssue, error)
	ReplaceByID(ctx context.Context, entity *entities.VoucherIssue) (*entities.VoucherIssue, error)
	FindByCode(ctx context.Context, code string) (*entities.VoucherIssue, error)
	FindByOrderID(ctx context.Context, orderID string) ([]*entities.VoucherIssue, error)
	// GetDeliveryFailed feeds the delivery retry job; bounded batch.
	GetDeliveryFailed(ctx context.Context) ([]*entities.VoucherIssue, error)
	// RedeemByCode atomically flips an emailed, unexpired issue to redeemed.
	RedeemByCode(ctx context.Context, code string) (*entities.VoucherIssue, error)
}

type IQueue interface {
	PublishToExchange(msg interface{}, topic string) error
	WithConsumerQueue(fn func(msg []byte) error, queueName string, retry bool) error
}

type IMailer interface {
	Send(ctx context.Context, msg entities.MailMessage) error
}

type IMqtt interface {
	Publish(topic, message string, retain bool, prefix string) error
}

type INotifier interface {
	Send(message string, channelId int64) error
}
