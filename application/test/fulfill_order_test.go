package test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vouchers-system/domain/constants"
	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/utils/helpers"
)

var codePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

func voucherOrder() *entities.OrderEntity {
	return &entities.OrderEntity{
		OrderID:       "VO21100001",
		CustomerName:  "Aoife Byrne",
		CustomerEmail: "aoife@example.com",
		Amount:        99.80,
		LineItems: []entities.OrderLineItem{
			{ProductID: "prod-voucher", Quantity: 2, Message: "Happy Birthday"},
		},
		Status:    entities.FulfillmentPending,
		CreatedAt: helpers.GetCurrentTime(),
	}
}

func passThroughRepos(th *MockService) {
	th.OrderRepository.On("ReplaceByID", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, e *entities.OrderEntity) *entities.OrderEntity { return e }, nil)
	th.IssueRepository.On("Create", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, e *entities.VoucherIssue) *entities.VoucherIssue { return e }, nil)
	th.IssueRepository.On("ReplaceByID", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, e *entities.VoucherIssue) *entities.VoucherIssue { return e }, nil)
}

func TestVoucherApplication_FulfillOrder(t *testing.T) {
	ctx := context.TODO()

	t.Run("test-case-1 fulfilled order with one voucher per unit", func(t *testing.T) {
		th := NewTestVoucherApplication()
		passThroughRepos(th)

		th.ProductRepository.On("FindByID", mock.Anything, "prod-voucher").
			Return(&entities.Product{Id: "prod-voucher", Name: "Memorial Tribute Voucher", Price: 49.90, IsVoucher: true}, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, nil)

		var sentMail entities.MailMessage
		th.Mailer.On("Send", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sentMail = args.Get(1).(entities.MailMessage) }).
			Return(nil).Times(1)
		th.Mqtt.On("Publish", mock.Anything, mock.Anything, false, mock.Anything).Return(nil)
		th.Notifier.On("Send", mock.Anything, mock.Anything).Return(nil)
		th.Queue.On("PublishToExchange", mock.Anything, constants.QueueOrderFulfilled).Return(nil)

		orderDto, err := th.VoucherApplication.FulfillOrder(ctx, voucherOrder())

		assert.NoError(t, err)
		assert.True(t, orderDto.Status.IsFulfilled())
		assert.False(t, orderDto.FulfilledAt.IsZero())

		codes := orderDto.VoucherCodes()
		assert.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		for _, code := range codes {
			assert.Regexp(t, codePattern, code)
		}

		assert.Equal(t, "aoife@example.com", sentMail.To)
		for _, code := range codes {
			assert.Contains(t, sentMail.TextBody, code)
			assert.Contains(t, sentMail.HTMLBody, code)
		}
		assert.Len(t, sentMail.Attachments, 2)
		for index, attachment := range sentMail.Attachments {
			assert.Equal(t, fmt.Sprintf("Voucher-%v.pdf", codes[index]), attachment.Filename)
			assert.NotEmpty(t, attachment.Content)
		}

		th.Mailer.AssertNumberOfCalls(t, "Send", 1)
		th.Queue.AssertCalled(t, "PublishToExchange", mock.Anything, constants.QueueOrderFulfilled)
	})

	t.Run("test-case-2 replayed fulfilled order is rejected before issuing", func(t *testing.T) {
		th := NewTestVoucherApplication()

		orderDto := voucherOrder()
		orderDto.Status = entities.FulfillmentFulfilled

		_, err := th.VoucherApplication.FulfillOrder(ctx, orderDto)

		assert.Equal(t, errors.ErrFulfilledOrder, err)
		th.IssueRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		th.Mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("test-case-3 template read failure fails the order and its issues", func(t *testing.T) {
		th := NewTestVoucherApplication()
		passThroughRepos(th)

		th.ProductRepository.On("FindByID", mock.Anything, "prod-voucher").
			Return(&entities.Product{Id: "prod-voucher", Name: "Memorial Tribute Voucher", Price: 49.90, IsVoucher: true}, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, errors.ErrGeneral)

		orderDto, err := th.VoucherApplication.FulfillOrder(ctx, voucherOrder())

		assert.Error(t, err)
		assert.True(t, orderDto.Status.IsFailed())
		th.Mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

		// compensation sweeps every created issue to failed
		failed := map[string]bool{}
		for _, call := range th.IssueRepository.Calls {
			if call.Method != "ReplaceByID" {
				continue
			}
			if issue := call.Arguments.Get(1).(*entities.VoucherIssue); issue.Status.IsFailed() {
				failed[issue.Id] = true
			}
		}
		assert.Len(t, failed, 2)
	})

	t.Run("test-case-4 delivery failure parks issues but fulfills the order", func(t *testing.T) {
		th := NewTestVoucherApplication()
		passThroughRepos(th)

		th.ProductRepository.On("FindByID", mock.Anything, "prod-voucher").
			Return(&entities.Product{Id: "prod-voucher", Name: "Memorial Tribute Voucher", Price: 49.90, IsVoucher: true}, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, nil)
		th.Mailer.On("Send", mock.Anything, mock.Anything).Return(errors.ErrGeneral)
		th.Mqtt.On("Publish", mock.Anything, mock.Anything, false, mock.Anything).Return(nil)
		th.Notifier.On("Send", mock.Anything, th.VoucherApplication.Config.Telegram.ChannelId.Ops).Return(nil).Times(1)
		th.Queue.On("PublishToExchange", mock.Anything, constants.QueueOrderFulfilled).Return(nil)

		orderDto, err := th.VoucherApplication.FulfillOrder(ctx, voucherOrder())

		assert.NoError(t, err)
		assert.True(t, orderDto.Status.IsFulfilled())

		parked := map[string]bool{}
		for _, call := range th.IssueRepository.Calls {
			if call.Method != "ReplaceByID" {
				continue
			}
			if issue := call.Arguments.Get(1).(*entities.VoucherIssue); issue.Status.IsDeliveryFailed() {
				parked[issue.Id] = true
			}
		}
		assert.Len(t, parked, 2)

		th.Notifier.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("test-case-5 order without voucher items fails", func(t *testing.T) {
		th := NewTestVoucherApplication()
		passThroughRepos(th)

		th.ProductRepository.On("FindByID", mock.Anything, "prod-voucher").
			Return(&entities.Product{Id: "prod-voucher", Name: "Candles", Price: 9.90, IsVoucher: false}, nil)

		orderDto, err := th.VoucherApplication.FulfillOrder(ctx, voucherOrder())

		assert.Equal(t, errors.ErrNoVoucherItems, err)
		assert.True(t, orderDto.Status.IsFailed())
	})
}
