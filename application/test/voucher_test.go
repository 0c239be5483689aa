package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/utils/helpers"
)

func TestVoucherApplication_RedeemVoucher(t *testing.T) {
	ctx := context.TODO()

	tests := []struct {
		name      string
		code      string
		wantError error
		fd        func(th *MockService)
	}{
		{
			name: "test-case-1 emailed voucher redeems once",
			code: "DEADBEEF",
			fd: func(th *MockService) {
				th.IssueRepository.On("RedeemByCode", mock.Anything, "DEADBEEF").
					Return(&entities.VoucherIssue{Id: "i-1", Code: "DEADBEEF", Status: entities.IssueRedeemed, RedeemedAt: helpers.GetCurrentTime()}, nil)
				th.Mqtt.On("Publish", mock.Anything, mock.Anything, false, mock.Anything).Return(nil)
			},
		},
		{
			name:      "test-case-2 second redemption loses the race",
			code:      "DEADBEEF",
			wantError: errors.ErrVoucherRedeemed,
			fd: func(th *MockService) {
				th.IssueRepository.On("RedeemByCode", mock.Anything, "DEADBEEF").
					Return(nil, errors.ErrVoucherRedeemed)
			},
		},
		{
			name:      "test-case-3 expired voucher is refused",
			code:      "0BADC0DE",
			wantError: errors.ErrVoucherExpired,
			fd: func(th *MockService) {
				th.IssueRepository.On("RedeemByCode", mock.Anything, "0BADC0DE").
					Return(nil, errors.ErrVoucherExpired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestVoucherApplication()
			tt.fd(th)

			issue, err := th.VoucherApplication.RedeemVoucher(ctx, tt.code)

			if tt.wantError != nil {
				assert.Equal(t, tt.wantError, err)
				assert.Nil(t, issue)
				return
			}

			assert.NoError(t, err)
			assert.True(t, issue.Status.IsRedeemed())
			assert.False(t, issue.RedeemedAt.IsZero())
		})
	}
}

func TestVoucherApplication_DeleteTemplate(t *testing.T) {
	ctx := context.TODO()

	t.Run("test-case-1 default template cannot be removed", func(t *testing.T) {
		th := NewTestVoucherApplication()
		th.TemplateRepository.On("FindByID", mock.Anything, "tpl-1").
			Return(&entities.VoucherTemplate{Id: "tpl-1", IsDefault: true}, nil)

		err := th.VoucherApplication.DeleteTemplate(ctx, "tpl-1")

		assert.Equal(t, errors.ErrTemplateInUse, err)
		th.TemplateRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("test-case-2 non default template is removed", func(t *testing.T) {
		th := NewTestVoucherApplication()
		th.TemplateRepository.On("FindByID", mock.Anything, "tpl-2").
			Return(&entities.VoucherTemplate{Id: "tpl-2"}, nil)
		th.TemplateRepository.On("Delete", mock.Anything, "tpl-2").Return(nil)

		err := th.VoucherApplication.DeleteTemplate(ctx, "tpl-2")

		assert.NoError(t, err)
	})
}

func TestVoucherApplication_JobRetryFailedDeliveries(t *testing.T) {
	t.Run("test-case-1 parked vouchers of one order go out in one mail", func(t *testing.T) {
		th := NewTestVoucherApplication()

		orderDto := voucherOrder()
		orderDto.Status = entities.FulfillmentFulfilled

		parked := []*entities.VoucherIssue{
			{Id: "i-1", OrderID: orderDto.OrderID, LineItem: 0, Unit: 1, Code: "AAAA1111", ProductName: "Memorial Tribute Voucher", Amount: 49.90, Status: entities.IssueDeliveryFailed, ExpiresAt: orderDto.CreatedAt.AddDate(1, 0, 0)},
			{Id: "i-2", OrderID: orderDto.OrderID, LineItem: 0, Unit: 2, Code: "BBBB2222", ProductName: "Memorial Tribute Voucher", Amount: 49.90, Status: entities.IssueDeliveryFailed, ExpiresAt: orderDto.CreatedAt.AddDate(1, 0, 0)},
		}

		th.IssueRepository.On("GetDeliveryFailed", mock.Anything).Return(parked, nil)
		th.OrderRepository.On("FindByOrderID", mock.Anything, orderDto.OrderID).Return(orderDto, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, nil)
		th.IssueRepository.On("ReplaceByID", mock.Anything, mock.Anything).
			Return(func(ctx context.Context, e *entities.VoucherIssue) *entities.VoucherIssue { return e }, nil)

		var sentMail entities.MailMessage
		th.Mailer.On("Send", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sentMail = args.Get(1).(entities.MailMessage) }).
			Return(nil).Times(1)

		th.VoucherApplication.JobRetryFailedDeliveries()

		th.Mailer.AssertNumberOfCalls(t, "Send", 1)
		assert.Len(t, sentMail.Attachments, 2)
		assert.True(t, parked[0].Status.IsEmailed())
		assert.True(t, parked[1].Status.IsEmailed())
	})

	t.Run("test-case-2 send failure keeps vouchers parked", func(t *testing.T) {
		th := NewTestVoucherApplication()

		orderDto := voucherOrder()
		parked := []*entities.VoucherIssue{
			{Id: "i-1", OrderID: orderDto.OrderID, Code: "AAAA1111", Status: entities.IssueDeliveryFailed, ExpiresAt: orderDto.CreatedAt.AddDate(1, 0, 0)},
		}

		th.IssueRepository.On("GetDeliveryFailed", mock.Anything).Return(parked, nil)
		th.OrderRepository.On("FindByOrderID", mock.Anything, orderDto.OrderID).Return(orderDto, nil)
		th.TemplateRepository.On("GetDefault", mock.Anything).Return(nil, nil)
		th.Mailer.On("Send", mock.Anything, mock.Anything).Return(errors.ErrGeneral)

		th.VoucherApplication.JobRetryFailedDeliveries()

		assert.True(t, parked[0].Status.IsDeliveryFailed())
		th.IssueRepository.AssertNotCalled(t, "ReplaceByID", mock.Anything, mock.Anything)
	})
}
