package application

import (
	"context"

	"go.uber.org/zap"

	"vouchers-system/domain/constants"
	"vouchers-system/domain/entities"
	"vouchers-system/utils/helpers"
)

func (us *VoucherApplication) FindVoucherByCode(ctx context.Context, code string) (*entities.VoucherIssue, error) {
	return us.IssueRepository.FindByCode(ctx, code)
}

func (us *VoucherApplication) FindVouchersByOrderID(ctx context.Context, orderID string) ([]*entities.VoucherIssue, error) {
	return us.IssueRepository.FindByOrderID(ctx, orderID)
}

// RedeemVoucher burns a voucher code. The repository does the atomic
// emailed-and-unexpired check, so double redemptions lose the race cleanly.
func (us *VoucherApplication) RedeemVoucher(ctx context.Context, code string) (*entities.VoucherIssue, error) {
	issue, err := us.IssueRepository.RedeemByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	us.IPool.Submit(func() {
		_ = us.CreateMessageMqtt(context.TODO(), constants.TopicMQTTVoucherRedeemed, constants.MQTTEventBackground, issue.Code, issue, false)
	})

	return issue, nil
}

// markIssues is a best effort status sweep; a write failure on one issue is
// logged and must not block the others.
func (us *VoucherApplication) markIssues(ctx context.Context, issueList []*entities.VoucherIssue, status entities.IssueStatus, reason string) {
	for _, issue := range issueList {
		issue.Status = status
		issue.FailReason = reason
		issue.UpdatedAt = helpers.GetCurrentTime()

		if _, err := us.IssueRepository.ReplaceByID(ctx, issue); err != nil {
			us.Logger.Error("mark_issue_err", zap.String("issue_id", issue.Id), zap.Error(err))
		}
	}
}
