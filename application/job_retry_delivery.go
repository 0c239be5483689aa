package application

import (
	"context"

	"go.uber.org/zap"

	"vouchers-system/domain/entities"
)

// JobRetryFailedDeliveries re-renders and re-sends vouchers whose email
// bounced at fulfillment time. Issues are grouped per order so a customer
// gets one mail per order, not one per voucher.
func (us *VoucherApplication) JobRetryFailedDeliveries() {
	ctx := context.Background()

	failedIssues, err := us.IssueRepository.GetDeliveryFailed(ctx)
	if err != nil {
		us.Logger.Error("get_delivery_failed_err", zap.Error(err))
		return
	}

	byOrder := map[string][]*entities.VoucherIssue{}
	for _, issue := range failedIssues {
		byOrder[issue.OrderID] = append(byOrder[issue.OrderID], issue)
	}

	for orderID, issueList := range byOrder {
		orderDto, err := us.OrderRepository.FindByOrderID(ctx, orderID)
		if err != nil {
			us.Logger.Error("retry_delivery_order_err", zap.String("order_id", orderID), zap.Error(err))
			continue
		}

		var attachments []entities.MailAttachment
		renderOk := true
		for _, issue := range issueList {
			attachment, err := us.RenderVoucher(ctx, orderDto, issue)
			if err != nil {
				us.Logger.Error("retry_delivery_render_err", zap.String("issue_id", issue.Id), zap.Error(err))
				renderOk = false
				break
			}
			attachments = append(attachments, attachment)
		}
		if !renderOk {
			continue
		}

		err = us.Mailer.Send(ctx, us.buildVoucherMail(orderDto, attachments))
		if err != nil {
			// still parked, next tick tries again
			us.Logger.Error("retry_delivery_send_err", zap.String("order_id", orderID), zap.Error(err))
			continue
		}

		us.markIssues(ctx, issueList, entities.IssueEmailed, "")

		us.Logger.With(zap.Int("vouchers", len(issueList))).Info("retry_delivery_sent", zap.String("order_id", orderID))
	}
}
