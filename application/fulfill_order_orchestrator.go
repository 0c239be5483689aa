package application

import (
	"context"
	"fmt"

	"vouchers-system/domain/constants"
	"vouchers-system/domain/entities"
	"vouchers-system/errors"
	"vouchers-system/utils/gen_codes"
	"vouchers-system/utils/helpers"
	"vouchers-system/utils/saga"
	"vouchers-system/utils/telegram"
)

// FulfillOrder runs the voucher pipeline for one paid order: issue codes,
// render one PDF per voucher, email them, then mark the order fulfilled.
// Email delivery is best effort; a send failure parks the issues for the
// retry job instead of unwinding the order.
func (us *VoucherApplication) FulfillOrder(ctx context.Context, orderDto *entities.OrderEntity) (*entities.OrderEntity, error) {
	if orderDto.Status.IsFulfilled() {
		return orderDto, errors.ErrFulfilledOrder
	}

	sg := saga.NewSaga("FulfillVoucherOrder")

	var issueList []*entities.VoucherIssue
	var template *entities.VoucherTemplate
	var attachments []entities.MailAttachment
	var failReason string
	deliveryFailed := false

	err := sg.AddStep(&saga.Step{
		Name: "PROCESSING_ORDER",
		Func: func(c context.Context) (err error) {
			orderDto, err = us.ProcessingOrder(ctx, orderDto)
			return
		},
		CompensateFunc: func(c context.Context) (err error) {
			if !orderDto.Status.IsFailed() {
				orderDto.InternalErr = failReason
				_, _ = us.FailedOrder(ctx, orderDto)
			}
			return
		},
		Options: nil,
	})
	if err != nil {
		return orderDto, err
	}

	err = sg.AddStep(&saga.Step{
		Name: "INIT_ISSUES",
		Func: func(c context.Context) (err error) {
			issueList, err = us.initIssues(ctx, orderDto)
			if err != nil {
				failReason = err.Error()
				return
			}
			us.writeBackCodes(orderDto, issueList)
			return
		},
		CompensateFunc: func(c context.Context) (err error) {
			us.markIssues(ctx, issueList, entities.IssueFailed, failReason)
			return
		},
		Options: nil,
	})
	if err != nil {
		return orderDto, err
	}

	err = sg.AddStep(&saga.Step{
		Name: "RENDER_DOCUMENTS",
		Func: func(c context.Context) (err error) {
			// One template read per order; every voucher in the order
			// renders with the same layout.
			template, err = us.TemplateRepository.GetDefault(ctx)
			if err != nil {
				failReason = err.Error()
				return
			}

			for _, issue := range issueList {
				document, err := us.Renderer.Render(template, us.buildResolver(orderDto, issue))
				if err != nil {
					failReason = err.Error()
					return err
				}

				attachments = append(attachments, entities.MailAttachment{
					Filename: fmt.Sprintf("Voucher-%v.pdf", issue.Code),
					Content:  document,
				})

				issue.Status = entities.IssueRendered
				issue.UpdatedAt = helpers.GetCurrentTime()
				if _, err = us.IssueRepository.ReplaceByID(ctx, issue); err != nil {
					failReason = err.Error()
					return err
				}
			}
			return
		},
		CompensateFunc: func(c context.Context) (err error) {
			us.markIssues(ctx, issueList, entities.IssueFailed, failReason)
			return
		},
		Options: nil,
	})
	if err != nil {
		return orderDto, err
	}

	err = sg.AddStep(&saga.Step{
		Name: "DELIVER_EMAIL",
		Func: func(c context.Context) (err error) {
			sendErr := us.Mailer.Send(ctx, us.buildVoucherMail(orderDto, attachments))
			if sendErr != nil {
				deliveryFailed = true
				us.markIssues(ctx, issueList, entities.IssueDeliveryFailed, sendErr.Error())

				us.IPool.Submit(func() {
					_ = us.Notifier.Send(telegram.SendDeliveryFailedInfo(*orderDto, sendErr.Error()), us.Config.Telegram.ChannelId.Ops)
				})
				_ = us.CreateMessageMqtt(context.TODO(), constants.TopicMQTTDeliveryFailed, constants.MQTTEventBackground, orderDto.OrderID, orderDto, false)

				// Issues stay parked as delivery_failed for the retry job.
				return nil
			}

			us.markIssues(ctx, issueList, entities.IssueEmailed, "")
			return
		},
		CompensateFunc: func(c context.Context) (err error) {
			return
		},
		Options: &saga.Options{SkipCompensateOnError: true},
	})
	if err != nil {
		return orderDto, err
	}

	err = sg.AddStep(&saga.Step{
		Name: "SUCCESS_ORDER",
		Func: func(c context.Context) (err error) {
			orderDto, err = us.FulfilledOrder(ctx, orderDto, !deliveryFailed)
			return
		},
		CompensateFunc: func(c context.Context) (err error) {
			if !orderDto.Status.IsFailed() {
				orderDto.InternalErr = failReason
				_, _ = us.FailedOrder(ctx, orderDto)
			}
			return
		},
		Options: nil,
	})
	if err != nil {
		return orderDto, err
	}

	ordinator := saga.NewCoordinator(ctx, ctx, sg, us.LogSaga, us.auditSink())
	rg := ordinator.Play()
	err = rg.ExecutionError
	return orderDto, err
}

// initIssues creates one pending voucher issue per unit of every voucher line
// item, each with a fresh code and a twelve month expiry from the order date.
func (us *VoucherApplication) initIssues(ctx context.Context, orderDto *entities.OrderEntity) (issueList []*entities.VoucherIssue, err error) {
	for index, item := range orderDto.LineItems {
		product, err := us.ProductRepository.FindByID(ctx, item.ProductID)
		if err != nil {
			return issueList, err
		}

		if !product.IsVoucher {
			continue
		}

		for unit := int64(1); unit <= item.Quantity; unit++ {
			code, err := gen_codes.NewVoucherCode()
			if err != nil {
				return issueList, err
			}

			issue, err := us.IssueRepository.Create(ctx, &entities.VoucherIssue{
				Id:          helpers.GetUUId(),
				OrderID:     orderDto.OrderID,
				LineItem:    index,
				Unit:        unit,
				Code:        code,
				ProductName: product.Name,
				Amount:      product.Price,
				Status:      entities.IssuePending,
				ExpiresAt:   orderDto.CreatedAt.AddDate(1, 0, 0),
				CreatedAt:   helpers.GetCurrentTime(),
				UpdatedAt:   helpers.GetCurrentTime(),
			})
			if err != nil {
				return issueList, err
			}

			issueList = append(issueList, issue)
		}
	}

	if len(issueList) == 0 {
		return issueList, errors.ErrNoVoucherItems
	}

	return issueList, nil
}

// writeBackCodes copies issued codes into the order line item metadata so the
// storefront can show them next to the order.
func (us *VoucherApplication) writeBackCodes(orderDto *entities.OrderEntity, issueList []*entities.VoucherIssue) {
	for index := range orderDto.LineItems {
		orderDto.LineItems[index].Metadata.VoucherCodes = nil
	}
	for _, issue := range issueList {
		if issue.LineItem < len(orderDto.LineItems) {
			orderDto.LineItems[issue.LineItem].Metadata.VoucherCodes = append(orderDto.LineItems[issue.LineItem].Metadata.VoucherCodes, issue.Code)
		}
	}
}
