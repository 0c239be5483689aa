package application

import (
	"context"
	"fmt"
	"strings"

	"vouchers-system/domain/entities"
	"vouchers-system/utils/helpers"
	"vouchers-system/utils/shortcodes"
)

// buildResolver binds one issue plus its order into the values the template
// placeholders substitute to.
func (us *VoucherApplication) buildResolver(orderDto *entities.OrderEntity, issue *entities.VoucherIssue) *shortcodes.Resolver {
	message := ""
	if issue.LineItem < len(orderDto.LineItems) {
		message = orderDto.LineItems[issue.LineItem].Message
	}

	return shortcodes.NewResolver(shortcodes.OrderContext{
		Code:          issue.Code,
		CustomerName:  orderDto.CustomerName,
		CustomerEmail: orderDto.CustomerEmail,
		ProductName:   issue.ProductName,
		Amount:        issue.Amount,
		Message:       message,
		OrderDate:     orderDto.CreatedAt,
		ExpiryDate:    issue.ExpiresAt,
	})
}

// RenderVoucher regenerates the PDF for one issue with the current default
// template. Used by the retry job and the preview endpoint.
func (us *VoucherApplication) RenderVoucher(ctx context.Context, orderDto *entities.OrderEntity, issue *entities.VoucherIssue) (entities.MailAttachment, error) {
	template, err := us.TemplateRepository.GetDefault(ctx)
	if err != nil {
		return entities.MailAttachment{}, err
	}

	document, err := us.Renderer.Render(template, us.buildResolver(orderDto, issue))
	if err != nil {
		return entities.MailAttachment{}, err
	}

	return entities.MailAttachment{
		Filename: fmt.Sprintf("Voucher-%v.pdf", issue.Code),
		Content:  document,
	}, nil
}

// PreviewTemplate renders a template with sample values so admins can check
// a layout without placing an order.
func (us *VoucherApplication) PreviewTemplate(ctx context.Context, id string) ([]byte, error) {
	template, err := us.TemplateRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := helpers.GetCurrentTime()

	return us.Renderer.Render(template, shortcodes.NewResolver(shortcodes.OrderContext{
		Code:          "PREVIEW1",
		CustomerName:  "Sample Customer",
		CustomerEmail: "customer@example.com",
		ProductName:   "Sample Voucher",
		Amount:        49.90,
		Message:       "This is how a personal message will look.",
		OrderDate:     now,
		ExpiryDate:    now.AddDate(1, 0, 0),
	}))
}

func (us *VoucherApplication) buildVoucherMail(orderDto *entities.OrderEntity, attachments []entities.MailAttachment) entities.MailMessage {
	subject := fmt.Sprintf("Your %v voucher order %v", us.Config.Shop.Name, orderDto.OrderID)

	codes := strings.Join(orderDto.VoucherCodes(), ", ")

	textBody := fmt.Sprintf("Hi %v,\n\nThank you for your order. Your voucher documents are attached to this email.\n\nVoucher codes: %v\n\nEach voucher carries its own code and expiry date.\n\n%v\n%v",
		orderDto.CustomerName, codes, us.Config.Shop.Name, us.Config.Shop.BaseUri)

	htmlBody := fmt.Sprintf("<p>Hi %v,</p><p>Thank you for your order. Your voucher documents are attached to this email.</p><p>Voucher codes: <strong>%v</strong></p><p>Each voucher carries its own code and expiry date.</p><p>%v<br/><a href=%q>%v</a></p>",
		orderDto.CustomerName, codes, us.Config.Shop.Name, us.Config.Shop.BaseUri, us.Config.Shop.BaseUri)

	return entities.MailMessage{
		To:          orderDto.CustomerEmail,
		Subject:     subject,
		TextBody:    textBody,
		HTMLBody:    htmlBody,
		Attachments: attachments,
	}
}
