package telegram

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"vouchers-system/domain/entities"
)

func SendFulfilledInfo(order entities.OrderEntity, codes []string) string {
	return fmt.Sprintf("✅ Order %v fulfilled \nBuyer: %v <%v> \nAmount: €%v \nVouchers: %v \nCodes: %v",
		order.OrderID,
		order.CustomerName,
		order.CustomerEmail,
		humanize.CommafWithDigits(order.Amount, 2),
		len(codes),
		strings.Join(codes, ", "),
	)
}

func SendDeliveryFailedInfo(order entities.OrderEntity, reason string) string {
	return fmt.Sprintf("⚠️ Voucher delivery failed for order %v \nBuyer: %v <%v> \nReason: %v \nVouchers stay queued for the retry job",
		order.OrderID,
		order.CustomerName,
		order.CustomerEmail,
		reason,
	)
}
