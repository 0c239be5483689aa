package errors

import (
	"errors"
)

var (
	// ErrFulfilledOrder will throw if the order already went through the pipeline
	ErrFulfilledOrder   = errors.New("order has already been fulfilled")
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found for line item")
	ErrNoVoucherItems   = errors.New("order has no voucher line items")
	ErrTemplateNotFound = errors.New("voucher template not found")
	ErrTemplateInUse    = errors.New("default voucher template cannot be deleted")
	ErrVoucherNotFound  = errors.New("voucher code not found")
	ErrVoucherRedeemed  = errors.New("voucher code has already been redeemed")
	ErrVoucherExpired   = errors.New("voucher code has expired")
	ErrVoucherNotIssued = errors.New("voucher has not been delivered yet")
	ErrGeneral          = errors.New("something went wrong, please try again later")
)
