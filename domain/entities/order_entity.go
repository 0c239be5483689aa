package entities

import "time"

// OrderEntity is the paid storefront order the fulfillment pipeline consumes.
// Line items are immutable once the order is recorded; only fulfillment fields
// change afterwards.
type OrderEntity struct {
	OrderID       string            `json:"order_id" bson:"order_id,omitempty"`
	RefID         string            `json:"ref_id" bson:"ref_id,omitempty"`
	CustomerName  string            `json:"customer_name" bson:"customer_name,omitempty"`
	CustomerEmail string            `json:"customer_email" bson:"customer_email,omitempty"`
	Amount        float64           `json:"amount" bson:"amount,omitempty"`
	LineItems     []OrderLineItem   `json:"line_items" bson:"line_items,omitempty"`
	Status        FulfillmentStatus `json:"status" bson:"status,omitempty"`
	FailReason    string            `json:"fail_reason" bson:"fail_reason,omitempty"`
	InternalErr   string            `json:"internal_err" bson:"internal_err,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at,omitempty"`
	FulfilledAt   time.Time         `json:"fulfilled_at" bson:"fulfilled_at,omitempty"`
}

type OrderLineItem struct {
	ProductID string           `json:"product_id" bson:"product_id"`
	Quantity  int64            `json:"quantity" bson:"quantity"`
	Message   string           `json:"message" bson:"message,omitempty"`
	Metadata  LineItemMetadata `json:"metadata" bson:"metadata,omitempty"`
}

// LineItemMetadata mirrors the storefront's order_items metadata blob; issued
// codes are written back here after fulfillment.
type LineItemMetadata struct {
	VoucherCodes []string `json:"voucher_codes" bson:"voucher_codes,omitempty"`
}

// VoucherCodes flattens every issued code on the order, line-item order kept.
func (o *OrderEntity) VoucherCodes() (codes []string) {
	for _, item := range o.LineItems {
		codes = append(codes, item.Metadata.VoucherCodes...)
	}
	return
}
