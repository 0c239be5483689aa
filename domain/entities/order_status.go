package entities

// FulfillmentStatus tracks an order through the voucher pipeline.
type FulfillmentStatus string

const (
	FulfillmentUnknown    FulfillmentStatus = ""
	FulfillmentPending    FulfillmentStatus = "FULFILLMENT_PENDING"
	FulfillmentProcessing FulfillmentStatus = "FULFILLMENT_PROCESSING"
	FulfillmentFulfilled  FulfillmentStatus = "FULFILLMENT_FULFILLED"
	FulfillmentFailed     FulfillmentStatus = "FULFILLMENT_FAILED"
)

func (o FulfillmentStatus) StatusString() string {
	return string(o)
}

func (o *FulfillmentStatus) ConvertStatusOrderEntity(i FulfillmentStatus) FulfillmentStatus {
	*o = i
	return *o
}

func (o FulfillmentStatus) IsPending() bool {
	return o == FulfillmentPending
}

func (o FulfillmentStatus) IsProcessing() bool {
	return o == FulfillmentProcessing
}

func (o FulfillmentStatus) IsFulfilled() bool {
	return o == FulfillmentFulfilled
}

func (o FulfillmentStatus) IsFailed() bool {
	return o == FulfillmentFailed
}
