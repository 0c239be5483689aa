package constants

const (
	// QueueOrderPaid - storefront publishes one message per paid order.
	QueueOrderPaid = "voucher_order_paid"

	// QueueOrderFulfilled - fulfilled orders are echoed back for the storefront.
	QueueOrderFulfilled = "voucher_order_fulfilled"

	// QueueProductSync - storefront pushes catalogue rows it wants mirrored here.
	QueueProductSync = "voucher_product_sync"

	// TopicFulfillmentLog - kafka audit topic for saga step transitions.
	TopicFulfillmentLog = "voucher_fulfillment_log"

	// MQTT topics for storefront / ops dashboards.
	TopicMQTTOrderFulfilled  = "order_fulfilled"
	TopicMQTTDeliveryFailed  = "voucher_delivery_failed"
	TopicMQTTVoucherRedeemed = "voucher_redeemed"
)

const MQTTEventBackground = "background"
