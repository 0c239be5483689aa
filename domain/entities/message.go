package entities

// MailMessage is the outbound email handed to the mail transport.
type MailMessage struct {
	To          string           `json:"to"`
	Subject     string           `json:"subject"`
	TextBody    string           `json:"text_body"`
	HTMLBody    string           `json:"html_body"`
	Attachments []MailAttachment `json:"attachments"`
}

type MailAttachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

// OrderPaidEvent is the payment-confirmation trigger consumed from the queue.
// Payment state itself is computed upstream; this service trusts the event.
type OrderPaidEvent struct {
	OrderID       string          `json:"order_id"`
	RefID         string          `json:"ref_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Amount        float64         `json:"amount"`
	LineItems     []OrderLineItem `json:"line_items"`
}
