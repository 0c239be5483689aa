package shortcodes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testOrderContext() OrderContext {
	orderDate := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	return OrderContext{
		Code:          "A1B2C3D4",
		CustomerName:  "Aoife Byrne",
		CustomerEmail: "aoife@example.com",
		ProductName:   "Memorial Tribute Voucher",
		Amount:        49.90,
		Message:       "Happy Birthday",
		OrderDate:     orderDate,
		ExpiryDate:    orderDate.AddDate(1, 0, 0),
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		content string
		expect  string
	}{
		{
			name:    "test-case-1 every token replaced",
			content: "Code [voucher_code] coupon [coupon_code] for [product_name] worth [voucher_value], ordered [order_date] by [customer_name] <[customer_email]>, valid until [expiry_date]. [recipient_message]",
			expect:  "Code A1B2C3D4 coupon A1B2C3D4 for Memorial Tribute Voucher worth €49.90, ordered 14/03/2025 by Aoife Byrne <aoife@example.com>, valid until 14/03/2026. Happy Birthday",
		},
		{
			name:    "test-case-2 plain text untouched",
			content: "With deepest sympathy",
			expect:  "With deepest sympathy",
		},
		{
			name:    "test-case-3 repeated token replaced everywhere",
			content: "[voucher_code] / [voucher_code]",
			expect:  "A1B2C3D4 / A1B2C3D4",
		},
	}

	r := NewResolver(testOrderContext())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Resolve(tt.content)
			assert.Equal(t, tt.expect, out)

			for _, token := range All {
				if strings.Contains(out, string(token)) {
					t.Errorf("token %v left in output %v", token, out)
				}
			}
		})
	}
}

func TestResolver_MessageFallback(t *testing.T) {
	tests := []struct {
		name    string
		message string
		expect  string
	}{
		{
			name:    "test-case-1 empty message",
			message: "",
			expect:  "Dear Aoife Byrne, thank you for your purchase!",
		},
		{
			name:    "test-case-2 whitespace only message",
			message: "   \n\t ",
			expect:  "Dear Aoife Byrne, thank you for your purchase!",
		},
		{
			name:    "test-case-3 buyer message kept",
			message: "Happy Birthday",
			expect:  "Happy Birthday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			octx := testOrderContext()
			octx.Message = tt.message

			r := NewResolver(octx)
			assert.Equal(t, tt.expect, r.Value(TokenRecipientMessage))
		})
	}
}

func TestResolver_CurrencyFormat(t *testing.T) {
	octx := testOrderContext()
	octx.Amount = 49.90

	r := NewResolver(octx)
	assert.Equal(t, "€49.90", r.Value(TokenVoucherValue))
}
