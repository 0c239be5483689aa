package shortcodes

import (
	"fmt"
	"strings"
	"time"

	"github.com/leekchan/accounting"
)

// Token is one placeholder a template author may embed in element content.
// The set is closed: substitution iterates this list, never scans free-form.
type Token string

const (
	TokenVoucherCode      Token = "[voucher_code]"
	TokenCouponCode       Token = "[coupon_code]"
	TokenRecipientMessage Token = "[recipient_message]"
	TokenExpiryDate       Token = "[expiry_date]"
	TokenProductName      Token = "[product_name]"
	TokenVoucherValue     Token = "[voucher_value]"
	TokenCustomerEmail    Token = "[customer_email]"
	TokenCustomerName     Token = "[customer_name]"
	TokenOrderDate        Token = "[order_date]"
)

var All = []Token{
	TokenVoucherCode,
	TokenCouponCode,
	TokenRecipientMessage,
	TokenExpiryDate,
	TokenProductName,
	TokenVoucherValue,
	TokenCustomerEmail,
	TokenCustomerName,
	TokenOrderDate,
}

const dateLayout = "02/01/2006"

// OrderContext carries the order-derived values one resolver substitutes.
type OrderContext struct {
	Code          string
	CustomerName  string
	CustomerEmail string
	ProductName   string
	Amount        float64
	Message       string
	OrderDate     time.Time
	ExpiryDate    time.Time
}

type Resolver struct {
	values map[Token]string
}

func NewResolver(octx OrderContext) *Resolver {
	ac := accounting.Accounting{Symbol: "€", Precision: 2}

	message := strings.TrimSpace(octx.Message)
	if message == "" {
		message = fmt.Sprintf("Dear %s, thank you for your purchase!", octx.CustomerName)
	}

	return &Resolver{values: map[Token]string{
		TokenVoucherCode:      octx.Code,
		TokenCouponCode:       octx.Code,
		TokenRecipientMessage: message,
		TokenExpiryDate:       octx.ExpiryDate.Format(dateLayout),
		TokenProductName:      octx.ProductName,
		TokenVoucherValue:     ac.FormatMoney(octx.Amount),
		TokenCustomerEmail:    octx.CustomerEmail,
		TokenCustomerName:     octx.CustomerName,
		TokenOrderDate:        octx.OrderDate.Format(dateLayout),
	}}
}

// Resolve replaces every token occurrence in content with its resolved value.
// Single pass by construction: the fixed token list is iterated, so a resolved
// value containing a token string is never substituted again.
func (r *Resolver) Resolve(content string) string {
	for _, token := range All {
		content = strings.ReplaceAll(content, string(token), r.values[token])
	}
	return content
}

// Value returns the resolved value of a single token.
func (r *Resolver) Value(token Token) string {
	return r.values[token]
}
