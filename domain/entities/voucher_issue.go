package entities

import "time"

// VoucherIssue is one generated voucher code for one unit of one line item,
// persisted as a first-class redeemable record with its own per-step status.
type VoucherIssue struct {
	Id          string      `json:"id" bson:"_id"`
	OrderID     string      `json:"order_id" bson:"order_id"`
	LineItem    int         `json:"line_item" bson:"line_item"`
	Unit        int64       `json:"unit" bson:"unit"`
	Code        string      `json:"code" bson:"code"`
	ProductName string      `json:"product_name" bson:"product_name"`
	Amount      float64     `json:"amount" bson:"amount"`
	Status      IssueStatus `json:"status" bson:"status"`
	FailReason  string      `json:"fail_reason" bson:"fail_reason,omitempty"`
	ExpiresAt   time.Time   `json:"expires_at" bson:"expires_at"`
	RedeemedAt  time.Time   `json:"redeemed_at" bson:"redeemed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at,omitempty"`
}

// IssueStatus is the persisted step a voucher issue has reached:
// pending -> rendered -> emailed -> redeemed, with delivery_failed and failed
// as observable off-ramps (delivery_failed stays retryable).
type IssueStatus string

const (
	IssuePending        IssueStatus = "ISSUE_PENDING"
	IssueRendered       IssueStatus = "ISSUE_RENDERED"
	IssueEmailed        IssueStatus = "ISSUE_EMAILED"
	IssueDeliveryFailed IssueStatus = "ISSUE_DELIVERY_FAILED"
	IssueFailed         IssueStatus = "ISSUE_FAILED"
	IssueRedeemed       IssueStatus = "ISSUE_REDEEMED"
)

func (s IssueStatus) IsPending() bool        { return s == IssuePending }
func (s IssueStatus) IsRendered() bool       { return s == IssueRendered }
func (s IssueStatus) IsEmailed() bool        { return s == IssueEmailed }
func (s IssueStatus) IsDeliveryFailed() bool { return s == IssueDeliveryFailed }
func (s IssueStatus) IsFailed() bool         { return s == IssueFailed }
func (s IssueStatus) IsRedeemed() bool       { return s == IssueRedeemed }

// IsRedeemable - only delivered vouchers can be redeemed.
func (s IssueStatus) IsRedeemable() bool { return s == IssueEmailed }
