package entities

import "time"

// PaymentIntentStatus mirrors the remote PaymentIntent lifecycle status.
type PaymentIntentStatus string

const (
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
)

// IsPending reports whether the remote service may still move the intent forward on its own.
func (s PaymentIntentStatus) IsPending() bool {
	switch s {
	case PaymentIntentStatusRequiresPaymentMethod,
		PaymentIntentStatusRequiresConfirmation,
		PaymentIntentStatusRequiresAction,
		PaymentIntentStatusRequiresCapture,
		PaymentIntentStatusProcessing:
		return true
	}
	return false
}

// PaymentIntent is a point-in-time view of a remote PaymentIntent.
//
// All identifiers are assigned by Stripe and treated as opaque strings.
// LatestCharge is only populated when the intent has been charged; its
// BalanceTransaction is only populated when retrieved with expansion.
type PaymentIntent struct {
	ID           string              `json:"id"`
	Status       PaymentIntentStatus `json:"status"`
	Amount       int64               `json:"amount"`
	Currency     string              `json:"currency"`
	Created      time.Time           `json:"created"`
	Description  string              `json:"description,omitempty"`
	CustomerID   string              `json:"customer_id,omitempty"`
	LatestCharge *Charge             `json:"latest_charge,omitempty"`
}

// HasBalanceTransaction reports whether the expanded charge carries its balance transaction.
func (p PaymentIntent) HasBalanceTransaction() bool {
	return p.LatestCharge != nil && p.LatestCharge.BalanceTransaction != nil
}

// Charge is the latest charge attached to a PaymentIntent.
type Charge struct {
	ID                 string              `json:"id"`
	Created            time.Time           `json:"created"`
	BalanceTransaction *BalanceTransaction `json:"balance_transaction,omitempty"`
}

// BalanceTransaction carries the amounts computed remotely for a charge.
//
// Gross, fee and net are copied from the remote object as-is; nothing here
// recomputes fees.
type BalanceTransaction struct {
	ID          string      `json:"id"`
	Amount      int64       `json:"amount"`
	Fee         int64       `json:"fee"`
	Net         int64       `json:"net"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	AvailableOn time.Time   `json:"available_on"`
	FeeDetails  []FeeDetail `json:"fee_details,omitempty"`
}

type FeeDetail struct {
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}
