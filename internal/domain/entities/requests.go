package entities

// Operation inputs. The validate tags are enforced by usecase.Validate before
// any network call is made.

// PaymentRequest creates and auto-confirms a PaymentIntent with the test card.
type PaymentRequest struct {
	Amount   int64  `json:"amount" validate:"gt=0"`
	Currency string `json:"currency" validate:"required,len=3,alpha"`
}

type ListRequest struct {
	Limit int64 `json:"limit" validate:"gte=1,lte=100"`
}

type CustomerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type RefundRequest struct {
	PaymentIntentID string `json:"payment_id" validate:"required"`
}

// ChargeRefundRequest is what the gateway sends once the latest charge is known.
type ChargeRefundRequest struct {
	PaymentIntentID string
	ChargeID        string
}

type MethodListRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
	Limit      int64  `json:"limit" validate:"gte=1,lte=100"`
}

type PaymentDetailsRequest struct {
	PaymentIntentID string `json:"payment_id" validate:"required"`
}
