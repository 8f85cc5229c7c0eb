package request

import (
	"errors"
	"strconv"
	"strings"

	"stripe_testbed/internal/adapter/http/dto/response"
	"stripe_testbed/internal/domain/entities"
)

var (
	ErrInvalidMajorAmount = errors.New("invalid amount")
)

type CreatePaymentRequest struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency"`
}

func (r CreatePaymentRequest) ToEntity() entities.PaymentRequest {
	currency := r.Currency
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	return entities.PaymentRequest{Amount: r.Amount, Currency: currency}
}

type CreateCustomerRequest struct {
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CreateCustomerRequest) ToEntity() entities.CustomerRequest {
	return entities.CustomerRequest{Email: r.Email, Name: r.Name, Description: r.Description}
}

type CreateRefundRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

func (r CreateRefundRequest) ToEntity() entities.RefundRequest {
	return entities.RefundRequest{PaymentIntentID: r.PaymentID}
}

const DefaultCurrency = "chf"

// DashboardPaymentForm is posted by the dashboard with the amount in major
// units ("12.50").
type DashboardPaymentForm struct {
	Amount   string `form:"amount"`
	Currency string `form:"currency"`
}

func (f DashboardPaymentForm) ToEntity() (entities.PaymentRequest, error) {
	currency := strings.ToLower(strings.TrimSpace(f.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	minor, err := ParseMajorUnits(f.Amount, currency)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return entities.PaymentRequest{Amount: minor, Currency: currency}, nil
}

// ParseMajorUnits converts "12.5" into 1250 for a two-decimal currency without
// going through floating point. More fraction digits than the currency has is
// an error.
func ParseMajorUnits(s, currency string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidMajorAmount
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	digits := response.MinorUnitDigits(currency)
	if hasFrac && (frac == "" || len(frac) > digits || strings.Trim(frac, "0123456789") != "") {
		return 0, ErrInvalidMajorAmount
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidMajorAmount
	}
	frac += strings.Repeat("0", digits-len(frac))
	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidMajorAmount
		}
	}

	scale := int64(1)
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	if w > (1<<63-1-f)/scale {
		return 0, ErrInvalidMajorAmount
	}
	return w*scale + f, nil
}

type DashboardRefundForm struct {
	PaymentID string `form:"payment_id"`
}

func (f DashboardRefundForm) ToEntity() entities.RefundRequest {
	return entities.RefundRequest{PaymentIntentID: f.PaymentID}
}
