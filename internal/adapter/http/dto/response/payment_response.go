package response

import (
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase"
)

type FeeDetailResponse struct {
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	Display     string `json:"display"`
}

type BalanceTransactionResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	Gross       int64               `json:"gross"`
	Fee         int64               `json:"fee"`
	Net         int64               `json:"net"`
	GrossAmount string              `json:"gross_display"`
	FeeAmount   string              `json:"fee_display"`
	NetAmount   string              `json:"net_display"`
	AvailableOn time.Time           `json:"available_on"`
	FeeDetails  []FeeDetailResponse `json:"fee_details,omitempty"`
}

type PaymentResponse struct {
	ID                 string                      `json:"id"`
	Status             string                      `json:"status"`
	Amount             int64                       `json:"amount"`
	Currency           string                      `json:"currency"`
	AmountDisplay      string                      `json:"amount_display"`
	Created            time.Time                   `json:"created"`
	ChargeID           string                      `json:"charge_id,omitempty"`
	ChargeCreated      *time.Time                  `json:"charge_created,omitempty"`
	BalanceTransaction *BalanceTransactionResponse `json:"balance_transaction,omitempty"`
}

func FromPaymentIntent(pi entities.PaymentIntent) PaymentResponse {
	out := PaymentResponse{
		ID:            pi.ID,
		Status:        string(pi.Status),
		Amount:        pi.Amount,
		Currency:      pi.Currency,
		AmountDisplay: FormatMinorUnits(pi.Amount, pi.Currency),
		Created:       pi.Created,
	}
	if pi.LatestCharge == nil {
		return out
	}
	out.ChargeID = pi.LatestCharge.ID
	if !pi.LatestCharge.Created.IsZero() {
		created := pi.LatestCharge.Created
		out.ChargeCreated = &created
	}
	if bt := pi.LatestCharge.BalanceTransaction; bt != nil {
		out.BalanceTransaction = fromBalanceTransaction(*bt)
	}
	return out
}

func FromPaymentIntents(list []entities.PaymentIntent) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, pi := range list {
		out = append(out, FromPaymentIntent(pi))
	}
	return out
}

func fromBalanceTransaction(bt entities.BalanceTransaction) *BalanceTransactionResponse {
	out := &BalanceTransactionResponse{
		ID:          bt.ID,
		Status:      bt.Status,
		Currency:    bt.Currency,
		Gross:       bt.Amount,
		Fee:         bt.Fee,
		Net:         bt.Net,
		GrossAmount: FormatMinorUnits(bt.Amount, bt.Currency),
		FeeAmount:   FormatMinorUnits(bt.Fee, bt.Currency),
		NetAmount:   FormatMinorUnits(bt.Net, bt.Currency),
		AvailableOn: bt.AvailableOn,
	}
	for _, f := range bt.FeeDetails {
		out.FeeDetails = append(out.FeeDetails, FeeDetailResponse{
			Type:        f.Type,
			Amount:      f.Amount,
			Currency:    f.Currency,
			Description: f.Description,
			Display:     FormatMinorUnits(f.Amount, f.Currency),
		})
	}
	return out
}

type PaymentResultResponse struct {
	Payment                 PaymentResponse `json:"payment"`
	Outcome                 string          `json:"outcome"`
	Retrievals              int             `json:"retrievals"`
	BalanceTransactionReady bool            `json:"balance_transaction_ready"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Payment:                 FromPaymentIntent(r.Intent),
		Outcome:                 string(r.Outcome),
		Retrievals:              r.Retrievals,
		BalanceTransactionReady: r.BalanceTransactionReady,
	}
}

type RefundResponse struct {
	PaymentID     string `json:"payment_id"`
	NoCharge      bool   `json:"no_charge"`
	ID            string `json:"id,omitempty"`
	ChargeID      string `json:"charge_id,omitempty"`
	Status        string `json:"status,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	AmountDisplay string `json:"amount_display,omitempty"`
}

func FromRefundResult(r usecase.RefundResult) RefundResponse {
	out := RefundResponse{PaymentID: r.PaymentIntentID, NoCharge: r.NoCharge || r.Refund == nil}
	if r.Refund != nil {
		out.ID = r.Refund.ID
		out.ChargeID = r.Refund.ChargeID
		out.Status = r.Refund.Status
		out.Amount = r.Refund.Amount
		out.Currency = r.Refund.Currency
		out.AmountDisplay = FormatMinorUnits(r.Refund.Amount, r.Refund.Currency)
	}
	return out
}
