package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase"
)

const separator = "----------------------------------------"

// timestampLayout renders UTC times with an explicit +00:00 offset.
const timestampLayout = "2006-01-02T15:04:05+00:00"

// printer renders operation results as the plain text the tool has always
// printed. It also reports poll progress as it happens.
type printer struct {
	w io.Writer
}

var _ usecase.PollObserver = (*printer)(nil)

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) disclaimer() {
	p.printf("\n*** IMPORTANT DISCLAIMER ***\n")
	p.printf("Conventionally, Stripe considers cents as the integer atomic unit for currency.\n")
	p.printf("Thus, for example in the Swiss case 100 chf in Stripe correspond actually to real 1 CHF.\n")
}

func (p *printer) PaymentCreated(pi entities.PaymentIntent) {
	p.printf("Payment Intent created: %s\n", pi.ID)
	p.printf("Initial status: %s\n", pi.Status)
	p.printf("\nWaiting for payment confirmation...\n")
}

func (p *printer) ConfirmationAttempt(attempt, maxAttempts int, status entities.PaymentIntentStatus) {
	p.printf("Attempt %d/%d - Current status: %s\n", attempt, maxAttempts, status)
}

func (p *printer) Waiting(d time.Duration) {
	p.printf("\nWaiting for %d seconds...\n", int64(d/time.Second))
}

func (p *printer) ConfirmationFinished(result usecase.PollResult) {
	p.printf("\nFinal status: %s\n", result.Intent.Status)
	switch result.Outcome {
	case usecase.PollOutcomeSucceeded:
		p.printf("\nWaiting for balance transaction to be available...\n")
	case usecase.PollOutcomePending:
		p.printf("Payment did not succeed (%s)\n", result.Outcome)
	default:
		p.printf("Payment did not succeed\n")
	}
}

func (p *printer) BalanceTransactionAttempt(attempt, maxAttempts int) {
	p.printf("Attempt %d/%d - Waiting for balance transaction...\n", attempt, maxAttempts)
}

func (p *printer) paymentResult(result usecase.PaymentResult) {
	if result.Outcome != usecase.PollOutcomeSucceeded {
		return
	}
	if !result.BalanceTransactionReady {
		p.printf("No balance transaction available after waiting\n")
		return
	}
	bt := result.Intent.LatestCharge.BalanceTransaction
	p.printf("\nTransaction Details:\n")
	p.printf("Gross amount: %d %s\n", bt.Amount, bt.Currency)
	p.printf("Stripe fee  : %d %s\n", bt.Fee, bt.Currency)
	p.printf("Net to you  : %d %s\n", bt.Net, bt.Currency)
	if len(bt.FeeDetails) > 0 {
		p.printf("\nFee details:\n")
		p.feeDetails(bt.FeeDetails)
	}
}

func (p *printer) feeDetails(details []entities.FeeDetail) {
	for _, f := range details {
		p.printf(" - %12s  %5d %s  %s\n", f.Type, f.Amount, f.Currency, f.Description)
	}
}

func (p *printer) balance(b entities.BalanceSnapshot) {
	p.printf("\nCurrent Balance:\n")
	p.printf("Pending : %s\n", formatMoneyList(b.Pending))
	p.printf("Available: %s\n", formatMoneyList(b.Available))
}

// formatMoneyList renders "(chf,123), (usd,0)" with amounts untouched.
func formatMoneyList(amounts []entities.Money) string {
	parts := make([]string, 0, len(amounts))
	for _, m := range amounts {
		parts = append(parts, fmt.Sprintf("(%s,%d)", m.Currency, m.Amount))
	}
	return strings.Join(parts, ", ")
}

func (p *printer) payments(payments []entities.PaymentIntent) {
	p.printf("\nRecent Payments:\n")
	for _, pi := range payments {
		p.printf("ID: %s\nAmount: %d %s\nStatus: %s\n%s\n", pi.ID, pi.Amount, pi.Currency, pi.Status, separator)
		p.printf("Created: %s\n", formatTimestamp(pi.Created))
	}
}

func (p *printer) customer(c entities.Customer) {
	p.printf("\nCustomer Created:\n")
	p.printf("ID: %s\n", c.ID)
	p.printf("Name: %s\n", c.Name)
	p.printf("Email: %s\n", c.Email)
	if c.Description != "" {
		p.printf("Description: %s\n", c.Description)
	}
}

func (p *printer) refund(result usecase.RefundResult) {
	if result.NoCharge || result.Refund == nil {
		p.printf("No charge found for this payment intent\n")
		return
	}
	r := result.Refund
	p.printf("\nRefund Created:\n")
	p.printf("ID: %s\n", r.ID)
	p.printf("Amount: %d %s\n", r.Amount, r.Currency)
	p.printf("Status: %s\n", r.Status)
}

func (p *printer) paymentMethods(methods []entities.PaymentMethod) {
	p.printf("\nAvailable Payment Methods:\n")
	for _, pm := range methods {
		p.printf("ID: %s\nType: %s\nBrand: %s\nLast 4: %s\n%s\n", pm.ID, pm.Type, pm.Brand, pm.Last4, separator)
	}
}

func (p *printer) paymentDetails(pi entities.PaymentIntent) {
	if !pi.HasBalanceTransaction() {
		p.printf("No charge found for this payment intent\n")
		return
	}
	ch := pi.LatestCharge
	bt := ch.BalanceTransaction
	p.printf("\nPayment Details:\n")
	p.printf("Payment ID: %s\n", pi.ID)
	p.printf("Status: %s\n", pi.Status)
	p.printf("Amount: %d %s\n", pi.Amount, pi.Currency)
	p.printf("Transaction Date: %s (UTC)\n", formatTimestamp(ch.Created))
	p.printf("Available on: %s (UTC)\n", formatTimestamp(bt.AvailableOn))
	p.printf("Balance Transaction Status: %s\n", bt.Status)
	p.printf("Gross amount: %d %s\n", bt.Amount, bt.Currency)
	p.printf("Fee: %d %s\n", bt.Fee, bt.Currency)
	if len(bt.FeeDetails) > 0 {
		p.printf("Fee details:\n")
		p.feeDetails(bt.FeeDetails)
	}
	p.printf("Net amount: %d %s\n", bt.Net, bt.Currency)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timestampLayout)
}
