package payments

import (
	"time"

	"stripe_testbed/internal/domain/entities"

	"github.com/stripe/stripe-go/v79"
)

func toPaymentIntent(pi *stripe.PaymentIntent) entities.PaymentIntent {
	if pi == nil {
		return entities.PaymentIntent{}
	}
	out := entities.PaymentIntent{
		ID:          pi.ID,
		Status:      entities.PaymentIntentStatus(pi.Status),
		Amount:      pi.Amount,
		Currency:    string(pi.Currency),
		Created:     unixTime(pi.Created),
		Description: pi.Description,
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	if pi.LatestCharge != nil && pi.LatestCharge.ID != "" {
		out.LatestCharge = toCharge(pi.LatestCharge)
	}
	return out
}

func toCharge(ch *stripe.Charge) *entities.Charge {
	out := &entities.Charge{ID: ch.ID, Created: unixTime(ch.Created)}
	// An unexpanded balance transaction decodes to an id-only object.
	if bt := ch.BalanceTransaction; bt != nil && bt.Currency != "" {
		out.BalanceTransaction = toBalanceTransaction(bt)
	}
	return out
}

func toBalanceTransaction(bt *stripe.BalanceTransaction) *entities.BalanceTransaction {
	out := &entities.BalanceTransaction{
		ID:          bt.ID,
		Amount:      bt.Amount,
		Fee:         bt.Fee,
		Net:         bt.Net,
		Currency:    string(bt.Currency),
		Status:      string(bt.Status),
		AvailableOn: unixTime(bt.AvailableOn),
	}
	for _, fd := range bt.FeeDetails {
		if fd == nil {
			continue
		}
		out.FeeDetails = append(out.FeeDetails, entities.FeeDetail{
			Type:        fd.Type,
			Amount:      fd.Amount,
			Currency:    string(fd.Currency),
			Description: fd.Description,
		})
	}
	return out
}

func toMoney(amounts []*stripe.Amount) []entities.Money {
	out := make([]entities.Money, 0, len(amounts))
	for _, a := range amounts {
		if a == nil {
			continue
		}
		out = append(out, entities.Money{Amount: a.Amount, Currency: string(a.Currency)})
	}
	return out
}

func toPaymentMethod(pm *stripe.PaymentMethod) entities.PaymentMethod {
	out := entities.PaymentMethod{ID: pm.ID, Type: string(pm.Type)}
	if pm.Customer != nil {
		out.CustomerID = pm.Customer.ID
	}
	if pm.Card != nil {
		out.Brand = string(pm.Card.Brand)
		out.Last4 = pm.Card.Last4
		out.ExpMonth = pm.Card.ExpMonth
		out.ExpYear = pm.Card.ExpYear
	}
	return out
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
