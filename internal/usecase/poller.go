package usecase

import (
	"context"
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PollOutcome is how a confirmation poll ended. Pending means the attempt
// budget ran out; it is reported, not raised.
type PollOutcome string

const (
	PollOutcomeSucceeded PollOutcome = "succeeded"
	PollOutcomeFailed    PollOutcome = "failed"
	PollOutcomePending   PollOutcome = "pending"
)

func (o PollOutcome) String() string {
	if o == PollOutcomePending {
		return "pending: gave up waiting"
	}
	return string(o)
}

// PollResult is the last observed intent and how the poll ended.
// Retrievals counts remote retrievals issued by the poll, excluding the create call.
type PollResult struct {
	Intent     entities.PaymentIntent `json:"payment_intent"`
	Outcome    PollOutcome            `json:"outcome"`
	Retrievals int                    `json:"retrievals"`
}

// PollObserver receives progress while a payment is being created and confirmed.
type PollObserver interface {
	PaymentCreated(pi entities.PaymentIntent)
	ConfirmationAttempt(attempt, maxAttempts int, status entities.PaymentIntentStatus)
	Waiting(d time.Duration)
	ConfirmationFinished(result PollResult)
	BalanceTransactionAttempt(attempt, maxAttempts int)
}

// NopObserver discards poll progress.
type NopObserver struct{}

func (NopObserver) PaymentCreated(entities.PaymentIntent) {}
func (NopObserver) ConfirmationAttempt(int, int, entities.PaymentIntentStatus) {}
func (NopObserver) Waiting(time.Duration) {}
func (NopObserver) ConfirmationFinished(PollResult) {}
func (NopObserver) BalanceTransactionAttempt(int, int) {}

var _ PollObserver = NopObserver{}

// ConfirmationPoller re-reads a PaymentIntent at a flat interval until it
// reaches a terminal status or the attempt budget is spent. There is no
// jitter and no backoff.
type ConfirmationPoller struct {
	gateway     interfaces.IStripeGateway
	interval    time.Duration
	maxAttempts int
	sleep       func(time.Duration)
}

func NewConfirmationPoller(gateway interfaces.IStripeGateway, interval time.Duration, maxAttempts int, sleep func(time.Duration)) *ConfirmationPoller {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &ConfirmationPoller{gateway: gateway, interval: interval, maxAttempts: maxAttempts, sleep: sleep}
}

func isTerminal(s entities.PaymentIntentStatus) bool {
	return !s.IsPending()
}

// AwaitConfirmation polls starting from the freshly created intent. No
// retrieval happens when created is already terminal, and at most
// maxAttempts retrievals happen otherwise. A retrieval error ends the poll
// and is returned together with the last observed state.
func (p *ConfirmationPoller) AwaitConfirmation(ctx context.Context, created entities.PaymentIntent, observer PollObserver) (PollResult, error) {
	if observer == nil {
		observer = NopObserver{}
	}
	pi := created
	attempts := 0
	for attempts < p.maxAttempts {
		observer.ConfirmationAttempt(attempts+1, p.maxAttempts, pi.Status)
		if isTerminal(pi.Status) {
			break
		}
		observer.Waiting(p.interval)
		p.sleep(p.interval)
		attempts++

		telemetry.RecordPollRetrieval(ctx, "confirmation")
		next, err := p.gateway.GetPaymentIntent(ctx, pi.ID, false)
		if err != nil {
			telemetry.Warn("[payment][poller] retrieve failed", zap.String("payment_id", pi.ID), zap.Int("attempt", attempts), zap.Error(err))
			return PollResult{Intent: pi, Outcome: outcomeOf(pi.Status), Retrievals: attempts}, err
		}
		pi = next
		telemetry.Debug("[payment][poller] retrieved", zap.String("payment_id", pi.ID), zap.String("status", string(pi.Status)), zap.Int("attempt", attempts))
	}

	result := PollResult{Intent: pi, Outcome: outcomeOf(pi.Status), Retrievals: attempts}
	telemetry.RecordPollOutcome(ctx, string(result.Outcome))
	observer.ConfirmationFinished(result)
	return result, nil
}

func outcomeOf(s entities.PaymentIntentStatus) PollOutcome {
	switch {
	case s == entities.PaymentIntentStatusSucceeded:
		return PollOutcomeSucceeded
	case s.IsPending():
		return PollOutcomePending
	default:
		return PollOutcomeFailed
	}
}

// AwaitBalanceTransaction re-reads the expanded intent until its latest
// charge carries a balance transaction, issuing at most maxAttempts
// retrievals. The bool is false when the budget ran out first.
func (p *ConfirmationPoller) AwaitBalanceTransaction(ctx context.Context, id string, observer PollObserver) (entities.PaymentIntent, bool, error) {
	if observer == nil {
		observer = NopObserver{}
	}
	var pi entities.PaymentIntent
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		telemetry.RecordPollRetrieval(ctx, "balance_transaction")
		next, err := p.gateway.GetPaymentIntent(ctx, id, true)
		if err != nil {
			return pi, false, err
		}
		pi = next
		if pi.HasBalanceTransaction() {
			return pi, true, nil
		}
		if attempt < p.maxAttempts {
			observer.BalanceTransactionAttempt(attempt, p.maxAttempts)
			p.sleep(p.interval)
		}
	}
	telemetry.Info("[payment][poller] balance transaction not available", zap.String("payment_id", id), zap.Int("attempts", p.maxAttempts))
	return pi, false, nil
}
