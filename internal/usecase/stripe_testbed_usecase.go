package usecase

import (
	"context"
	"fmt"
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OperationCreatePayment  = "set"
	OperationGetBalance     = "get"
	OperationListPayments   = "list-payments"
	OperationCreateCustomer = "create-customer"
	OperationCreateRefund   = "create-refund"
	OperationListMethods    = "list-methods"
	OperationPaymentDetails = "payment-details"
)

// Operations lists the operation names in the order they are documented.
var Operations = []string{
	OperationCreatePayment,
	OperationGetBalance,
	OperationListPayments,
	OperationCreateCustomer,
	OperationCreateRefund,
	OperationListMethods,
	OperationPaymentDetails,
}

// PaymentResult is the outcome of a create-and-confirm run.
type PaymentResult struct {
	Intent                  entities.PaymentIntent `json:"payment_intent"`
	Outcome                 PollOutcome            `json:"outcome"`
	Retrievals              int                    `json:"retrievals"`
	BalanceTransactionReady bool                   `json:"balance_transaction_ready"`
}

// RefundResult reports a refund, or that the intent had no charge to refund.
type RefundResult struct {
	PaymentIntentID string           `json:"payment_intent_id"`
	NoCharge        bool             `json:"no_charge"`
	Refund          *entities.Refund `json:"refund,omitempty"`
}

//go:generate mockgen -source=stripe_testbed_usecase.go -destination=mocks/stripe_testbed_usecase_mock.go -package=mock_usecase

// IStripeTestbedUseCase is the set of operations shared by the CLI and the dashboard.

type IStripeTestbedUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest, observer PollObserver) (PaymentResult, error)
	GetBalance(ctx context.Context) (entities.BalanceSnapshot, error)
	ListPayments(ctx context.Context, req entities.ListRequest) ([]entities.PaymentIntent, error)
	CreateCustomer(ctx context.Context, req entities.CustomerRequest) (entities.Customer, error)
	CreateRefund(ctx context.Context, req entities.RefundRequest) (RefundResult, error)
	ListPaymentMethods(ctx context.Context, req entities.MethodListRequest) ([]entities.PaymentMethod, error)
	GetPaymentDetails(ctx context.Context, paymentID string) (entities.PaymentIntent, error)
	RecentActivity(ctx context.Context, limit int) ([]entities.Activity, error)
}

type StripeTestbedUseCase struct {
	gateway  interfaces.IStripeGateway
	activity interfaces.IActivityRepository
	poller   *ConfirmationPoller
	now      func() time.Time
}

var _ IStripeTestbedUseCase = (*StripeTestbedUseCase)(nil)

// PollSettings configures the confirmation poll of CreatePayment.
type PollSettings struct {
	Interval    time.Duration
	MaxAttempts int
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewStripeTestbedUseCase wires the operations. activity may be nil, in
// which case nothing is recorded.
func NewStripeTestbedUseCase(gateway interfaces.IStripeGateway, activity interfaces.IActivityRepository, poll PollSettings) *StripeTestbedUseCase {
	return &StripeTestbedUseCase{
		gateway:  gateway,
		activity: activity,
		poller:   NewConfirmationPoller(gateway, poll.Interval, poll.MaxAttempts, poll.Sleep),
		now:      time.Now,
	}
}

func (u *StripeTestbedUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest, observer PollObserver) (PaymentResult, error) {
	if observer == nil {
		observer = NopObserver{}
	}
	if err := Validate(&req); err != nil {
		return PaymentResult{}, err
	}
	label := fmt.Sprintf("Create payment %d %s", req.Amount, req.Currency)
	telemetry.Info("[payment][usecase] create start", zap.Int64("amount", req.Amount), zap.String("currency", req.Currency))

	created, err := u.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		telemetry.Warn("[payment][usecase] create failed", zap.Error(err))
		u.record(ctx, OperationCreatePayment, label, "", err)
		return PaymentResult{}, err
	}
	observer.PaymentCreated(created)

	polled, err := u.poller.AwaitConfirmation(ctx, created, observer)
	result := PaymentResult{Intent: polled.Intent, Outcome: polled.Outcome, Retrievals: polled.Retrievals}
	if err != nil {
		u.record(ctx, OperationCreatePayment, label, created.ID, err)
		return result, err
	}
	telemetry.Info("[payment][usecase] confirmation finished", zap.String("payment_id", created.ID), zap.String("outcome", string(polled.Outcome)), zap.Int("retrievals", polled.Retrievals))

	if polled.Outcome != PollOutcomeSucceeded {
		u.recordActivity(ctx, entities.Activity{
			Operation:  OperationCreatePayment,
			Label:      label,
			Outcome:    activityOutcomeOf(polled.Outcome),
			ResourceID: created.ID,
			Lines:      []string{"Final status: " + string(polled.Intent.Status)},
		})
		return result, nil
	}

	expanded, ready, err := u.poller.AwaitBalanceTransaction(ctx, created.ID, observer)
	if err != nil {
		u.record(ctx, OperationCreatePayment, label, created.ID, err)
		return result, err
	}
	if expanded.ID != "" {
		result.Intent = expanded
	}
	result.BalanceTransactionReady = ready

	lines := []string{"Final status: " + string(result.Intent.Status)}
	if ready {
		bt := result.Intent.LatestCharge.BalanceTransaction
		lines = append(lines,
			fmt.Sprintf("Gross amount: %d %s", bt.Amount, bt.Currency),
			fmt.Sprintf("Stripe fee  : %d %s", bt.Fee, bt.Currency),
			fmt.Sprintf("Net to you  : %d %s", bt.Net, bt.Currency),
		)
	}
	u.recordActivity(ctx, entities.Activity{
		Operation:  OperationCreatePayment,
		Label:      label,
		Outcome:    entities.ActivityOutcomeSuccess,
		ResourceID: created.ID,
		Lines:      lines,
	})
	return result, nil
}

func (u *StripeTestbedUseCase) GetBalance(ctx context.Context) (entities.BalanceSnapshot, error) {
	balance, err := u.gateway.GetBalance(ctx)
	u.record(ctx, OperationGetBalance, "Get balance", "", err)
	return balance, err
}

func (u *StripeTestbedUseCase) ListPayments(ctx context.Context, req entities.ListRequest) ([]entities.PaymentIntent, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	payments, err := u.gateway.ListPaymentIntents(ctx, req.Limit)
	u.record(ctx, OperationListPayments, fmt.Sprintf("List %d payments", req.Limit), "", err)
	return payments, err
}

func (u *StripeTestbedUseCase) CreateCustomer(ctx context.Context, req entities.CustomerRequest) (entities.Customer, error) {
	if err := Validate(&req); err != nil {
		return entities.Customer{}, err
	}
	customer, err := u.gateway.CreateCustomer(ctx, req)
	u.record(ctx, OperationCreateCustomer, "Create customer "+req.Email, customer.ID, err)
	return customer, err
}

// CreateRefund refunds the latest charge of the intent. An intent without a
// charge is reported through RefundResult.NoCharge and is not an error.
func (u *StripeTestbedUseCase) CreateRefund(ctx context.Context, req entities.RefundRequest) (RefundResult, error) {
	if err := Validate(&req); err != nil {
		return RefundResult{}, err
	}
	label := "Refund " + req.PaymentIntentID
	result := RefundResult{PaymentIntentID: req.PaymentIntentID}

	pi, err := u.gateway.GetPaymentIntent(ctx, req.PaymentIntentID, false)
	if err != nil {
		u.record(ctx, OperationCreateRefund, label, req.PaymentIntentID, err)
		return result, err
	}
	if pi.LatestCharge == nil || pi.LatestCharge.ID == "" {
		telemetry.Info("[refund][usecase] no charge", zap.String("payment_id", req.PaymentIntentID))
		result.NoCharge = true
		u.recordActivity(ctx, entities.Activity{
			Operation:  OperationCreateRefund,
			Label:      label,
			Outcome:    entities.ActivityOutcomeFailure,
			ResourceID: req.PaymentIntentID,
			Lines:      []string{"No charge found for this payment intent"},
		})
		return result, nil
	}

	refund, err := u.gateway.CreateRefund(ctx, entities.ChargeRefundRequest{PaymentIntentID: pi.ID, ChargeID: pi.LatestCharge.ID})
	if err != nil {
		u.record(ctx, OperationCreateRefund, label, req.PaymentIntentID, err)
		return result, err
	}
	result.Refund = &refund
	u.record(ctx, OperationCreateRefund, label, refund.ID, nil)
	return result, nil
}

func (u *StripeTestbedUseCase) ListPaymentMethods(ctx context.Context, req entities.MethodListRequest) ([]entities.PaymentMethod, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	methods, err := u.gateway.ListPaymentMethods(ctx, req.CustomerID, req.Limit)
	u.record(ctx, OperationListMethods, "List card payment methods", req.CustomerID, err)
	return methods, err
}

// GetPaymentDetails retrieves the intent with its charge and balance
// transaction expanded. Amounts are returned exactly as the API reports them.
func (u *StripeTestbedUseCase) GetPaymentDetails(ctx context.Context, paymentID string) (entities.PaymentIntent, error) {
	req := entities.PaymentDetailsRequest{PaymentIntentID: paymentID}
	if err := Validate(&req); err != nil {
		return entities.PaymentIntent{}, err
	}
	pi, err := u.gateway.GetPaymentIntent(ctx, req.PaymentIntentID, true)
	u.record(ctx, OperationPaymentDetails, "Payment details "+req.PaymentIntentID, req.PaymentIntentID, err)
	return pi, err
}

func (u *StripeTestbedUseCase) RecentActivity(ctx context.Context, limit int) ([]entities.Activity, error) {
	if u.activity == nil {
		return []entities.Activity{}, nil
	}
	return u.activity.ListRecent(ctx, limit)
}

func (u *StripeTestbedUseCase) record(ctx context.Context, operation, label, resourceID string, err error) {
	a := entities.Activity{
		Operation:  operation,
		Label:      label,
		Outcome:    entities.ActivityOutcomeSuccess,
		ResourceID: resourceID,
	}
	if err != nil {
		a.Outcome = entities.ActivityOutcomeFailure
		a.Error = err.Error()
	}
	u.recordActivity(ctx, a)
}

// recordActivity is best-effort: a failing activity store never fails the operation.
func (u *StripeTestbedUseCase) recordActivity(ctx context.Context, a entities.Activity) {
	if u.activity == nil {
		return
	}
	a.ID = uuid.NewString()
	a.At = u.now().UTC()
	if err := u.activity.Record(ctx, a); err != nil {
		telemetry.Warn("[activity][usecase] record failed", zap.String("operation", a.Operation), zap.Error(err))
	}
}

func activityOutcomeOf(o PollOutcome) entities.ActivityOutcome {
	switch o {
	case PollOutcomeSucceeded:
		return entities.ActivityOutcomeSuccess
	case PollOutcomePending:
		return entities.ActivityOutcomePending
	}
	return entities.ActivityOutcomeFailure
}
