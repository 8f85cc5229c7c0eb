package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"stripe_testbed/internal/domain/entities"
	mock_interfaces "stripe_testbed/internal/usecase/interfaces/mocks"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/mock/gomock"
)

func newTestUseCase(ctrl *gomock.Controller, maxAttempts int) (*StripeTestbedUseCase, *mock_interfaces.MockIStripeGateway, *mock_interfaces.MockIActivityRepository) {
	gateway := mock_interfaces.NewMockIStripeGateway(ctrl)
	activity := mock_interfaces.NewMockIActivityRepository(ctrl)
	uc := NewStripeTestbedUseCase(gateway, activity, PollSettings{
		Interval:    time.Second,
		MaxAttempts: maxAttempts,
		Sleep:       func(time.Duration) {},
	})
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc, gateway, activity
}

func settledIntent(id string) entities.PaymentIntent {
	pi := intent(id, entities.PaymentIntentStatusSucceeded)
	pi.LatestCharge = &entities.Charge{
		ID: "ch_1",
		BalanceTransaction: &entities.BalanceTransaction{
			ID: "txn_1", Amount: 1000, Fee: 59, Net: 941, Currency: "chf",
			FeeDetails: []entities.FeeDetail{{Type: "stripe_fee", Amount: 59, Currency: "chf", Description: "Stripe processing fees"}},
		},
	}
	return pi
}

func TestStripeTestbedUseCase_CreatePayment(t *testing.T) {
	t.Run("invalid amount never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestUseCase(ctrl, 6)

		_, err := uc.CreatePayment(context.Background(), entities.PaymentRequest{Amount: 0, Currency: "chf"}, nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("success with balance transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)
		observer := &recordingObserver{}

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), entities.PaymentRequest{Amount: 1000, Currency: "chf"}).
			Return(intent("pi_1", entities.PaymentIntentStatusProcessing), nil)
		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", false).Return(intent("pi_1", entities.PaymentIntentStatusSucceeded), nil)
		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", true).Return(settledIntent("pi_1"), nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
			if a.Operation != OperationCreatePayment || a.Outcome != entities.ActivityOutcomeSuccess || a.ResourceID != "pi_1" {
				t.Fatalf("unexpected activity %+v", a)
			}
			if a.ID == "" || a.ID == "pi_1" {
				t.Fatalf("expected a local activity id, got %q", a.ID)
			}
			return nil
		})

		result, err := uc.CreatePayment(context.Background(), entities.PaymentRequest{Amount: 1000, Currency: "CHF"}, observer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcome != PollOutcomeSucceeded || !result.BalanceTransactionReady || result.Retrievals != 1 {
			t.Fatalf("unexpected result %+v", result)
		}
		bt := result.Intent.LatestCharge.BalanceTransaction
		if bt.Amount != 1000 || bt.Fee != 59 || bt.Net != 941 {
			t.Fatalf("amounts must be passed through unmodified, got %+v", bt)
		}
		if len(observer.created) != 1 || observer.created[0].ID != "pi_1" {
			t.Fatalf("expected PaymentCreated notification, got %+v", observer.created)
		}
	})

	t.Run("pending after max attempts skips balance transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 2)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(intent("pi_1", entities.PaymentIntentStatusProcessing), nil)
		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", false).Return(intent("pi_1", entities.PaymentIntentStatusProcessing), nil).Times(2)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
			if a.Outcome != entities.ActivityOutcomePending {
				t.Fatalf("expected pending activity, got %s", a.Outcome)
			}
			return nil
		})

		result, err := uc.CreatePayment(context.Background(), entities.PaymentRequest{Amount: 1000, Currency: "chf"}, nil)
		if err != nil {
			t.Fatalf("exhaustion must not be an error, got %v", err)
		}
		if result.Outcome != PollOutcomePending || result.BalanceTransactionReady {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("remote error on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)
		remote := &RemoteAPIError{HTTPStatus: 401, Type: "invalid_request_error", Message: "Invalid API Key provided"}

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, remote)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.CreatePayment(context.Background(), entities.PaymentRequest{Amount: 1000, Currency: "chf"}, nil)
		var rErr *RemoteAPIError
		if !errors.As(err, &rErr) || rErr.Message != "Invalid API Key provided" {
			t.Fatalf("expected remote error verbatim, got %v", err)
		}
	})

	t.Run("activity failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)

		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(intent("pi_1", entities.PaymentIntentStatusCanceled), nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("table missing"))

		result, err := uc.CreatePayment(context.Background(), entities.PaymentRequest{Amount: 1000, Currency: "chf"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcome != PollOutcomeFailed || result.Retrievals != 0 {
			t.Fatalf("unexpected result %+v", result)
		}
	})
}

func TestStripeTestbedUseCase_CreateRefund(t *testing.T) {
	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestUseCase(ctrl, 6)

		_, err := uc.CreateRefund(context.Background(), entities.RefundRequest{})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("no charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)

		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", false).Return(intent("pi_1", entities.PaymentIntentStatusRequiresPaymentMethod), nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.CreateRefund(context.Background(), entities.RefundRequest{PaymentIntentID: "pi_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.NoCharge || result.Refund != nil {
			t.Fatalf("expected no-charge result, got %+v", result)
		}
	})

	t.Run("refunds latest charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)
		charged := intent("pi_1", entities.PaymentIntentStatusSucceeded)
		charged.LatestCharge = &entities.Charge{ID: "ch_9"}

		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", false).Return(charged, nil)
		gateway.EXPECT().CreateRefund(gomock.Any(), entities.ChargeRefundRequest{PaymentIntentID: "pi_1", ChargeID: "ch_9"}).
			Return(entities.Refund{ID: "re_1", ChargeID: "ch_9", Status: "succeeded", Amount: 1000, Currency: "chf"}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.CreateRefund(context.Background(), entities.RefundRequest{PaymentIntentID: " pi_1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Refund == nil || result.Refund.ID != "re_1" {
			t.Fatalf("unexpected result %+v", result)
		}
	})
}

func TestStripeTestbedUseCase_CreateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, gateway, activity := newTestUseCase(ctrl, 6)

	req := entities.CustomerRequest{Email: gofakeit.Email(), Name: gofakeit.Name(), Description: gofakeit.Sentence(4)}
	gateway.EXPECT().CreateCustomer(gomock.Any(), req).Return(entities.Customer{ID: "cus_1", Email: req.Email, Name: req.Name}, nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	customer, err := uc.CreateCustomer(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.ID != "cus_1" || customer.Email != req.Email {
		t.Fatalf("unexpected customer %+v", customer)
	}
}

func TestStripeTestbedUseCase_ReadOperations(t *testing.T) {
	t.Run("list payments validates limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTestUseCase(ctrl, 6)

		if _, err := uc.ListPayments(context.Background(), entities.ListRequest{Limit: 0}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("list payments keeps remote order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)
		remote := []entities.PaymentIntent{intent("pi_3", "succeeded"), intent("pi_2", "succeeded"), intent("pi_1", "canceled")}

		gateway.EXPECT().ListPaymentIntents(gomock.Any(), int64(3)).Return(remote, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ListPayments(context.Background(), entities.ListRequest{Limit: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "pi_3" || got[2].ID != "pi_1" {
			t.Fatalf("unexpected order %+v", got)
		}
	})

	t.Run("balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)
		snapshot := entities.BalanceSnapshot{
			Available: []entities.Money{{Amount: 5000, Currency: "chf"}},
			Pending:   []entities.Money{{Amount: 123, Currency: "chf"}},
		}

		gateway.EXPECT().GetBalance(gomock.Any()).Return(snapshot, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.GetBalance(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Pending[0].Amount != 123 || got.Available[0].Amount != 5000 {
			t.Fatalf("unexpected balance %+v", got)
		}
	})

	t.Run("payment details expands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)

		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1", true).Return(settledIntent("pi_1"), nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		pi, err := uc.GetPaymentDetails(context.Background(), "pi_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pi.HasBalanceTransaction() || pi.LatestCharge.BalanceTransaction.Fee != 59 {
			t.Fatalf("unexpected intent %+v", pi)
		}
	})

	t.Run("payment methods with customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, activity := newTestUseCase(ctrl, 6)

		gateway.EXPECT().ListPaymentMethods(gomock.Any(), "cus_1", int64(10)).
			Return([]entities.PaymentMethod{{ID: "pm_1", Type: "card", Brand: "visa", Last4: "4242"}}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ListPaymentMethods(context.Background(), entities.MethodListRequest{CustomerID: "cus_1", Limit: 10})
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("recent activity without store", func(t *testing.T) {
		uc := NewStripeTestbedUseCase(nil, nil, PollSettings{Interval: time.Second, MaxAttempts: 1})
		got, err := uc.RecentActivity(context.Background(), 5)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty activity, got %+v err=%v", got, err)
		}
	})
}
