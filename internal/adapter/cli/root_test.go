package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stripe_testbed/internal/config"
	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase"
	mock_usecase "stripe_testbed/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

type harness struct {
	app         *App
	out         *bytes.Buffer
	errOut      *bytes.Buffer
	factoryHits int
	reported    []error
	configPath  string
}

func newHarness(t *testing.T, uc usecase.IStripeTestbedUseCase) *harness {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvConfigPath, "")

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"stripe_api_key":"sk_test_abcdef123456","payment_settings":{"check_interval":1,"max_attempts":3}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, configPath: path}
	h.app = &App{
		Version: "test",
		Out:     h.out,
		Err:     h.errOut,
		NewUseCase: func(_ context.Context, cfg *config.Config) (usecase.IStripeTestbedUseCase, error) {
			h.factoryHits++
			if cfg.StripeAPIKey != "sk_test_abcdef123456" {
				t.Fatalf("unexpected config %+v", cfg)
			}
			return uc, nil
		},
		ReportError: func(err error) { h.reported = append(h.reported, err) },
	}
	return h
}

func (h *harness) run(args ...string) int {
	return Execute(context.Background(), h.app, append(args, "--config", h.configPath))
}

func TestExecute_UsageErrorsNeverLoadConfig(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no operation", args: []string{}},
		{name: "unknown operation", args: []string{"charge"}},
		{name: "zero amount", args: []string{"set", "--amount", "0"}},
		{name: "negative amount", args: []string{"set", "--amount", "-10"}},
		{name: "bad currency", args: []string{"set", "--currency", "francs"}},
		{name: "non numeric limit", args: []string{"list-payments", "--limit", "abc"}},
		{name: "zero limit", args: []string{"list-payments", "--limit", "0"}},
		{name: "customer without email", args: []string{"create-customer", "--name", "Ada"}},
		{name: "customer without name", args: []string{"create-customer", "--email", "ada@example.com"}},
		{name: "refund without payment id", args: []string{"create-refund"}},
		{name: "details without payment id", args: []string{"payment-details"}},
		{name: "unknown flag", args: []string{"get", "--bogus"}},
		{name: "stray argument", args: []string{"set", "extra"}},
		{name: "stray argument on config show", args: []string{"config", "show", "extra"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
			h := newHarness(t, uc)
			// A missing config would surface as exit 3 if it were read.
			h.configPath = filepath.Join(t.TempDir(), "missing.json")

			code := h.run(tc.args...)
			if code != ExitUsage {
				t.Fatalf("expected exit %d, got %d (stderr=%q)", ExitUsage, code, h.errOut.String())
			}
			if h.factoryHits != 0 {
				t.Fatalf("expected no use case to be built")
			}
			if len(h.reported) != 0 {
				t.Fatalf("usage errors are not reported, got %v", h.reported)
			}
			if !strings.Contains(h.errOut.String(), "Error:") {
				t.Fatalf("expected error on stderr, got %q", h.errOut.String())
			}
		})
	}
}

func TestExecute_ConfigErrorExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, mock_usecase.NewMockIStripeTestbedUseCase(ctrl))
	h.configPath = filepath.Join(t.TempDir(), "missing.json")

	if code := h.run("get"); code != ExitConfig {
		t.Fatalf("expected exit %d, got %d", ExitConfig, code)
	}
	if len(h.reported) != 0 {
		t.Fatalf("config errors are not reported, got %v", h.reported)
	}
}

func TestExecute_RemoteErrorExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)
	remote := &usecase.RemoteAPIError{HTTPStatus: 401, Type: "invalid_request_error", Message: "Invalid API Key provided"}

	uc.EXPECT().GetBalance(gomock.Any()).Return(entities.BalanceSnapshot{}, remote)

	if code := h.run("get"); code != ExitRemote {
		t.Fatalf("expected exit %d, got %d", ExitRemote, code)
	}
	if !strings.Contains(h.errOut.String(), "Invalid API Key provided") {
		t.Fatalf("expected remote message verbatim, got %q", h.errOut.String())
	}
	if len(h.reported) != 1 {
		t.Fatalf("expected remote error to be reported")
	}
}

func TestExecute_CreatePaymentText(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	settled := entities.PaymentIntent{
		ID: "pi_1", Status: entities.PaymentIntentStatusSucceeded, Amount: 2500, Currency: "usd",
		LatestCharge: &entities.Charge{ID: "ch_1", BalanceTransaction: &entities.BalanceTransaction{
			Amount: 2500, Fee: 103, Net: 2397, Currency: "usd",
			FeeDetails: []entities.FeeDetail{{Type: "stripe_fee", Amount: 103, Currency: "usd", Description: "Stripe processing fees"}},
		}},
	}
	uc.EXPECT().CreatePayment(gomock.Any(), entities.PaymentRequest{Amount: 2500, Currency: "usd"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.PaymentRequest, obs usecase.PollObserver) (usecase.PaymentResult, error) {
			created := entities.PaymentIntent{ID: "pi_1", Status: entities.PaymentIntentStatusProcessing}
			obs.PaymentCreated(created)
			obs.ConfirmationAttempt(1, 3, entities.PaymentIntentStatusProcessing)
			obs.Waiting(time.Second)
			obs.ConfirmationAttempt(2, 3, entities.PaymentIntentStatusSucceeded)
			res := usecase.PollResult{Intent: settled, Outcome: usecase.PollOutcomeSucceeded, Retrievals: 1}
			obs.ConfirmationFinished(res)
			return usecase.PaymentResult{Intent: settled, Outcome: usecase.PollOutcomeSucceeded, Retrievals: 1, BalanceTransactionReady: true}, nil
		})

	if code := h.run("set", "--amount", "2500", "--currency", "USD"); code != ExitOK {
		t.Fatalf("expected success, got %d (stderr=%q)", code, h.errOut.String())
	}

	want := []string{
		"Creating a payment of 2500 usd...",
		"Payment Intent created: pi_1",
		"Initial status: processing",
		"Attempt 1/3 - Current status: processing",
		"Waiting for 1 seconds...",
		"Attempt 2/3 - Current status: succeeded",
		"Final status: succeeded",
		"Waiting for balance transaction to be available...",
		"Gross amount: 2500 usd",
		"Stripe fee  : 103 usd",
		"Net to you  : 2397 usd",
		" -   stripe_fee    103 usd  Stripe processing fees",
		"*** IMPORTANT DISCLAIMER ***",
		"Payment Intent id: pi_1",
	}
	assertInOrder(t, h.out.String(), want)
}

func TestExecute_CreatePaymentPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	pending := entities.PaymentIntent{ID: "pi_1", Status: entities.PaymentIntentStatusProcessing}
	uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entities.PaymentRequest, obs usecase.PollObserver) (usecase.PaymentResult, error) {
			obs.ConfirmationFinished(usecase.PollResult{Intent: pending, Outcome: usecase.PollOutcomePending, Retrievals: 3})
			return usecase.PaymentResult{Intent: pending, Outcome: usecase.PollOutcomePending, Retrievals: 3}, nil
		})

	if code := h.run("set"); code != ExitOK {
		t.Fatalf("pending is not a failure, got exit %d", code)
	}
	assertInOrder(t, h.out.String(), []string{"Final status: processing", "Payment did not succeed (pending: gave up waiting)"})
	if strings.Contains(h.out.String(), "Transaction Details") {
		t.Fatalf("no transaction details expected for pending payment")
	}
}

func TestExecute_PaymentDetailsAmountsUnmodified(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	pi := entities.PaymentIntent{
		ID: "pi_X", Status: entities.PaymentIntentStatusSucceeded, Amount: 1000, Currency: "chf",
		LatestCharge: &entities.Charge{
			ID:      "ch_1",
			Created: time.Unix(1700000000, 0).UTC(),
			BalanceTransaction: &entities.BalanceTransaction{
				Amount: 1000, Fee: 59, Net: 941, Currency: "chf", Status: "pending",
				AvailableOn: time.Unix(1700600000, 0).UTC(),
			},
		},
	}
	uc.EXPECT().GetPaymentDetails(gomock.Any(), "pi_X").Return(pi, nil)

	if code := h.run("payment-details", "--payment-id", "pi_X"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	assertInOrder(t, h.out.String(), []string{
		"Payment ID: pi_X",
		"Amount: 1000 chf",
		"Transaction Date: 2023-11-14T22:13:20+00:00 (UTC)",
		"Balance Transaction Status: pending",
		"Gross amount: 1000 chf",
		"Fee: 59 chf",
		"Net amount: 941 chf",
	})
}

func TestExecute_RefundWithoutCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	uc.EXPECT().CreateRefund(gomock.Any(), entities.RefundRequest{PaymentIntentID: "pi_1"}).
		Return(usecase.RefundResult{PaymentIntentID: "pi_1", NoCharge: true}, nil)

	if code := h.run("create-refund", "--payment-id", "pi_1"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(h.out.String(), "No charge found for this payment intent") {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func TestExecute_ListPaymentsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	uc.EXPECT().ListPayments(gomock.Any(), entities.ListRequest{Limit: 2}).Return([]entities.PaymentIntent{
		{ID: "pi_2", Amount: 500, Currency: "usd", Status: "succeeded"},
		{ID: "pi_1", Amount: 1000, Currency: "chf", Status: "canceled"},
	}, nil)

	if code := h.run("list-payments", "--limit", "2", "--json"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	var got []entities.PaymentIntent
	if err := json.Unmarshal(h.out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, h.out.String())
	}
	if len(got) != 2 || got[0].ID != "pi_2" {
		t.Fatalf("unexpected payments %+v", got)
	}
}

func TestExecute_ListMethodsPassesCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mock_usecase.NewMockIStripeTestbedUseCase(ctrl)
	h := newHarness(t, uc)

	uc.EXPECT().ListPaymentMethods(gomock.Any(), entities.MethodListRequest{CustomerID: "cus_1", Limit: 5}).
		Return([]entities.PaymentMethod{{ID: "pm_1", Type: "card", Brand: "visa", Last4: "4242"}}, nil)

	if code := h.run("list-methods", "--customer", "cus_1"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	assertInOrder(t, h.out.String(), []string{"Available Payment Methods:", "ID: pm_1", "Brand: visa", "Last 4: 4242"})
}

func TestExecute_ConfigShowRedactsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, mock_usecase.NewMockIStripeTestbedUseCase(ctrl))

	if code := h.run("config", "show"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	out := h.out.String()
	if strings.Contains(out, "sk_test_abcdef123456") {
		t.Fatalf("key leaked: %q", out)
	}
	assertInOrder(t, out, []string{"stripe_api_key: sk_test_****3456", "check_interval: 1", "max_attempts: 3", "confirmation_wait_time: 30"})
	if h.factoryHits != 0 {
		t.Fatalf("config show must not build the use case")
	}
}

func TestExecute_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, mock_usecase.NewMockIStripeTestbedUseCase(ctrl))

	if code := h.run("version"); code != ExitOK {
		t.Fatalf("expected success, got %d", code)
	}
	if strings.TrimSpace(h.out.String()) != "stripe-testbed test" {
		t.Fatalf("unexpected output %q", h.out.String())
	}
}

func assertInOrder(t *testing.T, out string, want []string) {
	t.Helper()
	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("expected %q after previous lines in output:\n%s", w, out)
		}
		rest = rest[i+len(w):]
	}
}
