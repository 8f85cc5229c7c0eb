package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase"
	"stripe_testbed/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// TestPaymentMethod is Stripe's always-succeeding test card.
	TestPaymentMethod = "pm_card_visa"
	expandBalanceTx   = "latest_charge.balance_transaction"
	defaultTimeout    = 80 * time.Second
)

var ErrMissingStripeAPIKey = errors.New("missing stripe api key")

// StripeGatewayConfig configures the SDK backend. BaseURL overrides
// https://api.stripe.com (stripe-mock, tests).
type StripeGatewayConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// StripeGateway talks to the Stripe API through stripe-go. The SDK's own
// network retries are disabled; every method is exactly one remote call.
type StripeGateway struct {
	client *client.API
}

var _ interfaces.IStripeGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeGatewayConfig) (*StripeGateway, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		telemetry.Error("[payment][gateway] missing stripe api key")
		return nil, ErrMissingStripeAPIKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     telemetry.Logger().Sugar(),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		backendCfg.URL = stripe.String(base)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg)

	telemetry.Info("[payment][gateway] stripe client initialized", zap.Bool("custom_base_url", backendCfg.URL != nil))
	return &StripeGateway{client: client.New(key, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "create_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(req.Amount),
			Currency:           stripe.String(req.Currency),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			PaymentMethod:      stripe.String(TestPaymentMethod),
			Confirm:            stripe.Bool(true),
		}
		params.Context = ctx
		pi, err := g.client.PaymentIntents.New(params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	})
	if err == nil {
		telemetry.Info("[payment][gateway] create success", zap.String("payment_id", out.ID), zap.String("status", string(out.Status)))
	}
	return out, err
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string, expandBalanceTransaction bool) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "get_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		if expandBalanceTransaction {
			params.AddExpand(expandBalanceTx)
		}
		pi, err := g.client.PaymentIntents.Get(id, params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	})
	return out, err
}

// ListPaymentIntents returns a single page in the order the API returns it (newest first).
func (g *StripeGateway) ListPaymentIntents(ctx context.Context, limit int64) ([]entities.PaymentIntent, error) {
	out := make([]entities.PaymentIntent, 0, limit)
	err := g.call(ctx, "list_payment_intents", func(ctx context.Context) error {
		params := &stripe.PaymentIntentListParams{}
		params.Context = ctx
		params.Limit = stripe.Int64(limit)
		params.Single = true
		it := g.client.PaymentIntents.List(params)
		for it.Next() {
			out = append(out, toPaymentIntent(it.PaymentIntent()))
		}
		return it.Err()
	})
	return out, err
}

func (g *StripeGateway) GetBalance(ctx context.Context) (entities.BalanceSnapshot, error) {
	var out entities.BalanceSnapshot
	err := g.call(ctx, "get_balance", func(ctx context.Context) error {
		params := &stripe.BalanceParams{}
		params.Context = ctx
		b, err := g.client.Balance.Get(params)
		if err != nil {
			return err
		}
		out = entities.BalanceSnapshot{Available: toMoney(b.Available), Pending: toMoney(b.Pending)}
		return nil
	})
	return out, err
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, req entities.CustomerRequest) (entities.Customer, error) {
	var out entities.Customer
	err := g.call(ctx, "create_customer", func(ctx context.Context) error {
		params := &stripe.CustomerParams{
			Email: stripe.String(req.Email),
			Name:  stripe.String(req.Name),
		}
		if req.Description != "" {
			params.Description = stripe.String(req.Description)
		}
		params.Context = ctx
		c, err := g.client.Customers.New(params)
		if err != nil {
			return err
		}
		out = entities.Customer{
			ID:          c.ID,
			Email:       c.Email,
			Name:        c.Name,
			Description: c.Description,
			Created:     unixTime(c.Created),
		}
		return nil
	})
	return out, err
}

func (g *StripeGateway) CreateRefund(ctx context.Context, req entities.ChargeRefundRequest) (entities.Refund, error) {
	var out entities.Refund
	err := g.call(ctx, "create_refund", func(ctx context.Context) error {
		params := &stripe.RefundParams{
			Charge: stripe.String(req.ChargeID),
			Reason: stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
		}
		params.Context = ctx
		r, err := g.client.Refunds.New(params)
		if err != nil {
			return err
		}
		out = entities.Refund{
			ID:              r.ID,
			PaymentIntentID: req.PaymentIntentID,
			ChargeID:        req.ChargeID,
			Status:          string(r.Status),
			Amount:          r.Amount,
			Currency:        string(r.Currency),
			Reason:          string(r.Reason),
		}
		if r.Charge != nil && r.Charge.ID != "" {
			out.ChargeID = r.Charge.ID
		}
		if r.PaymentIntent != nil && r.PaymentIntent.ID != "" {
			out.PaymentIntentID = r.PaymentIntent.ID
		}
		return nil
	})
	return out, err
}

func (g *StripeGateway) ListPaymentMethods(ctx context.Context, customerID string, limit int64) ([]entities.PaymentMethod, error) {
	out := make([]entities.PaymentMethod, 0, limit)
	err := g.call(ctx, "list_payment_methods", func(ctx context.Context) error {
		params := &stripe.PaymentMethodListParams{Type: stripe.String(string(stripe.PaymentMethodTypeCard))}
		if customerID != "" {
			params.Customer = stripe.String(customerID)
		}
		params.Context = ctx
		params.Limit = stripe.Int64(limit)
		params.Single = true
		it := g.client.PaymentMethods.List(params)
		for it.Next() {
			out = append(out, toPaymentMethod(it.PaymentMethod()))
		}
		return it.Err()
	})
	return out, err
}

// call wraps one remote call with a client span, a metric and error mapping.
func (g *StripeGateway) call(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := telemetry.Tracer().Start(ctx, "stripe."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("stripe.operation", operation)),
	)
	defer span.End()

	telemetry.Debug("[payment][gateway] call start", zap.String("operation", operation))
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		remote := toRemoteError(err)
		span.RecordError(remote)
		span.SetStatus(codes.Error, remote.Type)
		telemetry.RecordStripeCall(ctx, operation, "error", elapsed)
		telemetry.Warn("[payment][gateway] call failed",
			zap.String("operation", operation),
			zap.Int("http_status", remote.HTTPStatus),
			zap.String("type", remote.Type),
			zap.String("code", remote.Code),
			zap.String("request_id", remote.RequestID),
		)
		return remote
	}
	telemetry.RecordStripeCall(ctx, operation, "success", elapsed)
	return nil
}

func toRemoteError(err error) *usecase.RemoteAPIError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &usecase.RemoteAPIError{
			HTTPStatus: stripeErr.HTTPStatusCode,
			Type:       string(stripeErr.Type),
			Code:       string(stripeErr.Code),
			Message:    stripeErr.Msg,
			RequestID:  stripeErr.RequestID,
			Err:        err,
		}
	}
	return &usecase.RemoteAPIError{
		Type:    usecase.RemoteErrorTypeNetwork,
		Message: err.Error(),
		Err:     err,
	}
}
