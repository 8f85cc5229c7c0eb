package interfaces

import (
	"context"

	"stripe_testbed/internal/domain/entities"
)

//go:generate mockgen -source=stripe_gateway_interface.go -destination=mocks/stripe_gateway_interface_mock.go -package=mock_interfaces

// IStripeGateway abstracts the remote payment API.
//
// Every method performs exactly one blocking remote call. Failures are
// returned as *usecase.RemoteAPIError carrying the remote error verbatim.
type IStripeGateway interface {
	CreatePaymentIntent(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string, expandBalanceTransaction bool) (entities.PaymentIntent, error)
	ListPaymentIntents(ctx context.Context, limit int64) ([]entities.PaymentIntent, error)
	GetBalance(ctx context.Context) (entities.BalanceSnapshot, error)
	CreateCustomer(ctx context.Context, req entities.CustomerRequest) (entities.Customer, error)
	CreateRefund(ctx context.Context, req entities.ChargeRefundRequest) (entities.Refund, error)
	ListPaymentMethods(ctx context.Context, customerID string, limit int64) ([]entities.PaymentMethod, error)
}
