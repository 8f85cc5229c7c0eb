package usecase

import (
	"errors"
	"testing"

	"stripe_testbed/internal/domain/entities"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		req       any
		wantField string
	}{
		{name: "valid payment", req: &entities.PaymentRequest{Amount: 1000, Currency: "chf"}},
		{name: "zero amount", req: &entities.PaymentRequest{Amount: 0, Currency: "chf"}, wantField: "amount"},
		{name: "negative amount", req: &entities.PaymentRequest{Amount: -5, Currency: "chf"}, wantField: "amount"},
		{name: "short currency", req: &entities.PaymentRequest{Amount: 100, Currency: "ch"}, wantField: "currency"},
		{name: "numeric currency", req: &entities.PaymentRequest{Amount: 100, Currency: "12a"}, wantField: "currency"},
		{name: "zero limit", req: &entities.ListRequest{Limit: 0}, wantField: "limit"},
		{name: "limit too large", req: &entities.ListRequest{Limit: 101}, wantField: "limit"},
		{name: "valid limit", req: &entities.ListRequest{Limit: 5}},
		{name: "customer without email", req: &entities.CustomerRequest{Name: "Ada"}, wantField: "email"},
		{name: "customer bad email", req: &entities.CustomerRequest{Email: "nope", Name: "Ada"}, wantField: "email"},
		{name: "customer without name", req: &entities.CustomerRequest{Email: "ada@example.com", Name: "  "}, wantField: "name"},
		{name: "refund without id", req: &entities.RefundRequest{PaymentIntentID: " "}, wantField: "payment_id"},
		{name: "refund with opaque id", req: &entities.RefundRequest{PaymentIntentID: "anything"}},
		{name: "details without id", req: &entities.PaymentDetailsRequest{}, wantField: "payment_id"},
		{name: "methods without customer", req: &entities.MethodListRequest{Limit: 10}},
		{name: "methods zero limit", req: &entities.MethodListRequest{Limit: 0}, wantField: "limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tc.wantField {
				t.Fatalf("expected field %q, got %v", tc.wantField, err)
			}
		})
	}
}

func TestValidate_NormalizesCurrency(t *testing.T) {
	req := entities.PaymentRequest{Amount: 100, Currency: " USD "}
	if err := Validate(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Currency != "usd" {
		t.Fatalf("expected usd, got %q", req.Currency)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	if err := Validate(entities.PaymentRequest{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRemoteAPIError_Error(t *testing.T) {
	err := &RemoteAPIError{HTTPStatus: 402, Type: "card_error", Code: "card_declined", Message: "Your card was declined.", RequestID: "req_1"}
	want := "stripe api error (status 402, type card_error, code card_declined): Your card was declined. [request req_1]"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrRemoteAPI) {
		t.Fatalf("expected ErrRemoteAPI match")
	}
}
