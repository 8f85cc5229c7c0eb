package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"stripe_testbed/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalizes req in place (trimmed strings, lowercase currency) and
// checks its validate tags. req must be a pointer to one of the request types
// in entities. The first failing field is reported as a *ValidationError.
func Validate(req any) error {
	switch r := req.(type) {
	case *entities.PaymentRequest:
		r.Currency = strings.ToLower(strings.TrimSpace(r.Currency))
	case *entities.CustomerRequest:
		r.Email = strings.TrimSpace(r.Email)
		r.Name = strings.TrimSpace(r.Name)
		r.Description = strings.TrimSpace(r.Description)
	case *entities.RefundRequest:
		r.PaymentIntentID = strings.TrimSpace(r.PaymentIntentID)
	case *entities.PaymentDetailsRequest:
		r.PaymentIntentID = strings.TrimSpace(r.PaymentIntentID)
	case *entities.MethodListRequest:
		r.CustomerID = strings.TrimSpace(r.CustomerID)
	case *entities.ListRequest:
	default:
		return &ValidationError{Field: "request", Reason: fmt.Sprintf("unsupported request type %T", req)}
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: describe(fe)}
	}
	return &ValidationError{Field: "request", Reason: err.Error()}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "alpha":
		return "must contain only letters"
	case "email":
		return "must be a valid email address"
	}
	return "failed " + fe.Tag() + " check"
}
