package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation error")
	ErrRemoteAPI  = errors.New("remote api error")
)

// RemoteErrorTypeNetwork marks failures that never produced a remote response.
const RemoteErrorTypeNetwork = "network_error"

// ValidationError reports a missing or invalid operation argument. It is
// always raised before any remote call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RemoteAPIError carries a failure returned by the payment API verbatim.
type RemoteAPIError struct {
	HTTPStatus int
	Type       string
	Code       string
	Message    string
	RequestID  string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	var b strings.Builder
	b.WriteString("stripe api error")
	meta := make([]string, 0, 3)
	if e.HTTPStatus != 0 {
		meta = append(meta, fmt.Sprintf("status %d", e.HTTPStatus))
	}
	if e.Type != "" {
		meta = append(meta, "type "+e.Type)
	}
	if e.Code != "" {
		meta = append(meta, "code "+e.Code)
	}
	if len(meta) > 0 {
		b.WriteString(" (" + strings.Join(meta, ", ") + ")")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.RequestID != "" {
		b.WriteString(" [request " + e.RequestID + "]")
	}
	return b.String()
}

func (e *RemoteAPIError) Is(target error) bool {
	return target == ErrRemoteAPI
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}
