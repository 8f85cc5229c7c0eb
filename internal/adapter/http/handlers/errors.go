package handlers

import (
	"errors"
	"net/http"

	"stripe_testbed/internal/adapter/http/dto/request"
	"stripe_testbed/internal/usecase"
	"stripe_testbed/pkg"

	"github.com/gin-gonic/gin"
)

func mapStripeTestbedError(err error) *pkg.AppError {
	var remote *usecase.RemoteAPIError
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, request.ErrInvalidMajorAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.As(err, &remote):
		switch remote.HTTPStatus {
		case http.StatusUnauthorized:
			return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
		case http.StatusNotFound:
			return pkg.NewDomainError("PAYMENT_NOT_FOUND", remote.Message, err, http.StatusNotFound)
		case http.StatusTooManyRequests:
			return pkg.NewDomainError("PAYMENT_PROVIDER_RATE_LIMITED", "Payment provider rate limited", err, http.StatusTooManyRequests)
		}
		message := remote.Message
		if message == "" {
			message = "Payment provider error"
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapStripeTestbedError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
