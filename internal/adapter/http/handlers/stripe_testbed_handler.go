package handlers

import (
	"net/http"
	"strconv"

	"stripe_testbed/internal/adapter/http/dto/request"
	"stripe_testbed/internal/adapter/http/dto/response"
	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultListLimit     = 10
	defaultActivityLimit = 20
)

// StripeTestbedHandler exposes the testbed operations as a JSON API.
type StripeTestbedHandler struct {
	usecase usecase.IStripeTestbedUseCase
}

func NewStripeTestbedHandler(uc usecase.IStripeTestbedUseCase) *StripeTestbedHandler {
	return &StripeTestbedHandler{usecase: uc}
}

// GetBalance godoc
// @Summary      Current balance
// @Tags         balance
// @Produce      json
// @Success      200  {object}  response.BalanceResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /balance [get]
func (h *StripeTestbedHandler) GetBalance(c *gin.Context) {
	balance, err := h.usecase.GetBalance(c.Request.Context())
	if err != nil {
		telemetry.Warn("[balance][handler] get failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(balance))
}

// ListPayments godoc
// @Summary      Recent payment intents, newest first
// @Tags         payments
// @Produce      json
// @Param        limit  query     int  false  "Number of payments (1-100)"
// @Success      200    {array}   response.PaymentResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *StripeTestbedHandler) ListPayments(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	payments, err := h.usecase.ListPayments(c.Request.Context(), entities.ListRequest{Limit: int64(limit)})
	if err != nil {
		telemetry.Warn("[payment][handler] list failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntents(payments))
}

// GetPayment godoc
// @Summary      Payment intent with its latest charge and balance transaction
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment Intent ID"
// @Success      200         {object}  response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *StripeTestbedHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	pi, err := h.usecase.GetPaymentDetails(c.Request.Context(), paymentID)
	if err != nil {
		telemetry.Warn("[payment][handler] details failed", zap.String("payment_id", paymentID), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntent(pi))
}

// CreatePayment godoc
// @Summary      Create a payment with the test card and wait for confirmation
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.CreatePaymentRequest  true  "Amount in minor units"
// @Success      201      {object}  response.PaymentResultResponse
// @Success      202      {object}  response.PaymentResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *StripeTestbedHandler) CreatePayment(c *gin.Context) {
	var body request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c, err)
		return
	}
	result, err := h.usecase.CreatePayment(c.Request.Context(), body.ToEntity(), usecase.NopObserver{})
	if err != nil {
		telemetry.Warn("[payment][handler] create failed", zap.Error(err))
		writeError(c, err)
		return
	}
	telemetry.Info("[payment][handler] create finished", zap.String("payment_id", result.Intent.ID), zap.String("outcome", string(result.Outcome)))

	status := http.StatusCreated
	if result.Outcome == usecase.PollOutcomePending {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromPaymentResult(result))
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201       {object}  entities.Customer
// @Failure      400       {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *StripeTestbedHandler) CreateCustomer(c *gin.Context) {
	var body request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c, err)
		return
	}
	customer, err := h.usecase.CreateCustomer(c.Request.Context(), body.ToEntity())
	if err != nil {
		telemetry.Warn("[customer][handler] create failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// CreateRefund godoc
// @Summary      Refund the latest charge of a payment intent
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Param        refund  body      request.CreateRefundRequest  true  "Payment to refund"
// @Success      201     {object}  response.RefundResponse
// @Success      200     {object}  response.RefundResponse  "no charge to refund"
// @Failure      400     {object}  pkg.HTTPError
// @Router       /refunds [post]
func (h *StripeTestbedHandler) CreateRefund(c *gin.Context) {
	var body request.CreateRefundRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c, err)
		return
	}
	result, err := h.usecase.CreateRefund(c.Request.Context(), body.ToEntity())
	if err != nil {
		telemetry.Warn("[refund][handler] create failed", zap.String("payment_id", body.PaymentID), zap.Error(err))
		writeError(c, err)
		return
	}
	status := http.StatusCreated
	if result.NoCharge {
		status = http.StatusOK
	}
	c.JSON(status, response.FromRefundResult(result))
}

// ListPaymentMethods godoc
// @Summary      Card payment methods
// @Tags         payment-methods
// @Produce      json
// @Param        customer  query     string  false  "Customer ID"
// @Param        limit     query     int     false  "Number of methods (1-100)"
// @Success      200       {array}   entities.PaymentMethod
// @Router       /payment-methods [get]
func (h *StripeTestbedHandler) ListPaymentMethods(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	methods, err := h.usecase.ListPaymentMethods(c.Request.Context(), entities.MethodListRequest{
		CustomerID: c.Query("customer"),
		Limit:      int64(limit),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// ListActivity godoc
// @Summary      Recent operations run by this process, newest first
// @Tags         activity
// @Produce      json
// @Param        limit  query  int  false  "Number of entries"
// @Success      200    {array}  entities.Activity
// @Router       /activity [get]
func (h *StripeTestbedHandler) ListActivity(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultActivityLimit)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	activity, err := h.usecase.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		telemetry.Error("[activity][handler] list failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &usecase.ValidationError{Field: key, Reason: "must be an integer"}
	}
	return n, nil
}
