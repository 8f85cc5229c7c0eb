package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"stripe_testbed/internal/adapter/http/dto/request"
	"stripe_testbed/internal/adapter/http/dto/response"
	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	dashboardPaymentsLimit = 3
	dashboardActivityLimit = 10
	paymentsPageLimit      = 10
)

// Templates parses the dashboard pages. Install them with gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money": response.FormatMinorUnits,
		"ts":    formatTime,
	}).ParseFS(templateFS, "templates/*.html")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// DashboardHandler serves the HTML pages. Every page calls the same
// operations as the CLI, in-process.
type DashboardHandler struct {
	usecase usecase.IStripeTestbedUseCase
}

func NewDashboardHandler(uc usecase.IStripeTestbedUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

type dashboardPage struct {
	Flash         string
	FlashError    bool
	Error         string
	Balance       []response.BalanceRow
	Payments      []entities.PaymentIntent
	Activity      []entities.Activity
	Currencies    []string
	LastPaymentID string
}

// Index renders the balance, the latest payments and the activity console.
func (h *DashboardHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := dashboardPage{
		Flash:         c.Query("flash"),
		FlashError:    c.Query("level") == "error",
		Currencies:    []string{"chf", "usd", "eur"},
		LastPaymentID: c.Query("payment_id"),
	}
	status := http.StatusOK

	balance, err := h.usecase.GetBalance(ctx)
	if err != nil {
		telemetry.Warn("[dashboard][handler] balance failed", zap.Error(err))
		appErr := mapStripeTestbedError(err)
		status = appErr.HTTPStatus
		page.Error = err.Error()
	} else {
		page.Balance = response.BalanceRows(balance)
		payments, err := h.usecase.ListPayments(ctx, entities.ListRequest{Limit: dashboardPaymentsLimit})
		if err != nil {
			telemetry.Warn("[dashboard][handler] payments failed", zap.Error(err))
			page.Error = err.Error()
		}
		page.Payments = payments
	}

	activity, err := h.usecase.RecentActivity(ctx, dashboardActivityLimit)
	if err != nil {
		telemetry.Warn("[dashboard][handler] activity failed", zap.Error(err))
	}
	page.Activity = activity

	c.HTML(status, "index.html", page)
}

type paymentsPage struct {
	Error    string
	Limit    int
	Payments []entities.PaymentIntent
	Detail   *response.PaymentResponse
	NoCharge bool
}

// Payments lists recent payments and, with payment_id, the fee breakdown of one of them.
func (h *DashboardHandler) Payments(c *gin.Context) {
	ctx := c.Request.Context()
	limit, err := queryInt(c, "limit", paymentsPageLimit)
	if err != nil {
		c.HTML(http.StatusBadRequest, "payments.html", paymentsPage{Error: err.Error(), Limit: paymentsPageLimit})
		return
	}
	page := paymentsPage{Limit: limit}

	payments, err := h.usecase.ListPayments(ctx, entities.ListRequest{Limit: int64(limit)})
	if err != nil {
		appErr := mapStripeTestbedError(err)
		page.Error = err.Error()
		c.HTML(appErr.HTTPStatus, "payments.html", page)
		return
	}
	page.Payments = payments

	if id := c.Query("payment_id"); id != "" {
		pi, err := h.usecase.GetPaymentDetails(ctx, id)
		if err != nil {
			appErr := mapStripeTestbedError(err)
			page.Error = err.Error()
			c.HTML(appErr.HTTPStatus, "payments.html", page)
			return
		}
		detail := response.FromPaymentIntent(pi)
		page.Detail = &detail
		page.NoCharge = !pi.HasBalanceTransaction()
	}

	c.HTML(http.StatusOK, "payments.html", page)
}

// CreatePayment runs the create-and-confirm flow from the dashboard form and
// redirects back to the index with the outcome.
func (h *DashboardHandler) CreatePayment(c *gin.Context) {
	var form request.DashboardPaymentForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", err.Error(), true, "")
		return
	}
	req, err := form.ToEntity()
	if err != nil {
		redirectWithFlash(c, "/", fmt.Sprintf("Invalid amount %q", form.Amount), true, "")
		return
	}

	result, err := h.usecase.CreatePayment(c.Request.Context(), req, usecase.NopObserver{})
	if err != nil {
		telemetry.Warn("[dashboard][handler] create payment failed", zap.Error(err))
		redirectWithFlash(c, "/", err.Error(), true, result.Intent.ID)
		return
	}

	msg := fmt.Sprintf("Payment %s: %s", result.Intent.ID, result.Outcome)
	if result.BalanceTransactionReady {
		bt := result.Intent.LatestCharge.BalanceTransaction
		msg += fmt.Sprintf(" (gross %s, fee %s, net %s)",
			response.FormatMinorUnits(bt.Amount, bt.Currency),
			response.FormatMinorUnits(bt.Fee, bt.Currency),
			response.FormatMinorUnits(bt.Net, bt.Currency))
	}
	redirectWithFlash(c, "/", msg, result.Outcome != usecase.PollOutcomeSucceeded, result.Intent.ID)
}

// CreateRefund refunds the latest charge of the posted payment id.
func (h *DashboardHandler) CreateRefund(c *gin.Context) {
	var form request.DashboardRefundForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", err.Error(), true, "")
		return
	}
	result, err := h.usecase.CreateRefund(c.Request.Context(), form.ToEntity())
	if err != nil {
		telemetry.Warn("[dashboard][handler] refund failed", zap.String("payment_id", form.PaymentID), zap.Error(err))
		redirectWithFlash(c, "/", err.Error(), true, form.PaymentID)
		return
	}
	if result.NoCharge || result.Refund == nil {
		redirectWithFlash(c, "/", "No charge found for this payment intent", true, result.PaymentIntentID)
		return
	}
	r := result.Refund
	redirectWithFlash(c, "/", fmt.Sprintf("Refund %s: %s %s", r.ID, r.Status, response.FormatMinorUnits(r.Amount, r.Currency)), false, result.PaymentIntentID)
}

func redirectWithFlash(c *gin.Context, path, msg string, isError bool, paymentID string) {
	q := url.Values{}
	q.Set("flash", msg)
	if isError {
		q.Set("level", "error")
	}
	if paymentID != "" {
		q.Set("payment_id", paymentID)
	}
	c.Redirect(http.StatusSeeOther, path+"?"+q.Encode())
}
