package routes

import (
	"stripe_testbed/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBalance        = "/balance"
	PathPayments       = "/payments"
	PathCustomers      = "/customers"
	PathRefunds        = "/refunds"
	PathPaymentMethods = "/payment-methods"
	PathActivity       = "/activity"
)

func addAPIRoutes(rg *gin.RouterGroup, h *handlers.StripeTestbedHandler) {
	rg.GET(PathBalance, h.GetBalance)

	payments := rg.Group(PathPayments)
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.GET("/:payment_id", h.GetPayment)
	}

	rg.POST(PathCustomers, h.CreateCustomer)
	rg.POST(PathRefunds, h.CreateRefund)
	rg.GET(PathPaymentMethods, h.ListPaymentMethods)
	rg.GET(PathActivity, h.ListActivity)
}

func addDashboardRoutes(router *gin.Engine, h *handlers.DashboardHandler) {
	router.GET("/", h.Index)
	router.GET("/payments", h.Payments)

	actions := router.Group("/actions")
	{
		actions.POST("/create-payment", h.CreatePayment)
		actions.POST("/create-refund", h.CreateRefund)
	}
}
