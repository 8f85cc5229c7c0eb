package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "stripe_testbed/docs"
	"stripe_testbed/internal/adapter/http/handlers"
	"stripe_testbed/internal/adapter/persistence/repository"
	"stripe_testbed/internal/config"
	"stripe_testbed/internal/infrastructure/payments"
	"stripe_testbed/internal/infrastructure/telemetry"
	"stripe_testbed/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	ServiceName = "stripe-testbed-dashboard"
	DefaultPort = 8080

	// minWriteTimeout covers the JSON and page requests that do not poll.
	minWriteTimeout = 30 * time.Second
)

// Run builds the dashboard from cfg and serves it on port until ctx is done.
func Run(ctx context.Context, cfg *config.Config, port int) error {
	gateway, err := payments.NewStripeGateway(payments.StripeGatewayConfig{
		APIKey:  cfg.StripeAPIKey,
		BaseURL: getenvDefault("STRIPE_API_BASE", ""),
	})
	if err != nil {
		return err
	}
	activity, err := repository.NewActivityRepositoryFromEnv(ctx)
	if err != nil {
		return err
	}
	uc := usecase.NewStripeTestbedUseCase(gateway, activity, usecase.PollSettings{
		Interval:    cfg.PaymentSettings.CheckIntervalDuration(),
		MaxAttempts: cfg.PaymentSettings.MaxAttempts,
	})

	router, err := NewRouter(uc)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      WriteTimeout(cfg.PaymentSettings),
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("[dashboard][routes] listening", zap.String("addr", srv.Addr), zap.Duration("write_timeout", srv.WriteTimeout))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		telemetry.Info("[dashboard][routes] shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// WriteTimeout bounds a request long enough for a create-payment run: both
// poll loops plus the configured confirmation wait.
func WriteTimeout(s config.PaymentSettings) time.Duration {
	d := s.PollBudget() + s.ConfirmationWait()
	if d < minWriteTimeout {
		return minWriteTimeout
	}
	return d
}

// NewRouter wires the dashboard pages, the JSON API and the operational endpoints.
func NewRouter(uc usecase.IStripeTestbedUseCase) (*gin.Engine, error) {
	tmpl, err := handlers.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router)
	router.SetHTMLTemplate(tmpl)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dashboardHandler := handlers.NewDashboardHandler(uc)
	apiHandler := handlers.NewStripeTestbedHandler(uc)

	addDashboardRoutes(router, dashboardHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAPIRoutes(v1, apiHandler)
	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(otelgin.Middleware(ServiceName))
	router.Use(requestLogger())
	router.Use(httpMetrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		telemetry.Error("[dashboard][routes] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
