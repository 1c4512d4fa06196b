package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

type Handlers struct {
	User     *UserHandler
	Order    *OrderHandler
	Balance  *BalanceHandler
	Payment  *PaymentHandler
	Settings *SettingsHandler
}

func NewRouter(
	conf *config.App,
	tokenService port.TokenService,
	handlers Handlers,
	metrics http.Handler,
	logger *zap.Logger) (*Router, error) {
	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := SetupValidator(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", handlers.User.RegisterUser)
			user.POST("/login", handlers.User.LoginUser)
		}

		authorized := api.Group("")
		authorized.Use(authCheck(tokenService))

		orders := authorized.Group("/orders")
		{
			orders.POST("", handlers.Order.CreateOrder)
			orders.GET("", handlers.Order.ListOrders)
			orders.GET("/:id", handlers.Order.GetOrder)
			orders.GET("/:id/balance", handlers.Balance.OrderBalance)
			orders.POST("/:id/reconcile", handlers.Order.ReconcileOrder)

			payments := orders.Group("/:id/payments")
			{
				payments.GET("", handlers.Payment.ListPayments)
				payments.POST("", handlers.Payment.CreatePayment)
				payments.PUT("/:paymentID", handlers.Payment.UpdatePayment)
				payments.DELETE("/:paymentID", handlers.Payment.DeletePayment)
			}
		}

		settings := authorized.Group("/settings")
		{
			settings.GET("", handlers.Settings.GetSettings)
			settings.PUT("", handlers.Settings.UpdateSettings)
		}
	}

	return &Router{router}, nil
}

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// letting in-flight requests finish.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
