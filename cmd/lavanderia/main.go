package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/lavanderia/internal/adapter/auth"
	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/MikeRez0/lavanderia/internal/adapter/handler/http"
	"github.com/MikeRez0/lavanderia/internal/adapter/logger"
	"github.com/MikeRez0/lavanderia/internal/adapter/metrics"
	"github.com/MikeRez0/lavanderia/internal/adapter/scheduler"
	"github.com/MikeRez0/lavanderia/internal/adapter/storage"
	"github.com/MikeRez0/lavanderia/internal/adapter/storage/repository"
	"github.com/MikeRez0/lavanderia/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	defer db.Close()
	version, err := db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}
	log.Info("database ready", zap.Uint("schemaVersion", version))

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	reconcileScheduler, err := scheduler.New(conf.Reconcile, log.Named("Scheduler"))
	if err != nil {
		log.Error("scheduler creating error", zap.Error(err))
		return
	}
	promMetrics := metrics.NewPrometheus()

	svc, err := service.NewService(repo, tokenService, reconcileScheduler, promMetrics,
		log.Named("Service"), service.WithStrictRates(conf.Reconcile.StrictRates))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	reconcileScheduler.Run(ctx, svc)
	// workers must drain before the pool is closed
	defer func() {
		stop()
		reconcileScheduler.Wait()
		log.Info("reconcile workers stopped")
	}()
	if err := scheduler.RecallOrders(ctx, repo, reconcileScheduler); err != nil {
		log.Error("recall orders error", zap.Error(err))
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	settingsHandler, err := http.NewSettingsHandler(svc, log.Named("Settings handler"))
	if err != nil {
		log.Error("settings handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.App, tokenService, http.Handlers{
		User:     userHandler,
		Order:    orderHandler,
		Balance:  balanceHandler,
		Payment:  paymentHandler,
		Settings: settingsHandler,
	}, promMetrics.Handler(), log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("starting server", zap.String("address", conf.HTTP.HostString),
		zap.Bool("strictRates", conf.Reconcile.StrictRates))
	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
	log.Info("server stopped")
}
