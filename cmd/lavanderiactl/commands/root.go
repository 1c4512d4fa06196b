package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikeRez0/lavanderia/internal/adapter/auth"
	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/MikeRez0/lavanderia/internal/adapter/logger"
	"github.com/MikeRez0/lavanderia/internal/adapter/metrics"
	"github.com/MikeRez0/lavanderia/internal/adapter/scheduler"
	"github.com/MikeRez0/lavanderia/internal/adapter/storage"
	"github.com/MikeRez0/lavanderia/internal/adapter/storage/repository"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/MikeRez0/lavanderia/internal/core/service"
)

type app struct {
	db   *storage.DB
	repo port.Repository
	svc  port.Service
	log  *zap.Logger

	close func()
}

var (
	dsn    string
	appCtx *app
)

func Execute() error {
	return runRoot(newRootCmd())
}

// runRoot releases the app even when the command fails; cobra skips
// PersistentPostRun after a RunE error.
func runRoot(root *cobra.Command) error {
	defer closeApp()
	return root.Execute()
}

func closeApp() {
	if appCtx != nil && appCtx.close != nil {
		appCtx.close()
	}
	appCtx = nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lavanderiactl",
		Short:        "Operator tools for the laundry payment ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.NewConfigFromEnv()
			if err != nil {
				return err
			}
			if dsn != "" {
				conf.Database.DSN = dsn
			}
			appCtx, err = newApp(cmd, conf)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&dsn, "database", "d", "", "database DSN (default $DATABASE_URI)")

	root.AddCommand(reconcileCmd(), ratesCmd())
	return root
}

func newApp(cmd *cobra.Command, conf *config.Config) (*app, error) {
	log, err := logger.NewLogger(conf.App)
	if err != nil {
		return nil, err
	}
	db, err := storage.NewDBStorage(cmd.Context(), conf.Database)
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		db.Close()
		return nil, err
	}
	sched, err := scheduler.New(conf.Reconcile, log.Named("Scheduler"))
	if err != nil {
		db.Close()
		return nil, err
	}
	svc, err := service.NewService(repo, tokenService, sched, metrics.NewPrometheus(),
		log.Named("Service"), service.WithStrictRates(conf.Reconcile.StrictRates))
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{db: db, repo: repo, svc: svc, log: log, close: func() {
		db.Close()
		_ = log.Sync()
	}}, nil
}
