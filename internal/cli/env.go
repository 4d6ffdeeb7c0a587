package cli

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-flow/internal/config"
	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/operator"
	"github.com/carson-networks/budget-flow/internal/service"
	"github.com/carson-networks/budget-flow/internal/storage"
)

// env is everything a command needs, built after flags are parsed.
type env struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Storage  *storage.Storage
	Operator *operator.OperatorDelegator
	Service  *service.Service
}

// loadEnvFile loads .env for local development. A missing file is fine.
func loadEnvFile() {
	_ = godotenv.Load()
}

// setup loads configuration, applies command flag overrides and starts the
// operator. Callers must call close.
func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if rules := c.String("rules"); rules != "" {
		cfg.Rules.File = rules
	}
	if transactions := c.String("transactions"); transactions != "" {
		cfg.Transactions.File = transactions
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(c.App.ErrWriter, cfg.Log.Level)
	store := storage.NewStorage(cfg)
	delegator := operator.NewOperatorDelegator(store, cfg.Operator.Workers, logger)
	delegator.Start()

	return &env{
		Config:   cfg,
		Logger:   logger,
		Storage:  store,
		Operator: delegator,
		Service:  service.NewService(store, delegator, service.GraphSettingsFromConfig(cfg.Graph)),
	}, nil
}

func (e *env) close() {
	e.Operator.Stop()
}
