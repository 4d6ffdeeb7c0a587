package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-flow/internal/config"
	"github.com/carson-networks/budget-flow/internal/storage/rules"
)

func main() {
	env, err := config.Load(os.Getenv("BUDGET_CONFIG"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	store := rules.NewFileStore(env.Rules.File)
	result, err := rules.Migrate(context.Background(), store)
	if err != nil {
		logrus.WithError(err).Fatal("rules.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"rulesFile":          store.Path(),
		"preMigrationCount":  result.PreMigrationCount,
		"postMigrationCount": result.PostMigrationCount,
	}).Info("Migration status")
}
