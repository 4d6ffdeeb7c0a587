package cli

import (
	"os"

	"github.com/urfave/cli/v2"
)

// NewApp builds the budget-flow command line.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "budget-flow",
		Usage: "categorize bank transactions and build revenue/expense flow graphs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"BUDGET_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "category rules file, overrides rules.file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level, overrides log.level",
			},
		},
		Before: func(*cli.Context) error {
			loadEnvFile()
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			categorizeCommand(),
			flowCommand(),
			categoriesCommand(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func transactionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "transactions",
			Aliases: []string{"t"},
			Usage:   "JSON transactions file, overrides transactions.file",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "first date to include, 2006-01-02",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "last date to include, 2006-01-02",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "only transactions of this account type (current, savings, investment, other)",
		},
	}
}
