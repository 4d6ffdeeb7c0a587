package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-flow/internal/cli"
)

func main() {
	if err := cli.NewApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("budget-flow")
	}
}
