package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-flow/api"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port, overrides http.port",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()

			port := e.Config.HTTP.Port
			if p := c.String("port"); p != "" {
				port = p
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			e.Logger.Info("budget-flow starting")
			rest := api.Rest{
				Logger:  e.Logger,
				Port:    port,
				Service: e.Service,
				Config:  e.Config,
			}
			return rest.Serve(ctx)
		},
	}
}
