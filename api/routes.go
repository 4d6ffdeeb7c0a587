package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-flow/internal/config"
	"github.com/carson-networks/budget-flow/internal/handlers/v1/category"
	"github.com/carson-networks/budget-flow/internal/handlers/v1/flow"
	"github.com/carson-networks/budget-flow/internal/handlers/v1/status"
	"github.com/carson-networks/budget-flow/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Config  *config.Config
}

// Handler returns the routes: /status as a plain handler and everything else
// through the Huma API.
func (r *Rest) Handler() http.Handler {
	statusHandler := status.NewHandler(r.Config.Rules.File)

	apiMux := http.NewServeMux()
	humaAPI := humago.New(apiMux, huma.DefaultConfig("Budget Flow API", "1.0.0"))
	transaction.NewCategorizeHandler(r.Service.Categorize).Register(humaAPI)
	category.NewHandler(r.Service.Categories).Register(humaAPI)
	flow.NewBuildFlowHandler(r.Service.Flow, r.Config.Graph.Currency).Register(humaAPI)

	mux := http.NewServeMux()
	mux.Handle("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler))
	mux.Handle("/", logging.LoggingWrapper("API", r.Logger, apiMux))
	return mux
}

// Serve listens until ctx is done, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(10)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
