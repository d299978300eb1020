package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/whatishedoing/domainmodels/internal/api"
	"github.com/whatishedoing/domainmodels/pkg/config"
	"github.com/whatishedoing/domainmodels/pkg/environment"
	"github.com/whatishedoing/domainmodels/pkg/httpserver"
	"github.com/whatishedoing/domainmodels/pkg/i18n"
	"github.com/whatishedoing/domainmodels/pkg/logger"
	"github.com/whatishedoing/domainmodels/pkg/requestid"
)

const serviceName = "domain-api"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[api.Config]()
	if err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	catalog, err := i18n.Default(i18n.WithLogger(log))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := api.NewRouter(api.Deps{
		Logger:   log,
		Env:      environment.Parse(cfg.Env),
		Catalog:  catalog,
		Registry: reg,
		Samples:  cfg.Samples,
	})

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
