package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SeaCloudHub/customers/adapters/bootstrap"
	"github.com/SeaCloudHub/customers/adapters/httpserver"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/SeaCloudHub/customers/pkg/logger"
	"github.com/SeaCloudHub/customers/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	app, err := bootstrap.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}
	defer app.Close()

	server, err := httpserver.New(cfg, applog,
		httpserver.WithCustomerService(app.CustomerService),
	)
	if err != nil {
		applog.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Info("server started!")
	applog.Fatal(http.ListenAndServe(addr, server))
}
