package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/SeaCloudHub/customers/adapters/bootstrap"
	"github.com/SeaCloudHub/customers/adapters/services"
	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/SeaCloudHub/customers/internal"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/SeaCloudHub/customers/pkg/logger"
	"github.com/SeaCloudHub/customers/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

// usage: seed [customers.csv]
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

	records := defaultRecords()
	if len(os.Args) > 1 {
		records, err = readRecords(services.NewCSVService(), os.Args[1])
		if err != nil {
			applog.Fatalf("cannot read %s: %v", os.Args[1], err)
		}
	}

	ctx := context.Background()
	var created int
	for _, r := range records {
		if _, err := app.CustomerService.Create(ctx, r.ID, r.Name, r.Address); err != nil {
			if errors.Is(err, customer.ErrValidation) {
				applog.Warnf("skipping customer %q: %v", r.ID, err)
				continue
			}

			applog.Fatalf("cannot create customer %q: %v", r.ID, err)
		}
		created++
	}

	applog.Infof("%d customers created successfully", created)
}

func defaultRecords() []services.CustomerRecord {
	address1 := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	address2 := customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2")

	return []services.CustomerRecord{
		{ID: "123", Name: "Customer 1", Address: &address1},
		{ID: "456", Name: "Customer 2", Address: &address2},
	}
}

func readRecords(csvService internal.CSVService, path string) ([]services.CustomerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entities, err := csvService.CsvToEntities(f, services.CustomerRecordMapper)
	if err != nil {
		return nil, err
	}

	records := make([]services.CustomerRecord, 0, len(entities))
	for _, e := range entities {
		records = append(records, e.(services.CustomerRecord))
	}

	return records, nil
}
