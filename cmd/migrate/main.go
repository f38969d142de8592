package main

import (
	"log"
	"os"
	"strconv"

	"github.com/SeaCloudHub/customers/adapters/postgrestore"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/SeaCloudHub/customers/pkg/logger"
)

// usage: migrate [up|down [steps]]
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

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		applog.Fatal(err)
	}
	defer sqlDB.Close()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		n, err := postgrestore.Migrate(sqlDB, postgrestore.DialectPostgres)
		if err != nil {
			applog.Fatal(err)
		}
		applog.Infof("applied %d migrations", n)
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil {
				applog.Fatalf("invalid steps %q: %v", os.Args[2], err)
			}
		}

		n, err := postgrestore.Rollback(sqlDB, postgrestore.DialectPostgres, steps)
		if err != nil {
			applog.Fatal(err)
		}
		applog.Infof("rolled back %d migrations", n)
	default:
		applog.Fatalf("unknown direction %q, expected up or down", direction)
	}
}
