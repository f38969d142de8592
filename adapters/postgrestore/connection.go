package postgrestore

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Options struct {
	DSN   string
	Debug bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN:   c.DB.DSN(),
		Debug: c.Debug,
	}
}

func NewConnection(opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{
		Logger:         NewGormLogger(opts.Debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	return db, nil
}

// NewSQLXConnection opens the raw-SQL handle used by read-side queries.
func NewSQLXConnection(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	return db, nil
}

func NewGormLogger(debug bool) gormLogger.Interface {
	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}

	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
