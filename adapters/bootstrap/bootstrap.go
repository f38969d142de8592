package bootstrap

import (
	"fmt"

	"github.com/SeaCloudHub/customers/adapters/event"
	"github.com/SeaCloudHub/customers/adapters/event/listeners"
	"github.com/SeaCloudHub/customers/adapters/inmemstore"
	"github.com/SeaCloudHub/customers/adapters/notificationhub"
	"github.com/SeaCloudHub/customers/adapters/postgrestore"
	"github.com/SeaCloudHub/customers/adapters/redisstore"
	"github.com/SeaCloudHub/customers/adapters/services"
	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	DB              *gorm.DB
	SQLX            *sqlx.DB
	Redis           *redis.Client
	EventDispatcher domain.EventDispatcher
	CustomerService customer.Service
}

// New opens storage, applies migrations, registers listeners and builds the
// customer service.
func New(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{}

	if err := app.openDatabase(cfg); err != nil {
		return nil, err
	}

	dispatcherOptions := []event.Option{event.WithLogger(logger)}
	if cfg.Events.IsolateFailures {
		dispatcherOptions = append(dispatcherOptions, event.WithFailureIsolation())
	}
	dispatcher := event.NewEventDispatcher(dispatcherOptions...)
	listeners.RegisterDefaults(dispatcher, logger)

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("cannot connect to redis: %w", err)
		}
		app.Redis = rdb

		publisher := listeners.NewPublishEventListener(redisstore.NewRedisClient(rdb), cfg.Redis.Channel)
		dispatcher.Register(customer.CustomerCreatedEventName, publisher)
		dispatcher.Register(customer.AddressChangedEventName, publisher)
	}

	if cfg.NotificationHub.Endpoint != "" {
		hub, err := notificationhub.NewNotificationHub(cfg)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("cannot init notification hub: %w", err)
		}

		dispatcher.Register(customer.AddressChangedEventName, listeners.NewNotifyCustomerListener(hub))
	}

	app.EventDispatcher = dispatcher
	app.CustomerService = services.NewCustomerService(
		postgrestore.NewCustomerStore(app.DB),
		postgrestore.NewSummaryStore(app.SQLX),
		dispatcher,
		logger,
	)

	return app, nil
}

func (a *App) openDatabase(cfg *config.Config) error {
	if cfg.DB.InMemory {
		conn, err := inmemstore.NewConnection()
		if err != nil {
			return err
		}

		a.DB, a.SQLX = conn.Gorm, conn.SQLX
		return nil
	}

	opts := postgrestore.ParseFromConfig(cfg)

	db, err := postgrestore.NewConnection(opts)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if _, err := postgrestore.Migrate(sqlDB, postgrestore.DialectPostgres); err != nil {
		return multierr.Append(err, sqlDB.Close())
	}

	sqlxDB, err := postgrestore.NewSQLXConnection(opts)
	if err != nil {
		return multierr.Append(err, sqlDB.Close())
	}

	a.DB, a.SQLX = db, sqlxDB

	return nil
}

func (a *App) Close() error {
	var err error

	if a.Redis != nil {
		err = multierr.Append(err, a.Redis.Close())
	}

	if a.SQLX != nil {
		err = multierr.Append(err, a.SQLX.Close())
	}

	if a.DB != nil {
		if sqlDB, derr := a.DB.DB(); derr == nil {
			// in-memory mode shares one *sql.DB between both handles
			_ = sqlDB.Close()
		}
	}

	return err
}
