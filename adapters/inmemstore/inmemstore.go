package inmemstore

import (
	"fmt"

	"github.com/SeaCloudHub/customers/adapters/postgrestore"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Connection is a migrated, throwaway sqlite database exposed through both
// handles the stores expect.
type Connection struct {
	Gorm *gorm.DB
	SQLX *sqlx.DB
}

func NewConnection() (*Connection, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// every new connection to :memory: is a fresh, empty database
	sqlDB.SetMaxOpenConns(1)

	if _, err := postgrestore.Migrate(sqlDB, postgrestore.DialectSQLite); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Connection{
		Gorm: db,
		SQLX: sqlx.NewDb(sqlDB, postgrestore.DialectSQLite),
	}, nil
}

func (c *Connection) Close() error {
	return c.SQLX.Close()
}
