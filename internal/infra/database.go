package infra

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all entity tables. Timestamps are generated in UTC so
// stored values match the UTC values services set explicitly.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Source{},
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.ProductLog{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
