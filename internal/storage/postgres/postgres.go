// Package postgresstorage implements the storage.Backend interface on
// Postgres, connecting with the db.* config keys.
package postgresstorage

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormstorage "github.com/pitchkit/pitchkit/internal/storage/gorm"
)

// Backend wraps the GORM writer with Postgres connection handling.
type Backend struct {
	*gormstorage.Backend
}

// New creates a Postgres storage backend and validates the connection.
func New(log zerolog.Logger) (*Backend, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		viper.GetString("db.host"),
		viper.GetString("db.port"),
		viper.GetString("db.username"),
		viper.GetString("db.password"),
		viper.GetString("db.database"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        10000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open Postgres DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to validate Postgres connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)

	log.Info().Str("host", viper.GetString("db.host")).Msg("Connected to Postgres")

	return &Backend{Backend: gormstorage.New(db, log)}, nil
}
