package storage

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	memorystorage "github.com/pitchkit/pitchkit/internal/storage/memory"
	postgresstorage "github.com/pitchkit/pitchkit/internal/storage/postgres"
	sqlitestorage "github.com/pitchkit/pitchkit/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on the storage.type config key.
func NewBackend(log zerolog.Logger) (Backend, error) {
	switch backendType := viper.GetString("storage.type"); backendType {
	case "postgres":
		return postgresstorage.New(log)
	case "sqlite":
		return sqlitestorage.New(log, viper.GetString("storage.sqlite.path"))
	case "memory":
		return memorystorage.New(log, memorystorage.Config{
			OutputDir:      viper.GetString("storage.memory.outputDir"),
			CompressOutput: viper.GetBool("storage.memory.compressOutput"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", backendType)
	}
}
