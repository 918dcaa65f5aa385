// Package config loads pitchkit configuration from a JSON file with viper,
// layering file values over built-in defaults. A missing config file is not
// an error; every key has a usable default.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigFileName is the config file looked up in the config directory.
const ConfigFileName = "pitchkit.cfg.json"

// Load reads configuration from the JSON file in configDir and sets default
// values for anything the file does not provide.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./pitchkitlogs")

	viper.SetDefault("input.path", "")
	viper.SetDefault("input.format", "json")

	viper.SetDefault("transform.provider", "")
	viper.SetDefault("transform.orientation", "")

	viper.SetDefault("state.builders", []string{"score", "sequence", "lineup", "formation"})

	viper.SetDefault("export.format", "csv")
	viper.SetDefault("export.outputDir", "./out")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./out")
	viper.SetDefault("storage.memory.compressOutput", true)
	viper.SetDefault("storage.sqlite.path", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "pitchkit")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "pitchkit-metrics")
	viper.SetDefault("influx.bucket", "pitchkit")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults carry a file-less run.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStringSlice returns a string slice config value.
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
