package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pitchkit/pitchkit/internal/config"
	"github.com/pitchkit/pitchkit/internal/logging"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigFileName)
	inputPath := flag.String("input", "", "match file to process (overrides input.path)")
	provider := flag.String("provider", "", "target provider coordinate system (overrides transform.provider)")
	orientation := flag.String("orientation", "", "target orientation (overrides transform.orientation)")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *inputPath != "" {
		viper.Set("input.path", *inputPath)
	}
	if *provider != "" {
		viper.Set("transform.provider", *provider)
	}
	if *orientation != "" {
		viper.Set("transform.orientation", *orientation)
	}

	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logPath := logging.LogFilePath(logsDir, "pitchkit", time.Now().UTC())
	logFile, err := os.Create(filepath.Clean(logPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logging.Setup(logFile)

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("Pipeline failed")
		os.Exit(1)
	}
}
