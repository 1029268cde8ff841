package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dkravets/go-task-manager/internal/config"
)

func MustReadConfig() {
	reader := config.Reader(config.NewEnvReader())

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		reader = config.NewFileReader(path)
	}

	cfg, err := reader.Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read config")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Msg("read config")

	config.SetGlobal(cfg)
}
