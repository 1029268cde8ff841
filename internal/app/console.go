package app

import (
	"os"

	"github.com/dkravets/go-task-manager/internal/config"
	"github.com/dkravets/go-task-manager/internal/delivery/console"
	"github.com/dkravets/go-task-manager/internal/services"
	"github.com/dkravets/go-task-manager/internal/storage/jsonfile"
	"github.com/dkravets/go-task-manager/internal/storage/sqlite"
)

// MustRunConsole wires the storage backends, the task service and the
// console handler, then blocks on the menu loop until the user exits.
func MustRunConsole() {
	cfg := config.Global()

	taskService := services.NewTaskService(
		globalLogger,
		jsonfile.New(globalLogger),
		sqlite.New(globalLogger),
		cfg.Tasks.Overwrite,
	)

	if cfg.Tasks.Autoload {
		err := taskService.LoadFromFile(cfg.Tasks.File)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Str("path", cfg.Tasks.File).
				Msg("failed to autoload tasks")
		}
	}

	handler := console.New(
		globalLogger,
		taskService,
		console.NewPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		cfg.Tasks.File,
	)

	err := handler.Run()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("console loop failed")
		panic(err)
	}
	globalLogger.Info().Msg("exited console loop")
}
