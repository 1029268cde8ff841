package storage

import (
	"errors"

	"github.com/dkravets/go-task-manager/internal/models"
)

// ErrParse reports stored task data that could not be decoded.
var ErrParse = errors.New("malformed task data")

// Store persists a whole ordered task list at a path on disk.
type Store interface {
	// Save replaces whatever the backend holds at path with tasks.
	// Either the full list ends up stored or the call fails.
	Save(path string, tasks []models.Task) error

	// Load reads the task list stored at path, preserving order.
	// found is false when nothing is stored there; that is not an error.
	Load(path string) (tasks []models.Task, found bool, err error)
}
