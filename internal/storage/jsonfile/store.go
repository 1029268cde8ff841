package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dkravets/go-task-manager/internal/models"
	"github.com/dkravets/go-task-manager/internal/storage"
)

// Store reads and writes task lists as JSON files. The schema is an array
// of objects with name, description, priority and createdAt fields.
type Store struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Store {
	return &Store{logger: logger}
}

// Encode serializes tasks in insertion order. A nil list encodes as [].
func Encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Decode is the inverse of Encode. Malformed or schema-incompatible
// input fails with an error wrapping storage.ErrParse.
func Decode(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrParse, err)
	}
	return tasks, nil
}

func (s *Store) Save(path string, tasks []models.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to encode tasks")
		return err
	}

	// Write a uniquely named sibling first so a failed write
	// never clobbers the target.
	tmp := path + "." + uuid.NewString() + ".tmp"
	err = os.WriteFile(tmp, data, 0644)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to write task file")
		return fmt.Errorf("write %q: %w", path, err)
	}

	err = os.Rename(tmp, path)
	if err != nil {
		_ = os.Remove(tmp)
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to replace task file")
		return fmt.Errorf("replace %q: %w", path, err)
	}
	s.logger.Debug().
		Str("path", path).
		Int("count", len(tasks)).
		Msg("saved tasks to json file")
	return nil
}

func (s *Store) Load(path string) ([]models.Task, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().
			Str("path", path).
			Msg("task file does not exist")
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to read task file")
		return nil, false, fmt.Errorf("read %q: %w", path, err)
	}

	tasks, err := Decode(data)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to decode task file")
		return nil, false, err
	}
	s.logger.Debug().
		Str("path", path).
		Int("count", len(tasks)).
		Msg("loaded tasks from json file")
	return tasks, true, nil
}
