package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkravets/go-task-manager/internal/models"
	"github.com/dkravets/go-task-manager/internal/storage"
)

type taskServiceImpl struct {
	logger    zerolog.Logger
	fileStore storage.Store
	dbStore   storage.Store
	overwrite bool
	tasks     []models.Task
}

func NewTaskService(
	logger zerolog.Logger,
	fileStore storage.Store,
	dbStore storage.Store,
	overwrite bool,
) TaskService {
	return &taskServiceImpl{
		logger:    logger,
		fileStore: fileStore,
		dbStore:   dbStore,
		overwrite: overwrite,
	}
}

func (s *taskServiceImpl) Append(task models.Task) {
	s.tasks = append(s.tasks, task)
	s.logger.Debug().
		Str("name", task.Name).
		Stringer("priority", task.Priority).
		Msg("appended task")

	s.logger.Info().
		Str("name", task.Name).
		Msg("appended task")
}

func (s *taskServiceImpl) PopLast() (models.Task, bool) {
	if len(s.tasks) == 0 {
		s.logger.Info().Msg("no tasks to pop")
		return models.Task{}, false
	}

	task := s.tasks[len(s.tasks)-1]
	s.tasks = s.tasks[:len(s.tasks)-1]
	s.logger.Info().
		Str("name", task.Name).
		Msg("popped task")
	return task, true
}

// indexOf returns the position of the first task whose name matches
// ignoring case, or -1.
func (s *taskServiceImpl) indexOf(name string) int {
	for i, task := range s.tasks {
		if strings.EqualFold(task.Name, name) {
			return i
		}
	}
	return -1
}

func (s *taskServiceImpl) Find(name string) (models.Task, bool) {
	i := s.indexOf(name)
	if i < 0 {
		s.logger.Info().
			Str("name", name).
			Msg("task not found")
		return models.Task{}, false
	}
	s.logger.Debug().
		Str("name", name).
		Int("index", i).
		Msg("found task")
	return s.tasks[i], true
}

func (s *taskServiceImpl) Remove(name string) (models.Task, error) {
	i := s.indexOf(name)
	if i < 0 {
		s.logger.Error().
			Str("name", name).
			Msg("task not found")
		return models.Task{}, fmt.Errorf("task %q: %w", name, ErrTaskNotFound)
	}

	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Info().
		Str("name", task.Name).
		Msg("removed task")
	return task, nil
}

func (s *taskServiceImpl) Clear() {
	s.tasks = nil
	s.logger.Info().Msg("removed all tasks")
}

func (s *taskServiceImpl) Tasks() []models.Task {
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *taskServiceImpl) Len() int {
	return len(s.tasks)
}

// storeFor picks the persistence backend by path extension.
func (s *taskServiceImpl) storeFor(path string) storage.Store {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return s.dbStore
	default:
		return s.fileStore
	}
}

func (s *taskServiceImpl) SaveToFile(path string) error {
	if !s.overwrite {
		_, err := os.Stat(path)
		if err == nil {
			s.logger.Info().
				Str("path", path).
				Msg("file already exists, leaving it untouched")
			return nil
		}
	}

	err := s.storeFor(path).Save(path, s.tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to save tasks")
		return err
	}
	s.logger.Info().
		Str("path", path).
		Int("count", len(s.tasks)).
		Msg("saved tasks")
	return nil
}

func (s *taskServiceImpl) LoadFromFile(path string) error {
	tasks, found, err := s.storeFor(path).Load(path)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to load tasks")
		return err
	}
	if !found {
		s.logger.Info().
			Str("path", path).
			Msg("no task file, keeping current tasks")
		return nil
	}

	s.tasks = tasks
	s.logger.Info().
		Str("path", path).
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return nil
}
