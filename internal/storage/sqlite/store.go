package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/dkravets/go-task-manager/internal/models"
	"github.com/dkravets/go-task-manager/internal/storage"
)

// Store keeps task lists in a single-table SQLite database file.
// Each Save replaces the table contents wholesale, mirroring the
// whole-list semantics of the JSON backend.
type Store struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Store {
	return &Store{logger: logger}
}

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    priority TEXT NOT NULL,
    created_at TEXT NOT NULL
)
`

func (s *Store) open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if _, err = db.Exec(createTasksTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init %q: %w", path, err)
	}
	return db, nil
}

func (s *Store) Save(path string, tasks []models.Task) error {
	db, err := s.open(path)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to open task database")
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to begin transaction")
		return fmt.Errorf("begin %q: %w", path, err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM tasks`); err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to clear tasks table")
		return fmt.Errorf("clear %q: %w", path, err)
	}

	const insertTaskQuery = `
INSERT INTO tasks (name, description, priority, created_at)
VALUES (?, ?, ?, ?)
`
	for _, task := range tasks {
		priority, err := task.Priority.MarshalText()
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			insertTaskQuery,
			task.Name,
			task.Description,
			string(priority),
			task.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("name", task.Name).
				Msg("failed to insert task")
			return fmt.Errorf("insert into %q: %w", path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to commit tasks")
		return fmt.Errorf("commit %q: %w", path, err)
	}
	s.logger.Debug().
		Str("path", path).
		Int("count", len(tasks)).
		Msg("saved tasks to sqlite")
	return nil
}

func (s *Store) Load(path string) ([]models.Task, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().
			Str("path", path).
			Msg("task database does not exist")
		return nil, false, nil
	}

	db, err := s.open(path)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to open task database")
		return nil, false, err
	}
	defer db.Close()

	const selectTasksQuery = `
SELECT name, description, priority, created_at
FROM tasks
ORDER BY id
`
	rows, err := db.Query(selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to select tasks")
		return nil, false, fmt.Errorf("select from %q: %w", path, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		var priority, createdAt string
		err = rows.Scan(&task.Name, &task.Description, &priority, &createdAt)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, false, fmt.Errorf("scan %q: %w", path, err)
		}
		if err = task.Priority.UnmarshalText([]byte(priority)); err != nil {
			return nil, false, fmt.Errorf("%w: %v", storage.ErrParse, err)
		}
		task.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", storage.ErrParse, err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, false, fmt.Errorf("iterate %q: %w", path, err)
	}
	s.logger.Debug().
		Str("path", path).
		Int("count", len(tasks)).
		Msg("loaded tasks from sqlite")
	return tasks, true, nil
}
