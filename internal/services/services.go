package services

import (
	"errors"

	"github.com/dkravets/go-task-manager/internal/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService owns the ordered in-memory task list and its persistence.
//
// Task names are not unique: Append never rejects a duplicate, and Find
// and Remove match the first task in insertion order whose name equals
// the given one ignoring case.
//
// The service is not safe for concurrent use; the console loop is its
// only caller.
type TaskService interface {
	// Append adds a task to the end of the list.
	Append(task models.Task)

	// PopLast removes and returns the most recently appended task.
	// It reports false on an empty list.
	PopLast() (models.Task, bool)

	// Find returns the first task whose name matches, ignoring case.
	Find(name string) (models.Task, bool)

	// Remove deletes and returns the first task whose name matches,
	// ignoring case.
	//
	// It returns ErrTaskNotFound, leaving the list unchanged, if no
	// task has the given name.
	Remove(name string) (models.Task, error)

	// Clear drops every task.
	Clear()

	// Tasks returns a copy of the list in insertion order.
	Tasks() []models.Task

	// Len reports the number of tasks.
	Len() int

	// SaveToFile persists the whole list to path. The backend is chosen
	// by the path's extension: .db, .sqlite and .sqlite3 go to SQLite,
	// anything else to a JSON file. When overwriting is disabled and a
	// file already exists at path, the call leaves it untouched.
	SaveToFile(path string) error

	// LoadFromFile replaces the whole list with the one stored at path.
	// A missing file is a no-op that keeps the current tasks.
	LoadFromFile(path string) error
}
