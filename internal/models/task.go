package models

import (
	"fmt"
	"time"
)

// DisplayTimeFormat is how task creation times are rendered on screen.
// The persisted form is RFC 3339 and is unrelated to this format.
const DisplayTimeFormat = "02-01-2006  15:04:05"

// Task is a named, described, prioritized unit of work. It is a value
// record: once created it is only ever replaced whole, never mutated.
//
// Name is the lookup key for find and remove, compared case-insensitively.
// Nothing enforces uniqueness; with duplicates the first task in insertion
// order wins.
type Task struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask builds a task stamped with the current local time.
func NewTask(name, description string, priority Priority) Task {
	return Task{
		Name:        name,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}
}

func (t Task) String() string {
	return fmt.Sprintf("%s | %s | %s\n\"%s\"",
		t.Name,
		t.Priority,
		t.CreatedAt.Format(DisplayTimeFormat),
		t.Description,
	)
}
