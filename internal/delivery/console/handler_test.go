package console

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dkravets/go-task-manager/internal/services"
	"github.com/dkravets/go-task-manager/internal/storage/jsonfile"
	"github.com/dkravets/go-task-manager/internal/storage/sqlite"
)

// runSession feeds script to a fresh handler and returns the produced
// output along with the task service for further assertions.
func runSession(t *testing.T, script string) (string, services.TaskService) {
	t.Helper()

	logger := zerolog.Nop()
	taskService := services.NewTaskService(logger, jsonfile.New(logger), sqlite.New(logger), true)

	var out bytes.Buffer
	handler := New(logger, taskService, NewPrompter(strings.NewReader(script), &out), &out, "tasks.json")

	if err := handler.Run(); err != nil {
		t.Fatalf("Run() err = %v, want nil", err)
	}
	return out.String(), taskService
}

func TestRun_ExitCommand(t *testing.T) {
	out, _ := runSession(t, "9\n")
	if !strings.Contains(out, "Task Manager 1.0") {
		t.Fatalf("output missing banner:\n%s", out)
	}
	if !strings.Contains(out, "1. Add Task") {
		t.Fatalf("output missing menu:\n%s", out)
	}
}

func TestRun_EndsOnClosedInput(t *testing.T) {
	// No exit command; the loop must stop at end of input
	// instead of spinning.
	out, _ := runSession(t, "5\n")
	if strings.Contains(out, "Error user input") {
		t.Fatalf("closed input reported as an error:\n%s", out)
	}
}

func TestRun_InvalidCommand(t *testing.T) {
	out, _ := runSession(t, "x\n9\n")
	if !strings.Contains(out, "Invalid input") {
		t.Fatalf("output missing invalid input message:\n%s", out)
	}
}

func TestRun_HelpReprintsMenu(t *testing.T) {
	out, _ := runSession(t, "h\n9\n")
	if strings.Count(out, "1. Add Task") != 2 {
		t.Fatalf("menu printed %d times, want 2:\n%s", strings.Count(out, "1. Add Task"), out)
	}
}

func TestRun_AddAndList(t *testing.T) {
	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "1",
		"1", "Milk", "2%", "2",
		"5",
		"9",
	}, "\n") + "\n"

	out, taskService := runSession(t, script)

	if taskService.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", taskService.Len())
	}

	breadAt := strings.Index(out, "Bread | Low | ")
	milkAt := strings.Index(out, "Milk | Medium | ")
	if breadAt < 0 || milkAt < 0 {
		t.Fatalf("list output missing tasks:\n%s", out)
	}
	if breadAt > milkAt {
		t.Fatalf("tasks listed out of insertion order:\n%s", out)
	}
	if !strings.Contains(out, "\"Buy bread\"") {
		t.Fatalf("list output missing description:\n%s", out)
	}
}

func TestRun_Add_RetriesInvalidPriority(t *testing.T) {
	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "0", "nope", "7", "4",
		"9",
	}, "\n") + "\n"

	out, taskService := runSession(t, script)

	if taskService.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", taskService.Len())
	}
	task, ok := taskService.Find("Bread")
	if !ok {
		t.Fatal("Find() ok = false, want true")
	}
	if got := task.Priority.String(); got != "Very High" {
		t.Fatalf("priority = %q, want %q", got, "Very High")
	}
	if n := strings.Count(out, "Enter index of priority"); n != 4 {
		t.Fatalf("priority prompted %d times, want 4:\n%s", n, out)
	}
}

func TestRun_PopLast(t *testing.T) {
	out, _ := runSession(t, "2\n9\n")
	if !strings.Contains(out, "List of tasks is empty") {
		t.Fatalf("output missing empty list message:\n%s", out)
	}

	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "1",
		"2",
		"9",
	}, "\n") + "\n"
	out, taskService := runSession(t, script)
	if !strings.Contains(out, `Task "Bread" removed`) {
		t.Fatalf("output missing removal message:\n%s", out)
	}
	if taskService.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", taskService.Len())
	}
}

func TestRun_Remove_NotFoundKeepsLoopAlive(t *testing.T) {
	script := strings.Join([]string{
		"3", "Groceries",
		"6",
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, script)
	if !strings.Contains(out, `Task "Groceries" not found`) {
		t.Fatalf("output missing not found message:\n%s", out)
	}
	// The clear command after the failed remove proves the loop survived.
	if !strings.Contains(out, "All tasks removed") {
		t.Fatalf("loop did not continue after failed remove:\n%s", out)
	}
}

func TestRun_Remove_CaseInsensitive(t *testing.T) {
	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "1",
		"3", "bread",
		"9",
	}, "\n") + "\n"

	out, taskService := runSession(t, script)
	if !strings.Contains(out, `Task "Bread" removed`) {
		t.Fatalf("output missing removal message:\n%s", out)
	}
	if taskService.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", taskService.Len())
	}
}

func TestRun_Find(t *testing.T) {
	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "1",
		"4", "BREAD",
		"4", "Milk",
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, script)
	if !strings.Contains(out, "Bread | Low | ") {
		t.Fatalf("output missing found task:\n%s", out)
	}
	if !strings.Contains(out, `Task "Milk" not found`) {
		t.Fatalf("output missing not found message:\n%s", out)
	}
}

func TestRun_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	script := strings.Join([]string{
		"1", "Bread", "Buy bread", "1",
		"7", path,
		"6",
		"8", path,
		"5",
		"9",
	}, "\n") + "\n"

	out, taskService := runSession(t, script)
	if !strings.Contains(out, "Tasks stored to") {
		t.Fatalf("output missing store confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Tasks read from") {
		t.Fatalf("output missing read confirmation:\n%s", out)
	}
	if taskService.Len() != 1 {
		t.Fatalf("Len() = %d after save/clear/load, want 1", taskService.Len())
	}
}

func TestRun_Load_FailureKeepsLoopAlive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	script := strings.Join([]string{
		"8", path + string([]byte{0}),
		"6",
		"9",
	}, "\n") + "\n"

	// A path the OS rejects must surface as a printed error,
	// not a terminated program.
	out, _ := runSession(t, script)
	if !strings.Contains(out, "All tasks removed") {
		t.Fatalf("loop did not continue after failed load:\n%s", out)
	}
}
