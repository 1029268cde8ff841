package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/dkravets/go-task-manager/internal/models"
	"github.com/dkravets/go-task-manager/internal/services"
)

// Handler drives the interactive menu loop.
type Handler interface {
	Run() error
}

type handlerImpl struct {
	logger      zerolog.Logger
	tasks       services.TaskService
	prompt      Prompter
	out         io.Writer
	defaultPath string
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	prompt Prompter,
	out io.Writer,
	defaultPath string,
) Handler {
	return &handlerImpl{
		logger:      logger,
		tasks:       taskService,
		prompt:      prompt,
		out:         out,
		defaultPath: defaultPath,
	}
}

func (h *handlerImpl) handleAdd() {
	name, err := h.prompt.Input("Enter name of new task: ")
	if err != nil {
		h.reportInputError(err)
		return
	}
	description, err := h.prompt.Input("Enter description: ")
	if err != nil {
		h.reportInputError(err)
		return
	}

	priority := models.PriorityUnset
	for priority == models.PriorityUnset {
		token, err := h.prompt.Input("Enter index of priority (1. Low, 2. Medium, 3. High, 4. Very High): ")
		if err != nil {
			h.reportInputError(err)
			return
		}
		index, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		priority, _ = models.PriorityFromIndex(index)
	}

	h.tasks.Append(models.NewTask(name, description, priority))
}

func (h *handlerImpl) handlePopLast() {
	task, ok := h.tasks.PopLast()
	if !ok {
		fmt.Fprintln(h.out, "List of tasks is empty")
		return
	}
	fmt.Fprintf(h.out, "Task %q removed\n", task.Name)
}

func (h *handlerImpl) handleRemove() {
	name, err := h.prompt.Input("Enter name of task that you wanna remove: ")
	if err != nil {
		h.reportInputError(err)
		return
	}

	task, err := h.tasks.Remove(name)
	if err != nil {
		fmt.Fprintf(h.out, "Task %q not found\n", name)
		return
	}
	fmt.Fprintf(h.out, "Task %q removed\n", task.Name)
}

func (h *handlerImpl) handleFind() {
	name, err := h.prompt.Input("Enter name of task that you wanna find: ")
	if err != nil {
		h.reportInputError(err)
		return
	}

	task, ok := h.tasks.Find(name)
	if !ok {
		fmt.Fprintf(h.out, "Task %q not found\n", name)
		return
	}
	fmt.Fprintln(h.out, task)
}

func (h *handlerImpl) handleList() {
	for _, task := range h.tasks.Tasks() {
		fmt.Fprintln(h.out, task)
		fmt.Fprintln(h.out)
	}
}

func (h *handlerImpl) handleClear() {
	h.tasks.Clear()
	fmt.Fprintln(h.out, "All tasks removed")
}

func (h *handlerImpl) handleSave() {
	path, err := h.prompt.Input("Enter path to file where to store tasks: ")
	if err != nil {
		h.reportInputError(err)
		return
	}
	if path == "" {
		path = h.defaultPath
	}

	err = h.tasks.SaveToFile(path)
	if err != nil {
		fmt.Fprintf(h.out, "Error to store to file %q: %v\n", path, err)
		return
	}
	fmt.Fprintf(h.out, "Tasks stored to %q\n", path)
}

func (h *handlerImpl) handleLoad() {
	path, err := h.prompt.Input("Enter path to file that store tasks: ")
	if err != nil {
		h.reportInputError(err)
		return
	}
	if path == "" {
		path = h.defaultPath
	}

	err = h.tasks.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(h.out, "Error to read from file %q: %v\n", path, err)
		return
	}
	fmt.Fprintf(h.out, "Tasks read from %q\n", path)
}

func (h *handlerImpl) reportInputError(err error) {
	h.logger.Error().
		Err(err).
		Msg("failed to read user input")
	fmt.Fprintf(h.out, "Error user input: %v\n", err)
}
