package console

import (
	"errors"
	"fmt"
	"io"
)

// Run prints the banner and menu, then reads one command per iteration
// until the exit command or the end of input. Every failure, including
// remove/save/load errors, is printed and the loop resumes.
func (h *handlerImpl) Run() error {
	fmt.Fprintln(h.out, "Task Manager 1.0")
	h.printMenu()

	for {
		command, err := h.prompt.Input("\nEnter command index: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.logger.Info().Msg("input closed, exiting")
				return nil
			}
			h.reportInputError(err)
			continue
		}

		if !h.dispatch(command) {
			h.logger.Info().Msg("exit command received")
			return nil
		}
	}
}

// dispatch runs one command and reports whether the loop should continue.
func (h *handlerImpl) dispatch(command string) bool {
	switch command {
	case "h":
		h.printMenu()
	case "1":
		h.handleAdd()
	case "2":
		h.handlePopLast()
	case "3":
		h.handleRemove()
	case "4":
		h.handleFind()
	case "5":
		h.handleList()
	case "6":
		h.handleClear()
	case "7":
		h.handleSave()
	case "8":
		h.handleLoad()
	case "9":
		return false
	default:
		fmt.Fprintln(h.out, "Invalid input")
	}
	return true
}

func (h *handlerImpl) printMenu() {
	fmt.Fprintln(h.out, "\nh - for help \n\n1. Add Task \n2. Pop Task \n3. Remove Task \n4. Find Task")
	fmt.Fprintln(h.out, "5. List of Tasks \n6. Remove all Tasks \n7. Store Tasks to file \n8. Read Tasks from file \n9. Exit")
}
