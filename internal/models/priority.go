package models

import "fmt"

// Priority is the severity level of a task.
//
// PriorityUnset is a transient "not chosen yet" sentinel used while
// reading user input; stored tasks always carry one of the four real
// levels.
type Priority int

const (
	PriorityUnset Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityVeryHigh
)

// PriorityFromIndex maps a menu index (1..4) to a priority level.
// It returns PriorityUnset and false for any other index.
func PriorityFromIndex(index int) (Priority, bool) {
	switch index {
	case 1:
		return PriorityLow, true
	case 2:
		return PriorityMedium, true
	case 3:
		return PriorityHigh, true
	case 4:
		return PriorityVeryHigh, true
	default:
		return PriorityUnset, false
	}
}

// String returns the display label, e.g. "Very High".
// The label of PriorityUnset is empty.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityVeryHigh:
		return "Very High"
	default:
		return ""
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	switch p {
	case PriorityUnset:
		return []byte("Unset"), nil
	case PriorityLow:
		return []byte("Low"), nil
	case PriorityMedium:
		return []byte("Medium"), nil
	case PriorityHigh:
		return []byte("High"), nil
	case PriorityVeryHigh:
		return []byte("VeryHigh"), nil
	default:
		return nil, fmt.Errorf("unknown priority: %d", int(p))
	}
}

func (p *Priority) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Unset":
		*p = PriorityUnset
	case "Low":
		*p = PriorityLow
	case "Medium":
		*p = PriorityMedium
	case "High":
		*p = PriorityHigh
	case "VeryHigh":
		*p = PriorityVeryHigh
	default:
		return fmt.Errorf("unknown priority: %q", string(text))
	}
	return nil
}
