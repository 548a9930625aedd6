package transcript

import (
	"fmt"
	"strings"
)

// Mode selects which renderer handles a document.
type Mode int

const (
	// ModeAuto defers the choice to DetectMode.
	ModeAuto Mode = iota
	ModeFlat
	ModeThreaded
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeThreaded:
		return "threaded"
	default:
		return "auto"
	}
}

// ParseMode maps a mode name (auto, flat, threaded) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "flat":
		return ModeFlat, nil
	case "threaded", "threads", "tree":
		return ModeThreaded, nil
	default:
		return ModeAuto, fmt.Errorf("unknown render mode %q (want auto, flat or threaded)", s)
	}
}

// DetectMode reports ModeThreaded when any top-level message carries a
// threads key. Messages nested inside threads are not inspected.
func DetectMode(msgs []Message) Mode {
	for _, msg := range msgs {
		if msg.HasThreads {
			return ModeThreaded
		}
	}
	return ModeFlat
}
