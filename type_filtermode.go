package skintrack

import "fmt"

// FilterMode restricts a roster filter by ownership status.
type FilterMode int

const (
	// All keeps every champion regardless of ownership.
	All FilterMode = iota
	// MustHaveOwned keeps only champions with at least one owned skin.
	MustHaveOwned
	// MustHaveNone keeps only champions with no owned skin.
	MustHaveNone
)

func (m FilterMode) String() string {
	switch m {
	case All:
		return "all"
	case MustHaveOwned:
		return "owned"
	case MustHaveNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseFilterMode parses a string into a FilterMode.
func ParseFilterMode(s string) (FilterMode, error) {
	switch s {
	case "all", "":
		return All, nil
	case "owned":
		return MustHaveOwned, nil
	case "none":
		return MustHaveNone, nil
	default:
		return 0, fmt.Errorf("unknown filter mode: %q", s)
	}
}
