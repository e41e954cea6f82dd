package argvio

// StyleSet holds the named escape sequences used by the reporter: reset,
// bold, dim, and the two foreground colors for error and info symbols. It is
// explicit injected configuration, not hidden process-global state; callers
// build one at startup and hand it to every Reporter that needs it.
type StyleSet struct {
	Reset string
	Bold  string
	Dim   string
	Error string // red foreground
	Info  string // bright blue foreground
}

// EnabledStyles returns the ANSI escape sequences for every style variable.
func EnabledStyles() StyleSet {
	return StyleSet{
		Reset: "\033[0m",
		Bold:  "\033[1m",
		Dim:   "\033[2m",
		Error: "\033[31m",
		Info:  "\033[94m",
	}
}

// DisabledStyles returns a set where every style variable is the empty
// string, so formatted messages carry no escape sequences at all.
func DisabledStyles() StyleSet {
	return StyleSet{}
}

// DetectStyles picks the enabled or disabled set based on the manager's
// color support.
func DetectStyles(m *IOManager) StyleSet {
	if m.SupportsColor() {
		return EnabledStyles()
	}
	return DisabledStyles()
}

// Toggle switches the set between enabled and disabled in place. Keyed on
// Reset: a non-empty reset sequence means styles are currently on. Toggling
// twice restores the original values exactly.
func (s *StyleSet) Toggle() {
	if s.Reset != "" {
		*s = DisabledStyles()
	} else {
		*s = EnabledStyles()
	}
}
