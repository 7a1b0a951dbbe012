package versioning

import "fmt"

// DisplayFunc formats the human-facing version for a non-release branch.
// It receives the branch type, the normalized branch identifier, the base
// (defaulted to the branch identifier when the branch name has no base
// segment), the abbreviated commit, the assembled full version, and the
// active configuration.
type DisplayFunc func(branchType, branchID, base, build, full string, cfg *Config) string

// DisplayMode selects display formatting: either one of the registered
// mode names or a caller-supplied function. The zero value is invalid and
// rejected at resolution time.
type DisplayMode struct {
	name string
	fn   DisplayFunc
}

// NamedMode selects a registered display mode by name: "full", "snapshot"
// or "base".
func NamedMode(name string) DisplayMode {
	return DisplayMode{name: name}
}

// CustomMode wraps a caller-supplied formatting function.
func CustomMode(fn DisplayFunc) DisplayMode {
	return DisplayMode{fn: fn}
}

func (m DisplayMode) String() string {
	switch {
	case m.fn != nil:
		return "custom"
	case m.name != "":
		return m.name
	default:
		return "invalid"
	}
}

// displayModes is the fixed mode table. Populated once, never mutated.
var displayModes = map[string]DisplayFunc{
	"full": func(_, branchID, _, build, _ string, _ *Config) string {
		return branchID + "-" + build
	},
	"snapshot": func(_, _, base, _, _ string, cfg *Config) string {
		return base + cfg.Snapshot
	},
	"base": func(_, _, base, _, _ string, _ *Config) string {
		return base
	},
}

// resolve returns the formatting function for the mode.
func (m DisplayMode) resolve() (DisplayFunc, error) {
	if m.fn != nil {
		return m.fn, nil
	}
	if m.name == "" {
		return nil, ErrInvalidDisplayModeType
	}

	fn, ok := displayModes[m.name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDisplayMode, m.name)
	}
	return fn, nil
}
