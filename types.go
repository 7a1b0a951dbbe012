// Package versioning derives a normalized version identifier from source
// control branch metadata. It answers "what version are we building?" given
// the current branch, the latest commit, and, for release branches, the set
// of previously published release tags.
package versioning

import (
	"errors"

	"github.com/go-git/go-git/v5"
)

var (
	// ErrUnknownSCMBackend is returned when Config.SCM names a backend
	// that is not present in the registry.
	ErrUnknownSCMBackend = errors.New("unknown scm backend")

	// ErrInvalidDisplayMode is returned when a named display mode is not
	// one of the registered modes.
	ErrInvalidDisplayMode = errors.New("invalid display mode")

	// ErrInvalidDisplayModeType is returned when a display mode carries
	// neither a mode name nor a formatting function.
	ErrInvalidDisplayModeType = errors.New("display mode must be a registered name or a function")

	// ErrMalformedTag is returned when the most recent release tag does
	// not end in the expected "<base>.<number>" pattern.
	ErrMalformedTag = errors.New("malformed release tag")
)

// SCMInfo describes the source control state of the current build.
type SCMInfo struct {
	Branch      string
	Commit      string
	Abbreviated string
}

// SCMInfoNone is the sentinel for "no source control context detected",
// for example when the working directory is not inside a repository. It is
// a valid result, not an error.
var SCMInfoNone = SCMInfo{}

// IsNone reports whether the info is the no-context sentinel.
func (i SCMInfo) IsNone() bool {
	return i == SCMInfoNone
}

// BranchInfo is the result of splitting a branch name into its leading
// type segment and the remaining base.
type BranchInfo struct {
	Type string
	Base string
}

// VersionInfo is the assembled version record for one build invocation.
type VersionInfo struct {
	SCM        string `json:"scm"`
	Branch     string `json:"branch"`
	BranchType string `json:"branchType"`
	BranchID   string `json:"branchId"`
	Full       string `json:"full"`
	Base       string `json:"base"`
	Display    string `json:"display"`
	Commit     string `json:"commit"`
	Build      string `json:"build"`
}

// VersionInfoNone is the sentinel returned when no version could be
// determined because no source control context exists.
var VersionInfoNone = VersionInfo{}

// IsNone reports whether the record is the no-version sentinel.
func (v VersionInfo) IsNone() bool {
	return v == VersionInfoNone
}

// BuildContext carries the per-build environment the backends inspect.
type BuildContext struct {
	// Dir is the directory the build runs in; backends discover the
	// repository from here.
	Dir string

	// Repository, when set, is used by the git backend instead of
	// discovering a repository under Dir. Primarily for tests and for
	// callers that already hold an open repository.
	Repository *git.Repository
}

// BranchParserFunc splits a raw branch name into (type, base) using the
// backend's separator.
type BranchParserFunc func(branch, separator string) BranchInfo

// FullVersionFunc assembles the full version from the normalized branch
// identifier and the abbreviated commit.
type FullVersionFunc func(branchID, abbreviated string) string

// Config controls how the engine resolves a version. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// SCM selects the backend from the registry.
	SCM string

	// BranchParser overrides branch splitting.
	BranchParser BranchParserFunc

	// Full overrides full-version assembly.
	Full FullVersionFunc

	// Releases is the set of branch types treated as release lines.
	Releases map[string]bool

	// DisplayMode selects the display formatting for non-release branches.
	DisplayMode DisplayMode

	// Snapshot is the suffix appended by the snapshot display mode.
	Snapshot string
}

// DefaultConfig returns the standard configuration: git backend, default
// branch parsing, "release" branches treated as release lines, full
// display mode, and the conventional snapshot suffix.
func DefaultConfig() Config {
	return Config{
		SCM:          "git",
		BranchParser: ParseBranch,
		Full:         defaultFullVersion,
		Releases:     map[string]bool{"release": true},
		DisplayMode:  NamedMode("full"),
		Snapshot:     "-SNAPSHOT",
	}
}

func defaultFullVersion(branchID, abbreviated string) string {
	return branchID + "-" + abbreviated
}
