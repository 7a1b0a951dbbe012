package versioning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blang/semver"
)

// SCMInfoService queries one source control backend for the metadata the
// engine needs. Implementations may invoke external tooling; failures of
// that tooling are reported as errors, while the absence of a repository
// is the SCMInfoNone sentinel with a nil error.
type SCMInfoService interface {
	// Info returns the current branch, the full commit id and a
	// backend-defined abbreviated commit id.
	Info(ctx BuildContext, cfg Config) (SCMInfo, error)

	// BaseTags returns existing tag names on the release line named by
	// base, highest version first. Empty when none exist.
	BaseTags(ctx BuildContext, cfg Config, base string) ([]string, error)

	// BranchTypeSeparator is the delimiter this backend's branch naming
	// convention uses between branch type and base.
	BranchTypeSeparator() string
}

// Registry maps backend names to their SCMInfoService implementations. It
// is built once at startup and read-only afterwards.
type Registry struct {
	backends map[string]SCMInfoService
}

// NewRegistry returns a registry with the built-in git and svn backends.
func NewRegistry() *Registry {
	return &Registry{
		backends: map[string]SCMInfoService{
			"git": &gitInfoService{},
			"svn": &svnInfoService{},
		},
	}
}

// Lookup resolves a backend by name.
func (r *Registry) Lookup(name string) (SCMInfoService, error) {
	svc, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSCMBackend, name)
	}
	return svc, nil
}

// Backends returns the registered backend names, sorted.
func (r *Registry) Backends() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortTagsDescending orders release tags highest version first so the
// engine can take the first tag as the current maximum. Tags that parse as
// semantic versions are compared numerically; anything else falls back to
// a reverse string comparison.
func sortTagsDescending(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		vi, erri := semver.ParseTolerant(tags[i])
		vj, errj := semver.ParseTolerant(tags[j])
		if erri == nil && errj == nil {
			return vi.GT(vj)
		}
		return strings.Compare(tags[i], tags[j]) > 0
	})
}
