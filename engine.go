package versioning

import "fmt"

// Engine resolves the version for one build invocation. It is not safe
// for concurrent use; a build computes its version once and reads the
// memoized result thereafter.
type Engine struct {
	registry *Registry
	cfg      Config

	cached *VersionInfo
}

// NewEngine returns an engine using the given backend registry and
// configuration. Zero-value config fields fall back to the defaults from
// DefaultConfig.
func NewEngine(registry *Registry, cfg Config) *Engine {
	defaults := DefaultConfig()
	if cfg.SCM == "" {
		cfg.SCM = defaults.SCM
	}
	if cfg.BranchParser == nil {
		cfg.BranchParser = defaults.BranchParser
	}
	if cfg.Full == nil {
		cfg.Full = defaults.Full
	}
	if cfg.Releases == nil {
		cfg.Releases = defaults.Releases
	}
	if cfg.Snapshot == "" {
		cfg.Snapshot = defaults.Snapshot
	}
	if cfg.DisplayMode.name == "" && cfg.DisplayMode.fn == nil {
		cfg.DisplayMode = defaults.DisplayMode
	}

	return &Engine{registry: registry, cfg: cfg}
}

// ComputeInfo resolves the version record for the build context. The
// first successful result is memoized for the lifetime of the engine;
// later calls return it without touching the backend again. A missing
// source control context yields VersionInfoNone, not an error.
func (e *Engine) ComputeInfo(ctx BuildContext) (VersionInfo, error) {
	if e.cached != nil {
		return *e.cached, nil
	}

	info, err := e.compute(ctx)
	if err != nil {
		return VersionInfoNone, err
	}

	e.cached = &info
	return info, nil
}

// Reset discards the memoized result so the next ComputeInfo call
// recomputes it.
func (e *Engine) Reset() {
	e.cached = nil
}

func (e *Engine) compute(ctx BuildContext) (VersionInfo, error) {
	svc, err := e.registry.Lookup(e.cfg.SCM)
	if err != nil {
		return VersionInfoNone, err
	}

	scmInfo, err := svc.Info(ctx, e.cfg)
	if err != nil {
		return VersionInfoNone, fmt.Errorf("reading %s info: %w", e.cfg.SCM, err)
	}
	if scmInfo.IsNone() {
		return VersionInfoNone, nil
	}

	parsed := e.cfg.BranchParser(scmInfo.Branch, svc.BranchTypeSeparator())
	branchID := NormalizeBranch(scmInfo.Branch)
	full := e.cfg.Full(branchID, scmInfo.Abbreviated)

	base := parsed.Base
	var display string
	if e.cfg.Releases[parsed.Type] {
		tags, err := svc.BaseTags(ctx, e.cfg, base)
		if err != nil {
			return VersionInfoNone, fmt.Errorf("listing %s release tags: %w", e.cfg.SCM, err)
		}
		display, err = nextReleaseVersion(base, tags)
		if err != nil {
			return VersionInfoNone, err
		}
	} else {
		if base == "" {
			base = branchID
		}
		fn, err := e.cfg.DisplayMode.resolve()
		if err != nil {
			return VersionInfoNone, err
		}
		display = fn(parsed.Type, branchID, base, scmInfo.Abbreviated, full, &e.cfg)
	}

	return VersionInfo{
		SCM:        e.cfg.SCM,
		Branch:     scmInfo.Branch,
		BranchType: parsed.Type,
		BranchID:   branchID,
		Full:       full,
		Base:       base,
		Display:    display,
		Commit:     scmInfo.Commit,
		Build:      scmInfo.Abbreviated,
	}, nil
}
