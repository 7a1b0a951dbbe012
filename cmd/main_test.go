package main

import (
	"testing"

	"github.com/musketyr/versioning"
	"github.com/stretchr/testify/require"
)

func TestFieldOutput(t *testing.T) {
	info := versioning.VersionInfo{
		SCM:        "git",
		Branch:     "feature/login",
		BranchType: "feature",
		BranchID:   "feature-login",
		Full:       "feature-login-ab12cd3",
		Base:       "login",
		Display:    "feature-login-ab12cd3",
		Commit:     "ab12cd3456789012345678901234567890123456",
		Build:      "ab12cd3",
	}

	cases := map[string]string{
		"display":    "feature-login-ab12cd3",
		"full":       "feature-login-ab12cd3",
		"base":       "login",
		"branch":     "feature/login",
		"branchType": "feature",
		"branchId":   "feature-login",
		"commit":     "ab12cd3456789012345678901234567890123456",
		"build":      "ab12cd3",
		"scm":        "git",
	}

	for field, want := range cases {
		require.Equal(t, want, fieldOutput(info, field), "field %q", field)
	}
}

func TestBuildConfig(t *testing.T) {
	cli := CLI{
		SCM:         "svn",
		Releases:    []string{"release", "hotfix"},
		DisplayMode: "snapshot",
		Snapshot:    ".dev",
	}

	cfg := cli.buildConfig()
	require.Equal(t, "svn", cfg.SCM)
	require.Equal(t, map[string]bool{"release": true, "hotfix": true}, cfg.Releases)
	require.Equal(t, "snapshot", cfg.DisplayMode.String())
	require.Equal(t, ".dev", cfg.Snapshot)
	require.NotNil(t, cfg.BranchParser)
	require.NotNil(t, cfg.Full)
}

func TestRunOutsideRepository(t *testing.T) {
	cli := CLI{Repo: t.TempDir(), SCM: "git", DisplayMode: "full", Snapshot: "-SNAPSHOT"}
	require.NoError(t, cli.Run())
}
