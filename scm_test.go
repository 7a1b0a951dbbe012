package versioning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("Built-in backends", func(t *testing.T) {
		require.Equal(t, []string{"git", "svn"}, registry.Backends())

		git, err := registry.Lookup("git")
		require.NoError(t, err)
		require.Equal(t, "/", git.BranchTypeSeparator())

		svn, err := registry.Lookup("svn")
		require.NoError(t, err)
		require.Equal(t, "-", svn.BranchTypeSeparator())
	})

	t.Run("Unknown backend", func(t *testing.T) {
		_, err := registry.Lookup("cvs")
		require.ErrorIs(t, err, ErrUnknownSCMBackend)
	})
}

func TestSortTagsDescending(t *testing.T) {
	t.Run("Numeric ordering", func(t *testing.T) {
		tags := []string{"2.0.9", "2.0.10", "2.0.2"}
		sortTagsDescending(tags)
		require.Equal(t, []string{"2.0.10", "2.0.9", "2.0.2"}, tags)
	})

	t.Run("Non-version tags fall back to string order", func(t *testing.T) {
		tags := []string{"alpha", "gamma", "beta"}
		sortTagsDescending(tags)
		require.Equal(t, []string{"gamma", "beta", "alpha"}, tags)
	})
}
