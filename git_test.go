package versioning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGitInfo(t *testing.T) {
	svc := &gitInfoService{}
	cfg := DefaultConfig()

	t.Run("Branch with commit", func(t *testing.T) {
		repo, err := testRepoOnBranch("feature/login")
		require.NoError(t, err)

		info, err := svc.Info(BuildContext{Repository: repo}, cfg)
		require.NoError(t, err)
		require.False(t, info.IsNone())
		require.Equal(t, "feature/login", info.Branch)
		require.Len(t, info.Commit, 40)
		require.Len(t, info.Abbreviated, gitAbbrevLen)
		require.Equal(t, info.Commit[:gitAbbrevLen], info.Abbreviated)
	})

	t.Run("Default branch", func(t *testing.T) {
		repo, err := testRepoCreate()
		require.NoError(t, err)
		_, err = testRepoCommit(repo, "test.txt", "Hello world")
		require.NoError(t, err)

		info, err := svc.Info(BuildContext{Repository: repo}, cfg)
		require.NoError(t, err)
		require.Equal(t, "master", info.Branch)
	})

	t.Run("Repository without commits", func(t *testing.T) {
		repo, err := testRepoCreate()
		require.NoError(t, err)

		info, err := svc.Info(BuildContext{Repository: repo}, cfg)
		require.NoError(t, err)
		require.True(t, info.IsNone())
	})

	t.Run("Directory without repository", func(t *testing.T) {
		info, err := svc.Info(BuildContext{Dir: t.TempDir()}, cfg)
		require.NoError(t, err)
		require.True(t, info.IsNone())
	})
}

func TestGitBaseTags(t *testing.T) {
	svc := &gitInfoService{}
	cfg := DefaultConfig()

	t.Run("Highest version first", func(t *testing.T) {
		repo, err := testRepoOnBranch("release/2.0")
		require.NoError(t, err)
		require.NoError(t, testRepoTag(repo, "2.0.1", "2.0.10", "2.0.9", "2.1.0", "other"))

		tags, err := svc.BaseTags(BuildContext{Repository: repo}, cfg, "2.0")
		require.NoError(t, err)
		require.Equal(t, []string{"2.0.10", "2.0.9", "2.0.1"}, tags)
	})

	t.Run("No matching tags", func(t *testing.T) {
		repo, err := testRepoOnBranch("release/3.0")
		require.NoError(t, err)
		require.NoError(t, testRepoTag(repo, "2.0.1"))

		tags, err := svc.BaseTags(BuildContext{Repository: repo}, cfg, "3.0")
		require.NoError(t, err)
		require.Empty(t, tags)
	})
}

func TestOpenRepository(t *testing.T) {
	t.Run("Non-existent directory", func(t *testing.T) {
		_, err := OpenRepository("/non/existent/path")
		require.Error(t, err)
	})
}
