package versioning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// gitAbbrevLen matches git's default commit abbreviation length.
const gitAbbrevLen = 7

// OpenRepository opens the Git repository containing path, walking up
// parent directories the way the git binary does.
func OpenRepository(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// gitInfoService reads branch and tag metadata through go-git.
type gitInfoService struct{}

func (s *gitInfoService) BranchTypeSeparator() string {
	return DefaultBranchTypeSeparator
}

func (s *gitInfoService) open(ctx BuildContext) (*git.Repository, error) {
	if ctx.Repository != nil {
		return ctx.Repository, nil
	}

	dir := ctx.Dir
	if dir == "" {
		dir = "."
	}
	return OpenRepository(dir)
}

func (s *gitInfoService) Info(ctx BuildContext, cfg Config) (SCMInfo, error) {
	repo, err := s.open(ctx)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return SCMInfoNone, nil
	}
	if err != nil {
		return SCMInfoNone, fmt.Errorf("opening git repository: %w", err)
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Repository exists but has no commits yet.
		return SCMInfoNone, nil
	}
	if err != nil {
		return SCMInfoNone, fmt.Errorf("resolving HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		// Detached HEAD carries no branch name to derive a version from.
		return SCMInfoNone, nil
	}

	commit := head.Hash().String()
	return SCMInfo{
		Branch:      head.Name().Short(),
		Commit:      commit,
		Abbreviated: commit[:gitAbbrevLen],
	}, nil
}

func (s *gitInfoService) BaseTags(ctx BuildContext, cfg Config, base string) ([]string, error) {
	repo, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	prefix := base + "."
	var matched []string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if strings.HasPrefix(name, prefix) {
			matched = append(matched, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	sortTagsDescending(matched)
	return matched, nil
}
