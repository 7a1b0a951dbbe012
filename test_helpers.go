package versioning

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

var testSignature = &object.Signature{
	Name:  "test",
	Email: "test@example.com",
	When:  time.Now(),
}

// testRepoCreate creates a new in-memory git repository for testing.
func testRepoCreate() (*git.Repository, error) {
	storage := memory.NewStorage()
	fs := memfs.New()
	return git.Init(storage, fs)
}

// testRepoCommit writes a file and commits it, returning the commit hash.
func testRepoCommit(repo *git.Repository, filename, content string) (plumbing.Hash, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	if err := writeFile(workTree.Filesystem, filename, content); err != nil {
		return plumbing.ZeroHash, err
	}

	if _, err := workTree.Add(filename); err != nil {
		return plumbing.ZeroHash, err
	}

	return workTree.Commit("Add "+filename, &git.CommitOptions{Author: testSignature})
}

// testRepoCheckoutBranch creates the named branch at HEAD and switches to it.
func testRepoCheckoutBranch(repo *git.Repository, name string) error {
	workTree, err := repo.Worktree()
	if err != nil {
		return err
	}

	return workTree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
}

// testRepoOnBranch creates a repository with a single commit on the named
// branch.
func testRepoOnBranch(branch string) (*git.Repository, error) {
	repo, err := testRepoCreate()
	if err != nil {
		return nil, err
	}

	if _, err := testRepoCommit(repo, "test.txt", "Hello world"); err != nil {
		return nil, err
	}

	if err := testRepoCheckoutBranch(repo, branch); err != nil {
		return nil, err
	}

	return repo, nil
}

// testRepoTag creates lightweight tags pointing at HEAD.
func testRepoTag(repo *git.Repository, tags ...string) error {
	head, err := repo.Head()
	if err != nil {
		return err
	}

	for _, tag := range tags {
		if _, err := repo.CreateTag(tag, head.Hash(), nil); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes content to a file in the given filesystem.
func writeFile(fs billy.Filesystem, filename, content string) error {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write([]byte(content))
	return err
}
