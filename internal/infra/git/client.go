// Package git provides git repository detection.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/runoshun/aicli/internal/domain"
)

// Client provides git repository information.
type Client struct {
	repoRoot string // Root of the work tree containing the start directory
}

// NewClient creates a new git client by detecting the repository root from the given directory.
// It walks up parent directories the way git itself does.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no work tree to hold a project config.
		return nil, fmt.Errorf("resolve work tree: %w", err)
	}

	return &Client{repoRoot: filepath.Clean(wt.Filesystem.Root())}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// ProjectRoot returns the repository root containing dir, or dir itself
// when it is not inside a git work tree.
func ProjectRoot(dir string) string {
	client, err := NewClient(dir)
	if err != nil {
		return dir
	}
	return client.RepoRoot()
}
