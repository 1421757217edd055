package tools

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/minatoya/callagent/tool"
)

// RepoStatusRequest is the input for the repo_status tool.
type RepoStatusRequest struct {
	Path string `json:"path,omitempty" jsonschema_description:"Directory inside the repository to inspect (defaults to the working directory)."`
}

// RepoStatusResponse is the output of the repo_status tool.
type RepoStatusResponse struct {
	Branch     string `json:"branch"`
	Clean      bool   `json:"clean"`
	Modified   int    `json:"modified"`
	Untracked  int    `json:"untracked"`
	HeadCommit string `json:"head_commit,omitempty"`
}

// NewRepoStatus builds the repo_status tool: it reports the current
// branch and working-tree state of the git repository containing path.
func NewRepoStatus() tool.Tool {
	return tool.NewTyped(
		"repo_status",
		"Reports the git branch and working tree state of the local repository.",
		runRepoStatus,
	)
}

func runRepoStatus(req RepoStatusRequest) (RepoStatusResponse, error) {
	path := req.Path
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return RepoStatusResponse{}, fmt.Errorf("open repository at %s: %v", path, err)
	}

	resp := RepoStatusResponse{}
	head, err := repo.Head()
	if err == nil {
		resp.Branch = head.Name().Short()
		resp.HeadCommit = head.Hash().String()
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return RepoStatusResponse{}, fmt.Errorf("open worktree: %v", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return RepoStatusResponse{}, fmt.Errorf("read worktree status: %v", err)
	}

	for _, fileStatus := range status {
		if fileStatus.Worktree == git.Untracked {
			resp.Untracked++
			continue
		}
		if fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified {
			resp.Modified++
		}
	}
	resp.Clean = status.IsClean()

	return resp, nil
}
