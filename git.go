package main

import "github.com/go-git/go-git/v5"

const (
	detachedHead = "Detached HEAD"
	notGitRepo   = "Not a git repo"
)

// gitBranch returns the branch checked out in the repository at path.
// Parent directories are not searched: path itself must hold the git metadata.
// A HEAD that does not resolve to a branch (detached, or an unborn branch with
// no commits) yields detachedHead; any failure to open the repository yields
// notGitRepo.
func gitBranch(path string) string {
	repo, err := git.PlainOpen(path)
	if err != nil {
		log.Debug("not a git repository", "path", path, "error", err)
		return notGitRepo
	}

	head, err := repo.Head()
	if err != nil {
		log.Debug("could not resolve HEAD", "path", path, "error", err)
		return detachedHead
	}

	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	return detachedHead
}
