package licensure

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// The data directory is synchronized by delegating to the user's own git
// binary, so their existing remotes and credentials are reused. The core only
// reports a warning when push fails; a local commit is never lost to a dead
// network.

func gitDisabled(noGitFlag bool) bool {
	return noGitFlag || os.Getenv("HOURS_NO_GIT") == "1"
}

func gitBinaryExists() bool {
	cmd := exec.Command("git", "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

func runGit(dataDir string, args ...string) ([]byte, error) {
	full := append([]string{"-C", dataDir}, args...)
	return exec.Command("git", full...).CombinedOutput()
}

func runGitChecked(dataDir string, args ...string) error {
	out, err := runGit(dataDir, args...)
	if err != nil {
		return fmt.Errorf("git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(string(out)))
	}
	return nil
}

func isGitRepo(dataDir string) bool {
	_, err := runGit(dataDir, "rev-parse", "--git-dir")
	return err == nil
}

// GitInit prepares the data directory for syncing: creates it, initializes a
// repository if needed, registers the remote, and writes a .gitignore that
// keeps temp files and exports out of history.
func GitInit(dataDir, remoteName, remoteURL string) error {
	if !gitBinaryExists() {
		return fmt.Errorf("git is not installed: install git and try again")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %s: %w", dataDir, err)
	}
	if !isGitRepo(dataDir) {
		if err := runGitChecked(dataDir, "init"); err != nil {
			return err
		}
	}
	if _, err := runGit(dataDir, "remote", "get-url", remoteName); err != nil && remoteURL != "" {
		if err := runGitChecked(dataDir, "remote", "add", remoteName, remoteURL); err != nil {
			return err
		}
	}
	gitignore := dataDir + "/.gitignore"
	if err := os.WriteFile(gitignore, []byte("*.tmp\nexports/\n"), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", gitignore, err)
	}
	return nil
}

// GitCommit stages the ledger file and commits it. Committing an unchanged
// tree is a no-op, not an error.
func GitCommit(dataDir, message string) error {
	if !isGitRepo(dataDir) {
		return fmt.Errorf("data directory %s is not a git repository: run `hours init` to set up", dataDir)
	}
	if err := runGitChecked(dataDir, "add", "hours.json"); err != nil {
		return err
	}
	if _, err := os.Stat(dataDir + "/.gitignore"); err == nil {
		runGit(dataDir, "add", ".gitignore")
	}
	out, err := runGit(dataDir, "commit", "-m", message)
	if err != nil {
		if strings.Contains(string(out), "nothing to commit") {
			return nil
		}
		return fmt.Errorf("git commit failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

func currentBranch(dataDir string) string {
	out, err := runGit(dataDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "main"
	}
	return strings.TrimSpace(string(out))
}

func gitPush(dataDir, remote string) {
	branch := currentBranch(dataDir)
	if out, err := runGit(dataDir, "push", "-u", remote, branch); err != nil {
		log.Printf("warning: git push failed: %s. Data saved locally.", strings.TrimSpace(string(out)))
	}
}

// GitSync commits the ledger with the given change description and, when auto
// push is enabled and a remote exists, pushes it. Push failures only warn;
// the save that preceded the sync is already durable.
func GitSync(dataDir string, cfg GitConfig, message string, noGit bool) error {
	if gitDisabled(noGit) {
		return nil
	}
	if !gitBinaryExists() {
		log.Print("warning: git is not installed. Data is saved locally only.")
		return nil
	}
	if !isGitRepo(dataDir) {
		return fmt.Errorf("data directory %s is not a git repository: run `hours init` to set up", dataDir)
	}
	if err := GitCommit(dataDir, message); err != nil {
		return err
	}
	if cfg.AutoPush {
		out, err := runGit(dataDir, "remote")
		if err != nil || strings.TrimSpace(string(out)) == "" {
			log.Print("warning: no git remote configured. Data is saved locally only.")
			return nil
		}
		gitPush(dataDir, cfg.Remote)
	}
	return nil
}
