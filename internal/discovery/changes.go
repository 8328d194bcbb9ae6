package discovery

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultRevRange compares the previous commit with the current one.
const DefaultRevRange = "HEAD~1..HEAD"

// ChangeSource lists files changed within a revision range.
type ChangeSource interface {
	// ChangedFiles returns absolute paths of files changed in revRange.
	ChangedFiles(ctx context.Context, revRange string) ([]string, error)
}

// GitChangeSource asks the git CLI which files changed.
type GitChangeSource struct {
	// Dir is any directory inside the work tree.
	Dir    string
	Logger *slog.Logger
}

// NewGitChangeSource creates a ChangeSource for the repository containing dir.
func NewGitChangeSource(dir string, logger *slog.Logger) *GitChangeSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GitChangeSource{Dir: dir, Logger: logger}
}

// ChangedFiles implements ChangeSource. Deleted files are not reported.
func (g *GitChangeSource) ChangedFiles(ctx context.Context, revRange string) ([]string, error) {
	top, err := g.git(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	top = strings.TrimSpace(top)

	out, err := g.git(ctx, "diff", "--name-only", "--diff-filter=d", revRange)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, filepath.Join(top, filepath.FromSlash(line)))
	}
	g.Logger.Debug("git reported changed files",
		slog.String("range", revRange),
		slog.Int("count", len(files)))
	return files, nil
}

func (g *GitChangeSource) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	g.Logger.Debug("running git", slog.String("dir", g.Dir), slog.Any("args", args))
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// FilterChangedDocs keeps the changed paths that are documentation files
// located under modelsDir and not excluded.
func FilterChangedDocs(changed []string, modelsDir, docExt string, exclude []string) []string {
	roots := []string{filepath.Clean(modelsDir)}
	// git reports paths below the resolved top level; match the resolved models dir too.
	if real, err := filepath.EvalSymlinks(modelsDir); err == nil && real != roots[0] {
		roots = append(roots, real)
	}

	var docs []string
	for _, p := range changed {
		if !strings.HasSuffix(p, docExt) {
			continue
		}
		for _, root := range roots {
			rel, err := filepath.Rel(root, p)
			if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
				continue
			}
			if !Excluded(filepath.ToSlash(rel), exclude) {
				docs = append(docs, p)
			}
			break
		}
	}
	return docs
}
