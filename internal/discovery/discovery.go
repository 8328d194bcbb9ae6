// Package discovery finds model definition files, their expected
// documentation files, and the documentation files a run should validate.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/schemaguard/pkg/core"
)

// versionPostfix matches a trailing "_v<digits>" on a base name, e.g. orders_v2.
var versionPostfix = regexp.MustCompile(`_v\d+$`)

// Definition is a model definition file and the documentation file it must be paired with.
type Definition struct {
	// Path is the absolute path of the definition file.
	Path string
	// BaseName is the file name without extension and version postfix.
	BaseName string
	// ExpectedDoc is where the paired documentation file must exist.
	ExpectedDoc string
}

// StripVersionPostfix removes a trailing version postfix from a base name.
func StripVersionPostfix(name string) string {
	return versionPostfix.ReplaceAllString(name, "")
}

// ExpectedDocPath returns the documentation file expected next to a
// definition file: same directory, postfix-stripped base name, docExt.
func ExpectedDocPath(defPath, docExt string) string {
	base := strings.TrimSuffix(filepath.Base(defPath), filepath.Ext(defPath))
	return filepath.Join(filepath.Dir(defPath), StripVersionPostfix(base)+docExt)
}

// FindDefinitions recursively lists files with modelExt under modelsDir,
// skipping paths that match an exclude pattern. Results are sorted.
func FindDefinitions(modelsDir, modelExt, docExt string, exclude []string) ([]Definition, error) {
	paths, err := globFiles(modelsDir, modelExt, exclude)
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(paths))
	for _, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		defs = append(defs, Definition{
			Path:        p,
			BaseName:    StripVersionPostfix(base),
			ExpectedDoc: ExpectedDocPath(p, docExt),
		})
	}
	return defs, nil
}

// CheckPairs reports every definition whose expected documentation file is
// missing. Definitions sharing a base name are checked independently.
func CheckPairs(defs []Definition) []core.Problem {
	var problems []core.Problem
	for _, d := range defs {
		if _, err := os.Stat(d.ExpectedDoc); err == nil {
			continue
		}
		problems = append(problems, core.Problem{
			Kind:    core.KindDiscovery,
			File:    d.Path,
			Message: fmt.Sprintf("Corresponding YAML file not found for: %s", d.Path),
		})
	}
	return problems
}

// FindDocs recursively lists documentation files under modelsDir, sorted.
func FindDocs(modelsDir, docExt string, exclude []string) ([]string, error) {
	return globFiles(modelsDir, docExt, exclude)
}

// Excluded reports whether rel, a slash-separated path relative to the
// models dir, matches one of the exclude patterns.
func Excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func globFiles(root, ext string, exclude []string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for *%s files: %w", root, ext, err)
	}

	paths := make([]string, 0, len(matches))
	for _, rel := range matches {
		if Excluded(rel, exclude) {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(rel)))
	}
	sort.Strings(paths)
	return paths, nil
}
