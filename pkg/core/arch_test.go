package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/leapstack-labs/schemaguard"

// goImports returns the imports of every non-test Go file in dir, keyed by file name.
func goImports(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		// Skip test files
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[path] = append(imports[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
// Every other package depends on core, so core depends on nothing.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range goImports(t, ".") {
		for _, importPath := range imports {
			// Allow stdlib (no dots in path)
			if !strings.Contains(importPath, ".") {
				continue
			}
			t.Errorf("%s imports forbidden package: %s", file, importPath)
		}
	}
}

// TestPublicPackagesDoNotImportInternal verifies no pkg/ package imports internal packages.
func TestPublicPackagesDoNotImportInternal(t *testing.T) {
	dirs, err := os.ReadDir("..")
	if err != nil {
		t.Fatalf("Failed to read pkg directory: %v", err)
	}

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		for file, imports := range goImports(t, filepath.Join("..", d.Name())) {
			for _, importPath := range imports {
				if strings.HasPrefix(importPath, modulePath+"/internal/") {
					t.Errorf("%s imports internal package: %s (pkg/ must not import internal packages)", file, importPath)
				}
			}
		}
	}
}
