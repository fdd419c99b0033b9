package internal

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestGofmtCompliance verifies that every Go source file in the module
// is gofmt clean.
//
// If this test fails, run: gofmt -w .
func TestGofmtCompliance(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	// The test runs from internal/, sources live one level up.
	projectRoot := filepath.Dir(wd)
	if filepath.Base(wd) != "internal" {
		projectRoot = wd
	}

	var unformatted []string

	checkFile := func(path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted, err := format.Source(content)
		if err != nil {
			// Files that do not parse are caught by the build, not here.
			return nil
		}
		if !bytes.Equal(content, formatted) {
			rel, _ := filepath.Rel(projectRoot, path)
			unformatted = append(unformatted, rel)
		}
		return nil
	}

	if err := checkFile(filepath.Join(projectRoot, "main.go")); err != nil {
		t.Fatalf("checking main.go: %v", err)
	}

	err = filepath.Walk(filepath.Join(projectRoot, "internal"), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		return checkFile(path)
	})
	if err != nil {
		t.Fatalf("Failed to walk internal/: %v", err)
	}

	if len(unformatted) > 0 {
		for _, f := range unformatted {
			t.Errorf("not gofmt formatted: %s", f)
		}
		t.Error("Run 'gofmt -w .' to fix formatting issues.")
	}
}
