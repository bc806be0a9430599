// Package testutil contains common utility functions for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// An Archive is a set of named fixture files.
type Archive map[string][]byte

// ReadArchive parses the txtar file at path.
func ReadArchive(t testing.TB, path string) Archive {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	files := make(Archive, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	return files
}

// Cases returns the base names of all files with extension ext, in
// sorted order.
func (a Archive) Cases(ext string) []string {
	var names []string
	for name := range a {
		if filepath.Ext(name) == ext {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	sort.Strings(names)
	return names
}

// Must returns the file called name, failing the test if it is absent.
func (a Archive) Must(t testing.TB, name string) []byte {
	t.Helper()
	data, ok := a[name]
	if !ok {
		t.Fatalf("fixture %s missing", name)
	}
	return data
}

// WriteTo writes every file of the archive below dir.
func (a Archive) WriteTo(t testing.TB, dir string) {
	t.Helper()
	for name, data := range a {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
