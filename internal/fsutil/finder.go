// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtensions recursively searches the given root path for all
// files ending with one of the specified extensions. It returns a slice of
// their full paths in walk (lexical) order.
func FindFilesByExtensions(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// CollectFiles resolves each path to concrete files: a plain file is taken
// when it ends with one of the extensions, a directory is searched
// recursively for them, and a path that does not exist is skipped. The
// extension filter applies to plain files too, so feeding one path set to
// several format loaders leaves each loader only its own files. Duplicates
// are removed, keeping first-seen order.
func CollectFiles(paths []string, extensions ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if hasExtension(filepath.Base(path), extensions) {
				add(path)
			}
			continue
		}
		found, err := FindFilesByExtensions(path, extensions...)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	return out, nil
}

// hasExtension reports whether name ends with one of the extensions.
func hasExtension(name string, extensions []string) bool {
	for _, extension := range extensions {
		if strings.HasSuffix(name, extension) {
			return true
		}
	}
	return false
}
