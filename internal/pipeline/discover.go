package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover walks root and returns every regular file, sorted
// lexicographically for deterministic processing order. Classification is
// by content, not extension, so no filtering happens here.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
