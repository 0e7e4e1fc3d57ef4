// Package fsutil provides file system helpers for locating input models and
// placing generated programs.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ProgramExtension is the file extension of generated HLVL programs.
const ProgramExtension = ".hlvl"

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension, in lexical order. A root that is itself a file
// is returned as-is, whatever its extension.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// BaseName returns the file name of path without directory and extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResolveOutputPath decides where the program for target is written. An empty
// output means standard output and yields "". An output that names an
// existing directory, or ends with a path separator, receives
// `<target>.hlvl`; anything else is used as the file path itself.
func ResolveOutputPath(output, target string) (string, error) {
	if output == "" {
		return "", nil
	}
	if strings.HasSuffix(output, string(filepath.Separator)) || strings.HasSuffix(output, "/") {
		return filepath.Join(output, target+ProgramExtension), nil
	}

	info, err := os.Stat(output)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(output, target+ProgramExtension), nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return output, nil
	default:
		return "", fmt.Errorf("error accessing output path %s: %w", output, err)
	}
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
