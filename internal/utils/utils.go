// Package utils contains general helper functions used across the trr tool.
package utils

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

const permissionDeniedReason = "permission denied"

// ResolveRootPath returns the cleaned absolute form of path, resolving relative paths against workingDirectory.
// An empty path resolves to workingDirectory itself.
func ResolveRootPath(workingDirectory string, path string) string {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == EmptyString {
		return filepath.Clean(workingDirectory)
	}
	if filepath.IsAbs(trimmedPath) {
		return filepath.Clean(trimmedPath)
	}
	return filepath.Join(workingDirectory, trimmedPath)
}

// DisplayName returns the base name used when printing path.
// The filesystem root keeps its own name instead of collapsing to a separator.
func DisplayName(path string) string {
	baseName := filepath.Base(path)
	if baseName == string(filepath.Separator) || baseName == "." {
		return strings.TrimSuffix(path, string(filepath.Separator))
	}
	return baseName
}

// ReadErrorReason produces the short reason shown for a directory that cannot be listed.
func ReadErrorReason(readError error) string {
	if readError == nil {
		return EmptyString
	}
	if errors.Is(readError, fs.ErrPermission) {
		return permissionDeniedReason
	}
	var pathError *fs.PathError
	if errors.As(readError, &pathError) && pathError.Err != nil {
		return pathError.Err.Error()
	}
	return readError.Error()
}
