package utils

import (
	"path/filepath"
	"strings"
)

// NormalizePath lexically canonicalizes rawPath into an absolute path.
// Relative paths are resolved against workingDirectory. "." and ".." segments
// and repeated separators are collapsed without consulting the filesystem, so
// symbolic links anywhere in the path are left untouched.
func NormalizePath(rawPath string, workingDirectory string) string {
	candidate := rawPath
	if candidate == EmptyString {
		candidate = workingDirectory
	}
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(workingDirectory, candidate)
	}
	return filepath.Clean(candidate)
}

// RootLabel returns the display label of a tree root: the normalized path
// followed by exactly one trailing separator.
func RootLabel(normalizedPath string) string {
	if strings.HasSuffix(normalizedPath, PathSeparator) {
		return normalizedPath
	}
	return normalizedPath + PathSeparator
}
