package utils

import "strings"

// FileExtension returns the extension of a file name: everything from the
// first "." that is not the leading character through the end of the name.
// Names without such a dot, including hidden files like ".gitignore", have an
// empty extension. Multi-dot suffixes stay whole: "a.tar.gz" yields ".tar.gz".
func FileExtension(fileName string) string {
	if len(fileName) < 2 {
		return EmptyString
	}
	separatorIndex := strings.Index(fileName[1:], ExtensionSeparator)
	if separatorIndex < 0 {
		return EmptyString
	}
	return fileName[separatorIndex+1:]
}

// NormalizeExtension prepends the separator to a non-empty filter value that
// lacks one. The empty value is kept as is and matches extensionless files.
func NormalizeExtension(filterValue string) string {
	if filterValue == EmptyString || strings.HasPrefix(filterValue, ExtensionSeparator) {
		return filterValue
	}
	return ExtensionSeparator + filterValue
}

// ExtensionSet holds normalized extension filters.
// An empty set matches every file.
type ExtensionSet map[string]struct{}

// NewExtensionSet normalizes and collects the provided filter values.
func NewExtensionSet(filterValues []string) ExtensionSet {
	extensionSet := make(ExtensionSet, len(filterValues))
	for _, filterValue := range DeduplicatePatterns(filterValues) {
		extensionSet[NormalizeExtension(filterValue)] = struct{}{}
	}
	return extensionSet
}

// IsEmpty reports whether no filters are configured.
func (extensionSet ExtensionSet) IsEmpty() bool {
	return len(extensionSet) == 0
}

// Matches reports whether fileName passes the filter set.
func (extensionSet ExtensionSet) Matches(fileName string) bool {
	if extensionSet.IsEmpty() {
		return true
	}
	_, matched := extensionSet[FileExtension(fileName)]
	return matched
}
