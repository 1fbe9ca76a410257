package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/tree/internal/utils"
)

func TestFileExtension(testingHandle *testing.T) {
	testCases := []struct {
		name      string
		fileName  string
		extension string
	}{
		{name: "simple", fileName: "file.txt", extension: ".txt"},
		{name: "multi_dot", fileName: "archive.tar.gz", extension: ".tar.gz"},
		{name: "no_dot", fileName: "Makefile", extension: ""},
		{name: "hidden_without_extension", fileName: ".gitignore", extension: ""},
		{name: "hidden_with_extension", fileName: ".env.local", extension: ".local"},
		{name: "trailing_dot", fileName: "file.", extension: "."},
		{name: "double_leading_dot", fileName: "..hidden", extension: ".hidden"},
		{name: "single_dot", fileName: ".", extension: ""},
		{name: "empty", fileName: "", extension: ""},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.extension, utils.FileExtension(testCase.fileName))
		})
	}
}

func TestNormalizeExtension(testingHandle *testing.T) {
	require.Equal(testingHandle, ".txt", utils.NormalizeExtension("txt"))
	require.Equal(testingHandle, ".txt", utils.NormalizeExtension(".txt"))
	require.Equal(testingHandle, ".tar.gz", utils.NormalizeExtension("tar.gz"))
	require.Equal(testingHandle, "", utils.NormalizeExtension(""))
}

func TestExtensionSetMatches(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		filters  []string
		fileName string
		matches  bool
	}{
		{name: "empty_set_matches_all", filters: nil, fileName: "anything.bin", matches: true},
		{name: "multi_dot_full", filters: []string{".tar.gz"}, fileName: "archive.tar.gz", matches: true},
		{name: "multi_dot_partial", filters: []string{".gz"}, fileName: "archive.tar.gz", matches: false},
		{name: "hidden_against_name", filters: []string{".gitignore"}, fileName: ".gitignore", matches: false},
		{name: "hidden_against_empty", filters: []string{""}, fileName: ".gitignore", matches: true},
		{name: "extensionless_against_empty", filters: []string{""}, fileName: "file", matches: true},
		{name: "without_dot", filters: []string{"txt"}, fileName: "file.txt", matches: true},
		{name: "or_combined", filters: []string{"txt", "md", ".py"}, fileName: "file.py", matches: true},
		{name: "no_match", filters: []string{".txt", ".md"}, fileName: "file.py", matches: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			extensionSet := utils.NewExtensionSet(testCase.filters)
			require.Equal(t, testCase.matches, extensionSet.Matches(testCase.fileName))
		})
	}
}

func TestNormalizePath(testingHandle *testing.T) {
	testCases := []struct {
		name             string
		rawPath          string
		workingDirectory string
		expected         string
	}{
		{name: "absolute_clean", rawPath: "/srv/data", workingDirectory: "/home", expected: "/srv/data"},
		{name: "relative", rawPath: "project", workingDirectory: "/home/user", expected: "/home/user/project"},
		{name: "dot_segments", rawPath: "/srv/./directory/dev///./.././/.././", workingDirectory: "/", expected: "/srv"},
		{name: "parent_of_relative", rawPath: "../other", workingDirectory: "/home/user", expected: "/home/other"},
		{name: "empty_means_working_directory", rawPath: "", workingDirectory: "/home/user/", expected: "/home/user"},
		{name: "root", rawPath: "/", workingDirectory: "/home", expected: "/"},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, utils.NormalizePath(testCase.rawPath, testCase.workingDirectory))
		})
	}
}

func TestRootLabel(testingHandle *testing.T) {
	require.Equal(testingHandle, "/srv/data/", utils.RootLabel("/srv/data"))
	require.Equal(testingHandle, "/", utils.RootLabel("/"))
}

func TestDeduplicatePatterns(testingHandle *testing.T) {
	require.Equal(testingHandle, []string{".txt", ".md"}, utils.DeduplicatePatterns([]string{".txt", ".md", ".txt"}))
}
