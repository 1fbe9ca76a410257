package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/types"
)

func TestRenderTreeRaw(testingHandle *testing.T) {
	lines := []types.RenderLine{
		{Depth: 0, Name: "/sandbox", IsDirectory: true},
		{Depth: 1, Name: "directory", IsDirectory: true},
		{Depth: 2, Name: "file.txt"},
		{Depth: 1, Name: "file.txt"},
	}
	testCases := []struct {
		name        string
		indentWidth int
		expected    string
	}{
		{
			name:        "default_indent",
			indentWidth: 4,
			expected:    "/sandbox/\n    directory/\n        file.txt\n    file.txt\n",
		},
		{
			name:        "indent_two",
			indentWidth: 2,
			expected:    "/sandbox/\n  directory/\n    file.txt\n  file.txt\n",
		},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, output.RenderTreeRaw(lines, testCase.indentWidth))
		})
	}
}

func TestRenderTreeRawFilesystemRoot(testingHandle *testing.T) {
	lines := []types.RenderLine{{Depth: 0, Name: "/", IsDirectory: true}}
	require.Equal(testingHandle, "/\n", output.RenderTreeRaw(lines, 4))
	require.Equal(testingHandle, "", output.RenderTreeRaw(nil, 4))
}

func TestValidateOutputTarget(testingHandle *testing.T) {
	sandbox := testingHandle.TempDir()
	existingFile := filepath.Join(sandbox, "existing.txt")
	require.NoError(testingHandle, os.WriteFile(existingFile, []byte("Hello"), 0o600))
	directory := filepath.Join(sandbox, "directory")
	require.NoError(testingHandle, os.Mkdir(directory, 0o755))
	fileSymlink := filepath.Join(sandbox, "file_link")
	require.NoError(testingHandle, os.Symlink(existingFile, fileSymlink))
	danglingSymlink := filepath.Join(sandbox, "dangling_link")
	require.NoError(testingHandle, os.Symlink(filepath.Join(sandbox, "missing"), danglingSymlink))

	fileSystem := afero.NewOsFs()
	testCases := []struct {
		name    string
		target  string
		invalid bool
	}{
		{name: "missing_file", target: filepath.Join(sandbox, "new.txt")},
		{name: "existing_regular_file", target: existingFile},
		{name: "directory", target: directory, invalid: true},
		{name: "symlink_to_file", target: fileSymlink, invalid: true},
		{name: "dangling_symlink", target: danglingSymlink, invalid: true},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			validationError := output.ValidateOutputTarget(fileSystem, testCase.target)
			if testCase.invalid {
				require.ErrorIs(t, validationError, output.ErrInvalidOutputTarget)
				return
			}
			require.NoError(t, validationError)
		})
	}
}

func TestOpenOutputTargetKeepsContentsUntilReplaced(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(testingHandle, fileSystem.MkdirAll("/out", 0o755))
	require.NoError(testingHandle, afero.WriteFile(fileSystem, "/out/tree.txt", []byte("previous contents"), 0o644))

	targetFile, openError := output.OpenOutputTarget(fileSystem, "/out/tree.txt")
	require.NoError(testingHandle, openError)
	contents, readError := afero.ReadFile(fileSystem, "/out/tree.txt")
	require.NoError(testingHandle, readError)
	require.Equal(testingHandle, "previous contents", string(contents))

	require.NoError(testingHandle, output.ReplaceContents(targetFile, "/root/\n"))
	require.NoError(testingHandle, targetFile.Close())

	contents, readError = afero.ReadFile(fileSystem, "/out/tree.txt")
	require.NoError(testingHandle, readError)
	require.Equal(testingHandle, "/root/\n", string(contents))
}

func TestOpenOutputTargetCreatesMissingFile(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(testingHandle, fileSystem.MkdirAll("/out", 0o755))

	targetFile, openError := output.OpenOutputTarget(fileSystem, "/out/new.txt")
	require.NoError(testingHandle, openError)
	require.NoError(testingHandle, targetFile.Close())

	exists, existsError := afero.Exists(fileSystem, "/out/new.txt")
	require.NoError(testingHandle, existsError)
	require.True(testingHandle, exists)
}

func TestOpenOutputTargetRejectsDirectory(testingHandle *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(testingHandle, fileSystem.MkdirAll("/out", 0o755))

	_, openError := output.OpenOutputTarget(fileSystem, "/out")
	require.ErrorIs(testingHandle, openError, output.ErrInvalidOutputTarget)
}

func TestWriteRenderedToBuffer(testingHandle *testing.T) {
	var buffer bytes.Buffer
	require.NoError(testingHandle, output.WriteRendered(&buffer, "stdout", "a\n"))
	require.Equal(testingHandle, "a\n", buffer.String())
}
