package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// ErrInvalidOutputTarget reports an output path that is neither absent nor a regular file.
var ErrInvalidOutputTarget = errors.New("invalid output target")

const (
	errorTargetDirectoryFormat = "%w: %s is a directory"
	errorTargetSymlinkFormat   = "%w: %s is a symbolic link"
	errorTargetIrregularFormat = "%w: %s is not a regular file"
	errorTargetStatFormat      = "%w: stat %s: %w"
	errorTargetOpenFormat      = "open output %s: %w"
	errorTargetWriteFormat     = "write output %s: %w"
	errorTargetResetFormat     = "reset output %s: %w"

	outputFilePermissions = 0o644
)

// ValidateOutputTarget checks that targetPath does not exist or names an
// existing regular file. Directories and symbolic links are rejected without
// being followed.
func ValidateOutputTarget(fileSystem afero.Fs, targetPath string) error {
	targetInfo, statError := lstat(fileSystem, targetPath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(errorTargetStatFormat, ErrInvalidOutputTarget, targetPath, statError)
	}
	switch mode := targetInfo.Mode(); {
	case mode&fs.ModeSymlink != 0:
		return fmt.Errorf(errorTargetSymlinkFormat, ErrInvalidOutputTarget, targetPath)
	case mode.IsDir():
		return fmt.Errorf(errorTargetDirectoryFormat, ErrInvalidOutputTarget, targetPath)
	case !mode.IsRegular():
		return fmt.Errorf(errorTargetIrregularFormat, ErrInvalidOutputTarget, targetPath)
	}
	return nil
}

// OpenOutputTarget validates targetPath and creates it when absent. Existing
// contents stay untouched until ReplaceContents is called.
// The caller owns the returned file and must close it.
func OpenOutputTarget(fileSystem afero.Fs, targetPath string) (afero.File, error) {
	if validationError := ValidateOutputTarget(fileSystem, targetPath); validationError != nil {
		return nil, validationError
	}
	targetFile, openError := fileSystem.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE, outputFilePermissions)
	if openError != nil {
		return nil, fmt.Errorf(errorTargetOpenFormat, targetPath, openError)
	}
	return targetFile, nil
}

// WriteRendered writes the full rendered text to destination in a single call.
func WriteRendered(destination io.Writer, destinationName string, renderedText string) error {
	if _, writeError := io.WriteString(destination, renderedText); writeError != nil {
		return fmt.Errorf(errorTargetWriteFormat, destinationName, writeError)
	}
	return nil
}

// ReplaceContents discards whatever targetFile held and writes renderedText in its place.
func ReplaceContents(targetFile afero.File, renderedText string) error {
	if truncateError := targetFile.Truncate(0); truncateError != nil {
		return fmt.Errorf(errorTargetResetFormat, targetFile.Name(), truncateError)
	}
	if _, seekError := targetFile.Seek(0, io.SeekStart); seekError != nil {
		return fmt.Errorf(errorTargetResetFormat, targetFile.Name(), seekError)
	}
	return WriteRendered(targetFile, targetFile.Name(), renderedText)
}

func lstat(fileSystem afero.Fs, targetPath string) (fs.FileInfo, error) {
	if lstater, supportsLstat := fileSystem.(afero.Lstater); supportsLstat {
		targetInfo, _, lstatError := lstater.LstatIfPossible(targetPath)
		return targetInfo, lstatError
	}
	return fileSystem.Stat(targetPath)
}
