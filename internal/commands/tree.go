// Package commands contains the traversal and rendering logic of the tree command.
package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/types"
)

const (
	// errorListDirectoryFormat wraps both the sentinel and the underlying failure.
	errorListDirectoryFormat = "%w %s: %w"
	// errorStatRootFormat is used when the root cannot be inspected.
	errorStatRootFormat = "%w %s: %w"
	// errorRootNotDirectoryFormat is used when the root is not a directory.
	errorRootNotDirectoryFormat = "%s: %w"

	logMessageSkipSymlink   = "skipping symbolic link"
	logMessageSkipIrregular = "skipping irregular file"
	logMessagePruned        = "pruning empty directory"
	logMessageTruncated     = "depth limit reached"
	logFieldPath            = "path"
	logFieldDepth           = "depth"

	irregularModeMask = fs.ModeNamedPipe | fs.ModeSocket | fs.ModeDevice | fs.ModeCharDevice | fs.ModeIrregular
)

// Render walks rootDirectoryPath and returns the complete indented text.
// Nothing is returned unless the whole walk succeeds.
func (treeBuilder *TreeBuilder) Render(rootDirectoryPath string) (string, error) {
	rootEntry, buildError := treeBuilder.GetTreeData(rootDirectoryPath)
	if buildError != nil {
		return "", buildError
	}
	return output.RenderTreeRaw(RenderLines(rootEntry), treeBuilder.Settings.IndentWidth), nil
}

// GetTreeData builds the filtered and pruned entry tree rooted at rootDirectoryPath.
// The root entry is named by the path itself and is never pruned.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) (*types.DirectoryEntry, error) {
	rootInfo, statError := treeBuilder.FileSystem.Stat(rootDirectoryPath)
	if statError != nil {
		return nil, fmt.Errorf(errorStatRootFormat, ErrListDirectory, rootDirectoryPath, statError)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, rootDirectoryPath, ErrRootNotDirectory)
	}

	rootEntry := &types.DirectoryEntry{
		Name: rootDirectoryPath,
		Kind: types.EntryKindDirectory,
	}
	if !treeBuilder.Settings.canExpand(0) {
		rootEntry.Truncated = true
		return rootEntry, nil
	}
	children, buildError := treeBuilder.buildTreeNodes(rootDirectoryPath, 0)
	if buildError != nil {
		return nil, buildError
	}
	rootEntry.Children = children
	return rootEntry, nil
}

// buildTreeNodes lists the children of a directory at depth and returns them
// directories first, each group sorted by name.
func (treeBuilder *TreeBuilder) buildTreeNodes(currentDirectoryPath string, depth int) ([]*types.DirectoryEntry, error) {
	fileInfos, readDirectoryError := afero.ReadDir(treeBuilder.FileSystem, currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorListDirectoryFormat, ErrListDirectory, currentDirectoryPath, readDirectoryError)
	}

	childDepth := depth + 1
	var directories []*types.DirectoryEntry
	var files []*types.DirectoryEntry
	for _, fileInfo := range fileInfos {
		childPath := filepath.Join(currentDirectoryPath, fileInfo.Name())
		switch classifyMode(fileInfo.Mode()) {
		case types.EntryKindSymlink:
			treeBuilder.Logger.Debug(logMessageSkipSymlink, zap.String(logFieldPath, childPath))
		case types.EntryKindOther:
			treeBuilder.Logger.Debug(logMessageSkipIrregular, zap.String(logFieldPath, childPath))
		case types.EntryKindFile:
			if treeBuilder.Settings.Extensions.Matches(fileInfo.Name()) {
				files = append(files, &types.DirectoryEntry{Name: fileInfo.Name(), Kind: types.EntryKindFile})
			}
		case types.EntryKindDirectory:
			directoryEntry := &types.DirectoryEntry{Name: fileInfo.Name(), Kind: types.EntryKindDirectory}
			if !treeBuilder.Settings.canExpand(childDepth) {
				treeBuilder.Logger.Debug(logMessageTruncated, zap.String(logFieldPath, childPath), zap.Int(logFieldDepth, childDepth))
				directoryEntry.Truncated = true
				directories = append(directories, directoryEntry)
				continue
			}
			children, buildError := treeBuilder.buildTreeNodes(childPath, childDepth)
			if buildError != nil {
				return nil, buildError
			}
			if treeBuilder.Settings.Prune && len(children) == 0 {
				treeBuilder.Logger.Debug(logMessagePruned, zap.String(logFieldPath, childPath))
				continue
			}
			directoryEntry.Children = children
			directories = append(directories, directoryEntry)
		}
	}

	treeBuilder.sortEntries(directories)
	treeBuilder.sortEntries(files)
	return append(directories, files...), nil
}

// sortEntries orders entries by byte-wise name comparison, or naturally when configured.
func (treeBuilder *TreeBuilder) sortEntries(entries []*types.DirectoryEntry) {
	if treeBuilder.Settings.SortOrder == types.SortOrderNatural {
		slices.SortFunc(entries, func(left, right *types.DirectoryEntry) int {
			switch {
			case left.Name == right.Name:
				return 0
			case natural.Less(left.Name, right.Name):
				return -1
			case natural.Less(right.Name, left.Name):
				return 1
			default:
				return strings.Compare(left.Name, right.Name)
			}
		})
		return
	}
	slices.SortFunc(entries, func(left, right *types.DirectoryEntry) int {
		return strings.Compare(left.Name, right.Name)
	})
}

// classifyMode maps lstat mode bits onto an entry kind.
func classifyMode(mode fs.FileMode) types.EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return types.EntryKindSymlink
	case mode.IsDir():
		return types.EntryKindDirectory
	case mode&irregularModeMask != 0:
		return types.EntryKindOther
	default:
		return types.EntryKindFile
	}
}

// RenderLines flattens an entry tree into depth-annotated lines, root first.
func RenderLines(rootEntry *types.DirectoryEntry) []types.RenderLine {
	if rootEntry == nil {
		return nil
	}
	var lines []types.RenderLine
	var appendEntry func(entry *types.DirectoryEntry, depth int)
	appendEntry = func(entry *types.DirectoryEntry, depth int) {
		lines = append(lines, types.RenderLine{Depth: depth, Name: entry.Name, IsDirectory: entry.IsDirectory()})
		for _, child := range entry.Children {
			appendEntry(child, depth+1)
		}
	}
	appendEntry(rootEntry, 0)
	return lines
}
