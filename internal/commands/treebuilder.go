package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

var (
	// ErrInvalidIndent reports a non-positive indent width.
	ErrInvalidIndent = errors.New("indent width must be a positive integer")
	// ErrInvalidDepth reports a negative depth limit.
	ErrInvalidDepth = errors.New("depth must be a non-negative integer")
	// ErrInvalidSortOrder reports an unknown sort order.
	ErrInvalidSortOrder = errors.New("unsupported sort order")
	// ErrListDirectory reports a directory that could not be listed.
	ErrListDirectory = errors.New("cannot list directory")
	// ErrRootNotDirectory reports a traversal root that is not a directory.
	ErrRootNotDirectory = errors.New("not a directory")
)

const (
	errorInvalidIndentFormat    = "%w: got %d"
	errorInvalidDepthFormat     = "%w: got %d"
	errorInvalidSortOrderFormat = "%w %q"
)

// RecursionSettings is the read-only configuration threaded through a walk.
type RecursionSettings struct {
	IndentWidth int
	// MaxDepth is nil for unlimited depth.
	MaxDepth   *int
	Prune      bool
	Extensions utils.ExtensionSet
	SortOrder  string
}

// Validate reports configuration errors before any traversal happens.
func (settings RecursionSettings) Validate() error {
	if settings.IndentWidth <= 0 {
		return fmt.Errorf(errorInvalidIndentFormat, ErrInvalidIndent, settings.IndentWidth)
	}
	if settings.MaxDepth != nil && *settings.MaxDepth < 0 {
		return fmt.Errorf(errorInvalidDepthFormat, ErrInvalidDepth, *settings.MaxDepth)
	}
	switch settings.SortOrder {
	case utils.EmptyString, types.SortOrderBytes, types.SortOrderNatural:
	default:
		return fmt.Errorf(errorInvalidSortOrderFormat, ErrInvalidSortOrder, settings.SortOrder)
	}
	return nil
}

// canExpand reports whether a directory at depth may list its children.
func (settings RecursionSettings) canExpand(depth int) bool {
	return settings.MaxDepth == nil || depth < *settings.MaxDepth
}

// TreeBuilder builds and renders directory trees using configured options.
type TreeBuilder struct {
	FileSystem afero.Fs
	Settings   RecursionSettings
	Logger     *zap.Logger
}

// NewTreeBuilder validates settings and returns a builder reading from fileSystem.
// A nil logger is replaced by a no-op logger.
func NewTreeBuilder(fileSystem afero.Fs, settings RecursionSettings, logger *zap.Logger) (*TreeBuilder, error) {
	if validationError := settings.Validate(); validationError != nil {
		return nil, validationError
	}
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Extensions == nil {
		settings.Extensions = utils.ExtensionSet{}
	}
	return &TreeBuilder{FileSystem: fileSystem, Settings: settings, Logger: logger}, nil
}
