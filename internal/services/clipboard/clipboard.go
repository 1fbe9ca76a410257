// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable reports that no clipboard utility is available on this system.
var ErrClipboardUnavailable = errors.New("system clipboard is unavailable")

// Copier copies textual data to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if copyError := clipboard.WriteAll(text); copyError != nil {
		return fmt.Errorf("copy to clipboard: %w", copyError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
