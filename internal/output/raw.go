// Package output serializes rendered trees and manages the redirected output file.
package output

import (
	"strings"

	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

const (
	indentCharacter = " "
	lineTerminator  = "\n"
)

// RenderTreeRaw serializes lines into text. Each line is indented by
// indentWidth spaces per depth level and terminated by a newline. Directory
// names carry a trailing separator; the root line is labeled by its path.
func RenderTreeRaw(lines []types.RenderLine, indentWidth int) string {
	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(strings.Repeat(indentCharacter, indentWidth*line.Depth))
		builder.WriteString(displayName(line))
		builder.WriteString(lineTerminator)
	}
	return builder.String()
}

func displayName(line types.RenderLine) string {
	if !line.IsDirectory {
		return line.Name
	}
	if line.Depth == 0 {
		return utils.RootLabel(line.Name)
	}
	return line.Name + utils.PathSeparator
}
