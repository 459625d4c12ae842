package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/trr/internal/types"
	"github.com/temirov/trr/internal/utils"
)

const (
	// IndentationUnit is prepended once per nesting level.
	IndentationUnit = "    "
	// DirectoryMarker is appended to every directory line, excluded ones included.
	DirectoryMarker = "/"

	unreadableLineFormat = "%scannot read %s%s (%s)"
	unknownEventFormat   = "unsupported tree event kind %d"
)

type rawTreeRenderer struct {
	writer     *bufio.Writer
	writeError error
}

// NewRawTreeRenderer returns a TreeRenderer writing one indented line per event.
func NewRawTreeRenderer(writer io.Writer) TreeRenderer {
	return &rawTreeRenderer{writer: bufio.NewWriter(writer)}
}

// Indentation returns the prefix for an entry at depth.
func Indentation(depth int) string {
	if depth <= 0 {
		return utils.EmptyString
	}
	return strings.Repeat(IndentationUnit, depth)
}

// FormatTreeLine renders a single event without the trailing newline.
func FormatTreeLine(event types.TreeEvent) (string, error) {
	prefix := Indentation(event.Depth)
	switch event.Kind {
	case types.TreeEventDirectory, types.TreeEventExcluded:
		return prefix + event.Name + DirectoryMarker, nil
	case types.TreeEventFile:
		return prefix + event.Name, nil
	case types.TreeEventUnreadable:
		return fmt.Sprintf(unreadableLineFormat, prefix, event.Name, DirectoryMarker, utils.ReadErrorReason(event.Err)), nil
	default:
		return utils.EmptyString, fmt.Errorf(unknownEventFormat, event.Kind)
	}
}

func (renderer *rawTreeRenderer) Handle(event types.TreeEvent) error {
	if renderer.writeError != nil {
		return renderer.writeError
	}
	line, formatError := FormatTreeLine(event)
	if formatError != nil {
		return formatError
	}
	if _, writeError := renderer.writer.WriteString(line + "\n"); writeError != nil {
		renderer.writeError = writeError
	}
	return renderer.writeError
}

func (renderer *rawTreeRenderer) Flush() error {
	if renderer.writeError != nil {
		return renderer.writeError
	}
	renderer.writeError = renderer.writer.Flush()
	return renderer.writeError
}
