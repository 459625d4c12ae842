package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/temirov/trr/internal/types"
	"github.com/temirov/trr/internal/utils"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be listed in strict mode.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorInvalidRootFormat wraps ErrInvalidRoot with the offending path.
	errorInvalidRootFormat = "%w: %s"
	// errorUnsupportedSortFormat reports an unknown sort order.
	errorUnsupportedSortFormat = "unsupported sort order %q"
)

// ErrInvalidRoot is returned when the root path does not resolve to a directory.
var ErrInvalidRoot = errors.New("root is not a directory")

// TreeOptions controls which entries are descended into and in what order they are listed.
type TreeOptions struct {
	Exclusions ExclusionSet
	SortOrder  string
	Strict     bool
}

// DefaultTreeOptions returns the built-in exclusions, name ordering and the skip-unreadable policy.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		Exclusions: DefaultExclusions(),
		SortOrder:  types.SortByName,
	}
}

// TreeStreamOptions configures a single StreamTree call.
type TreeStreamOptions struct {
	FileSystem afero.Fs
	Root       string
	TreeOptions
	// Warn receives directories that could not be listed when Strict is false.
	Warn func(path string, readError error)
}

type treeStreamContext struct {
	options TreeStreamOptions
	handler func(types.TreeEvent) error
}

// StreamTree walks options.Root depth-first and calls handler once per entry in pre-order.
// The walk keeps pending entries on an explicit stack, so nesting depth does not grow the call stack.
func StreamTree(options TreeStreamOptions, handler func(types.TreeEvent) error) error {
	if handler == nil {
		return fmt.Errorf("tree stream handler is nil")
	}
	if options.FileSystem == nil {
		options.FileSystem = afero.NewOsFs()
	}
	if options.SortOrder == utils.EmptyString {
		options.SortOrder = types.SortByName
	}
	if !types.IsSupportedSortOrder(options.SortOrder) {
		return fmt.Errorf(errorUnsupportedSortFormat, options.SortOrder)
	}
	if options.Warn == nil {
		options.Warn = func(string, error) {}
	}

	info, statErr := options.FileSystem.Stat(options.Root)
	if statErr != nil || !info.IsDir() {
		return fmt.Errorf(errorInvalidRootFormat, ErrInvalidRoot, options.Root)
	}

	ctx := treeStreamContext{options: options, handler: handler}
	return ctx.walk()
}

func (ctx *treeStreamContext) walk() error {
	pending := []types.TreeEvent{{
		Kind:  types.TreeEventDirectory,
		Path:  ctx.options.Root,
		Name:  utils.DisplayName(ctx.options.Root),
		Depth: 0,
	}}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if current.Kind != types.TreeEventDirectory {
			if err := ctx.handler(current); err != nil {
				return err
			}
			continue
		}

		names, listError := ctx.listNames(current.Path)
		if listError != nil {
			if ctx.options.Strict {
				if err := ctx.handler(current); err != nil {
					return err
				}
				return fmt.Errorf(errorReadDirectoryFormat, current.Path, listError)
			}
			ctx.options.Warn(current.Path, listError)
			unreadable := current
			unreadable.Kind = types.TreeEventUnreadable
			unreadable.Err = listError
			if err := ctx.handler(unreadable); err != nil {
				return err
			}
			continue
		}

		if err := ctx.handler(current); err != nil {
			return err
		}

		for index := len(names) - 1; index >= 0; index-- {
			pending = append(pending, ctx.classify(current, names[index]))
		}
	}
	return nil
}

// listNames returns the direct children of directoryPath. The handle is closed before returning.
func (ctx *treeStreamContext) listNames(directoryPath string) ([]string, error) {
	directory, openError := ctx.options.FileSystem.Open(directoryPath)
	if openError != nil {
		return nil, openError
	}
	names, readError := directory.Readdirnames(-1)
	closeError := directory.Close()
	if readError != nil {
		return nil, readError
	}
	if closeError != nil {
		return nil, closeError
	}
	if ctx.options.SortOrder == types.SortByName {
		sort.Strings(names)
	}
	return names, nil
}

func (ctx *treeStreamContext) classify(parent types.TreeEvent, name string) types.TreeEvent {
	child := types.TreeEvent{
		Path:  filepath.Join(parent.Path, name),
		Name:  name,
		Depth: parent.Depth + 1,
	}
	if ctx.options.Exclusions.Contains(name) {
		child.Kind = types.TreeEventExcluded
		return child
	}
	info, statErr := ctx.options.FileSystem.Stat(child.Path)
	if statErr == nil && info.IsDir() {
		child.Kind = types.TreeEventDirectory
		return child
	}
	child.Kind = types.TreeEventFile
	return child
}
