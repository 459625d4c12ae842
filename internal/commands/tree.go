// Package commands contains the directory walk and the tree command built on it.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/trr/internal/output"
)

const (
	// InvalidRootMessage is printed instead of a tree when the root is not a directory.
	InvalidRootMessage = "Please provide a valid directory path."

	warningUnreadableDirectoryMessage = "skipping unreadable directory"
	debugRenderStartMessage           = "rendering tree"
	debugInvalidRootMessage           = "root is not a directory"
)

// RenderTree writes the indented tree of rootPath to writer.
// A root that is not a directory produces InvalidRootMessage and a nil error.
func RenderTree(writer io.Writer, fileSystem afero.Fs, rootPath string, options TreeOptions, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(debugRenderStartMessage,
		zap.String("root", rootPath),
		zap.String("sort", options.SortOrder),
		zap.Bool("strict", options.Strict),
		zap.Strings("exclusions", options.Exclusions.Names()),
	)

	renderer := output.NewRawTreeRenderer(writer)
	defer func() {
		if flushErr := renderer.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()

	streamOptions := TreeStreamOptions{
		FileSystem:  fileSystem,
		Root:        rootPath,
		TreeOptions: options,
		Warn: func(path string, readError error) {
			logger.Warn(warningUnreadableDirectoryMessage, zap.String("path", path), zap.Error(readError))
		},
	}

	streamErr := StreamTree(streamOptions, renderer.Handle)
	if errors.Is(streamErr, ErrInvalidRoot) {
		logger.Debug(debugInvalidRootMessage, zap.String("root", rootPath))
		if _, writeErr := fmt.Fprintln(writer, InvalidRootMessage); writeErr != nil {
			return writeErr
		}
		return nil
	}
	return streamErr
}
