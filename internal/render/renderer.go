// Package render prints directory hierarchies as text trees.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	indentContinued = "│   "
	indentBlank     = "    "
	hiddenPrefix    = "."

	currentDirectoryName = "."
	parentDirectoryName  = ".."

	truncationLineFormat = "%s... (%d more entries)"

	errorReadDirectoryFormat = "reading directory %s: %v"
	errorWriteLineFormat     = "writing tree line: %w"
)

// Options control a single render.
type Options struct {
	// MaxEntriesPerDirectory caps the children printed for every directory.
	MaxEntriesPerDirectory int
	// ShowHidden includes entries whose names start with a dot.
	ShowHidden bool
}

// TraversalError reports a directory that could not be enumerated.
type TraversalError struct {
	Path string
	Err  error
}

func (traversalError *TraversalError) Error() string {
	return fmt.Sprintf(errorReadDirectoryFormat, traversalError.Path, traversalError.Err)
}

func (traversalError *TraversalError) Unwrap() error {
	return traversalError.Err
}

// Renderer writes tree lines for directory hierarchies.
type Renderer struct {
	writer        io.Writer
	palette       *Palette
	options       Options
	readDirectory func(directoryPath string) ([]os.DirEntry, error)
}

// NewRenderer creates a Renderer. A nil palette prints labels without styling.
func NewRenderer(writer io.Writer, palette *Palette, options Options) *Renderer {
	if options.MaxEntriesPerDirectory < 0 {
		options.MaxEntriesPerDirectory = 0
	}
	return &Renderer{
		writer:        writer,
		palette:       palette,
		options:       options,
		readDirectory: os.ReadDir,
	}
}

// Tree prints the root path as given followed by its hierarchy.
func (renderer *Renderer) Tree(rootPath string) error {
	if writeError := renderer.writeLine(rootPath); writeError != nil {
		return writeError
	}
	return renderer.Render(rootPath, "", true)
}

// Render prints entryPath with the given prefix and connector, then descends into it when it is a directory.
// Lines already written stay written when a nested directory fails.
func (renderer *Renderer) Render(entryPath string, prefix string, isLast bool) error {
	isDirectory := isDirectoryPath(entryPath)

	if entryName, hasName := finalNameComponent(entryPath); hasName {
		connector := connectorMiddle
		if isLast {
			connector = connectorLast
		}
		label := renderer.palette.Paint(Classify(isDirectory, entryExtension(entryName)), entryName)
		if writeError := renderer.writeLine(prefix + connector + label); writeError != nil {
			return writeError
		}
	}

	if !isDirectory {
		return nil
	}

	childNames, listError := renderer.listChildren(entryPath)
	if listError != nil {
		return listError
	}

	indent := indentContinued
	if isLast {
		indent = indentBlank
	}
	childPrefix := prefix + indent

	maximumEntries := renderer.options.MaxEntriesPerDirectory
	totalEntries := len(childNames)
	visibleEntries := min(totalEntries, maximumEntries)

	for childIndex, childName := range childNames[:visibleEntries] {
		childIsLast := childIndex == maximumEntries-1 || childIndex == totalEntries-1
		childPath := filepath.Join(entryPath, childName)
		if renderError := renderer.Render(childPath, childPrefix, childIsLast); renderError != nil {
			return renderError
		}
	}

	if totalEntries > maximumEntries {
		truncationLine := fmt.Sprintf(truncationLineFormat, childPrefix, totalEntries-maximumEntries)
		if writeError := renderer.writeLine(truncationLine); writeError != nil {
			return writeError
		}
	}

	return nil
}

// listChildren returns the sorted names of the visible children of directoryPath.
func (renderer *Renderer) listChildren(directoryPath string) ([]string, error) {
	directoryEntries, readDirectoryError := renderer.readDirectory(directoryPath)
	if readDirectoryError != nil {
		return nil, &TraversalError{Path: directoryPath, Err: readDirectoryError}
	}

	childNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if directoryEntry == nil {
			continue
		}
		entryName := directoryEntry.Name()
		if entryName == "" {
			continue
		}
		if !renderer.options.ShowHidden && strings.HasPrefix(entryName, hiddenPrefix) {
			continue
		}
		childNames = append(childNames, entryName)
	}
	slices.Sort(childNames)
	return childNames, nil
}

func (renderer *Renderer) writeLine(line string) error {
	if _, writeError := fmt.Fprintln(renderer.writer, line); writeError != nil {
		return fmt.Errorf(errorWriteLineFormat, writeError)
	}
	return nil
}

// isDirectoryPath follows symbolic links; unreadable paths count as files.
func isDirectoryPath(entryPath string) bool {
	fileInformation, statError := os.Stat(entryPath)
	return statError == nil && fileInformation.IsDir()
}

// finalNameComponent returns the last path element, or false for paths such as ".", ".." or "/".
func finalNameComponent(entryPath string) (string, bool) {
	if filepath.Base(entryPath) == parentDirectoryName {
		return "", false
	}
	cleanPath := filepath.Clean(entryPath)
	if cleanPath == filepath.VolumeName(cleanPath)+string(filepath.Separator) {
		return "", false
	}
	entryName := filepath.Base(cleanPath)
	switch entryName {
	case "", currentDirectoryName, parentDirectoryName, string(filepath.Separator):
		return "", false
	}
	return entryName, true
}
