// Package writers resolves a log output setting to a destination.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

var ErrUnsupportedOutput = errors.New("unsupported output format")

// Output is an opened log destination. Close releases file outputs and is a
// no-op for the standard streams.
type Output struct {
	io.Writer
	Type WriterType
	Path string

	closer io.Closer
}

// Close closes the underlying file, if any
func (o *Output) Close() error {
	if o.closer == nil {
		return nil
	}
	return o.closer.Close()
}

// Open resolves an output setting. Supported formats:
//   - "stdout" or "" - writes to os.Stdout
//   - "stderr" - writes to os.Stderr
//   - "file:///path/to/file" or "/path/to/file" - appends to a file,
//     creating parent directories as needed
func Open(output string) (*Output, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return &Output{Writer: os.Stdout, Type: WriterTypeStdout}, nil
	case WriterTypeStderr:
		return &Output{Writer: os.Stderr, Type: WriterTypeStderr}, nil
	}

	filePath := strings.TrimPrefix(output, "file://")
	if !isFilePath(output) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}

	f, err := createFileWriter(filePath)
	if err != nil {
		return nil, err
	}
	return &Output{Writer: f, Type: WriterTypeFile, Path: filePath, closer: f}, nil
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	if strings.HasPrefix(path, "file://") {
		return len(path) > len("file://")
	}
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\") || filepath.Ext(path) == ".log"
}

// createFileWriter opens a file for appending, ensuring the directory exists
func createFileWriter(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "stdout":
		return WriterTypeStdout
	case "stderr":
		return WriterTypeStderr
	default:
		return WriterTypeFile
	}
}
