// Package logwriter builds the sink the status log is written to.
package logwriter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Writer is a log writer and its configurations.
type Writer struct {
	io.Writer

	LogFile       string
	EnableLogging bool
	EnableColour  bool
	Cleanup       func()
}

// NewFile creates a writer backed by logFile, or stdout when logFile is empty.
func NewFile(logFile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logFile,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a writer around w.
func New(w io.Writer, enableLogging, enableColour bool) *Writer {
	return &Writer{
		Writer:        w,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create initialises the writer; Cleanup must be called once writing is done.
// Colour is only kept for stdout, never for a file or a custom writer.
func (w *Writer) Create() error {
	w.Cleanup = func() {}
	switch {
	case !w.EnableLogging:
		w.Writer = io.Discard
		w.EnableColour = false
	case w.Writer != nil:
		w.EnableColour = false
	case w.LogFile != "":
		f, err := os.Create(w.LogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		bufWriter := bufio.NewWriter(f)
		w.Writer = bufWriter
		w.EnableColour = false
		w.Cleanup = func() {
			if err := bufWriter.Flush(); err != nil {
				slog.Error("flush log file", "error", err)
			}
			if err := f.Close(); err != nil {
				slog.Error("close log file", "error", err)
			}
		}
	default:
		w.Writer = os.Stdout
	}
	return nil
}
