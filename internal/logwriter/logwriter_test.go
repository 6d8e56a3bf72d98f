package logwriter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Create(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		w := NewFile("", false, true)
		require.NoError(t, w.Create())
		assert.Equal(t, io.Discard, w.Writer)
		assert.False(t, w.EnableColour)
		w.Cleanup()
	})

	t.Run("custom writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := New(buf, true, true)
		require.NoError(t, w.Create())
		assert.False(t, w.EnableColour)
		fmt.Fprint(w, "line")
		w.Cleanup()
		assert.Equal(t, "line", buf.String())
	})

	t.Run("file", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "philo.log")
		w := NewFile(location, true, true)
		require.NoError(t, w.Create())
		assert.False(t, w.EnableColour)
		fmt.Fprintln(w, "Philosopher 0 is hungry.")
		w.Cleanup()
		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.Equal(t, "Philosopher 0 is hungry.\n", string(data))
	})

	t.Run("stdout", func(t *testing.T) {
		w := NewFile("", true, true)
		require.NoError(t, w.Create())
		assert.Equal(t, os.Stdout, w.Writer)
	})

	t.Run("bad file", func(t *testing.T) {
		w := NewFile(filepath.Join(t.TempDir(), "missing", "philo.log"), true, false)
		assert.Error(t, w.Create())
	})
}
