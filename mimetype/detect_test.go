package mimetype_test

import (
	"context"
	"fmt"
	"github.com/MatthiasKunnen/uf/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// fakeFileCommand writes an executable shell script standing in for file(1).
func fakeFileCommand(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)

	return path
}

func ExampleKey_Matches() {
	key := mimetype.MustParseKey("image/*")

	fmt.Println(key.Matches(mimetype.New("image", "png")))
	fmt.Println(key.Matches(mimetype.New("application", "png")))
	// Output:
	// true
	// false
}

func TestFileCommand_Detect(t *testing.T) {
	detector := mimetype.FileCommand{Name: fakeFileCommand(t, `echo "image/png"`)}

	mime, err := detector.Detect(context.Background(), "photo.png")
	require.NoError(t, err)
	assert.Equal(t, "image", mime.Supertype())
	assert.Equal(t, "png", mime.Subtype())
}

func TestFileCommand_Detect_passesPath(t *testing.T) {
	// Echo the last argument back as the subtype so the invocation can be inspected.
	detector := mimetype.FileCommand{Name: fakeFileCommand(t, `for last; do :; done; echo "x/$last"`)}

	mime, err := detector.Detect(context.Background(), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "x/notes.txt", mime.String())
}

func TestFileCommand_Detect_commandFails(t *testing.T) {
	detector := mimetype.FileCommand{Name: fakeFileCommand(t, `echo "cannot open" >&2; exit 1`)}

	_, err := detector.Detect(context.Background(), "missing")
	require.ErrorIs(t, err, mimetype.ErrDetectionFailed)
	assert.Contains(t, err.Error(), "command failed")
	assert.Contains(t, err.Error(), "cannot open")
}

func TestFileCommand_Detect_commandMissing(t *testing.T) {
	detector := mimetype.FileCommand{Name: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := detector.Detect(context.Background(), "file.txt")
	require.ErrorIs(t, err, mimetype.ErrDetectionFailed)
	assert.Contains(t, err.Error(), "failed to execute")
}

func TestFileCommand_Detect_invalidUtf8(t *testing.T) {
	detector := mimetype.FileCommand{Name: fakeFileCommand(t, `printf 'text/\377\376'`)}

	_, err := detector.Detect(context.Background(), "file.txt")
	require.ErrorIs(t, err, mimetype.ErrDetectionFailed)
	assert.Contains(t, err.Error(), "invalid UTF-8")
}

func TestFileCommand_Detect_noSeparator(t *testing.T) {
	detector := mimetype.FileCommand{Name: fakeFileCommand(t, `echo "data"`)}

	_, err := detector.Detect(context.Background(), "file.bin")
	require.ErrorIs(t, err, mimetype.ErrDetectionFailed)
	assert.ErrorIs(t, err, mimetype.ErrMalformed)
}
