package mimetype

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/MatthiasKunnen/uf/logging"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// DefaultFileCommand is the command used by [FileCommand] when Name is empty.
const DefaultFileCommand = "file"

// ErrDetectionFailed is wrapped by every error returned from [FileCommand.Detect].
var ErrDetectionFailed = errors.New("MIME type detection failed")

// Detector determines the MIME type of the file at a path.
type Detector interface {
	Detect(ctx context.Context, path string) (MimeType, error)
}

// DetectorFunc adapts a function to the [Detector] interface.
type DetectorFunc func(ctx context.Context, path string) (MimeType, error)

func (f DetectorFunc) Detect(ctx context.Context, path string) (MimeType, error) {
	return f(ctx, path)
}

// FileCommand detects MIME types using file(1), following symbolic links.
type FileCommand struct {
	// Name is the name or path of the file executable. Defaults to [DefaultFileCommand].
	Name string
}

// Detect runs `file --brief --dereference --mime-type` once for path.
func (c FileCommand) Detect(ctx context.Context, path string) (MimeType, error) {
	name := c.Name
	if name == "" {
		name = DefaultFileCommand
	}

	args := []string{"--brief", "--dereference", "--mime-type", "--", path}
	logger := logging.GetLogger("mimetype")
	logger.Debug().Str("command", name).Strs("args", args).Msg("Detecting MIME type")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return MimeType{}, fmt.Errorf(
			"%w: '%s' command failed: %s",
			ErrDetectionFailed,
			name,
			strings.TrimSpace(stderr.String()),
		)
	case err != nil:
		return MimeType{}, fmt.Errorf(
			"%w: failed to execute '%s' command: %w",
			ErrDetectionFailed,
			name,
			err,
		)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return MimeType{}, fmt.Errorf("%w: '%s' output is invalid UTF-8", ErrDetectionFailed, name)
	}

	mime, err := Parse(stdout.String())
	if err != nil {
		return MimeType{}, fmt.Errorf("%w: '%s' output: %w", ErrDetectionFailed, name, err)
	}

	logger.Debug().Str("path", path).Stringer("mime", mime).Msg("Detected MIME type")

	return mime, nil
}
