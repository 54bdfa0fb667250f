//go:build unix

// Package launcher replaces the running process with the program that opens a file.
package launcher

import (
	"errors"
	"fmt"
	"github.com/MatthiasKunnen/uf/logging"
	"golang.org/x/sys/unix"
	"os"
	"os/exec"
)

// ErrOpenFailed is wrapped by every error returned from [Launcher.Open].
var ErrOpenFailed = errors.New("failed to open the file")

// ExecFunc replaces the current process image. It only returns on failure.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Launcher starts programs in place of the current process.
type Launcher struct {
	// LookPath resolves a program name to an executable path. Defaults to [exec.LookPath].
	LookPath func(file string) (string, error)

	// Exec defaults to [unix.Exec].
	Exec ExecFunc
}

// Default uses the real PATH lookup and execve.
var Default = Launcher{}

// Open runs program with arg as its only argument, replacing the current process.
// On success Open does not return.
func (l Launcher) Open(program string, arg string) error {
	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	execFn := l.Exec
	if execFn == nil {
		execFn = unix.Exec
	}

	path, err := lookPath(program)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	logger := logging.GetLogger("launcher")
	logger.Debug().
		Str("program", program).
		Str("path", path).
		Str("arg", arg).
		Msg("Executing program")

	err = execFn(path, []string{program, arg}, os.Environ())

	return fmt.Errorf("%w: exec %s: %w", ErrOpenFailed, path, err)
}
