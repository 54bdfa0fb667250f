package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/MatthiasKunnen/uf/config"
	"github.com/MatthiasKunnen/uf/internal/version"
	"github.com/MatthiasKunnen/uf/logging"
	"github.com/MatthiasKunnen/uf/settings"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"io"
)

const helpTemplate = `Usage: {{.UseLine}}

{{.Long}}

Options:
{{.LocalFlags.FlagUsages}}`

const longDescription = `Open FILE with the appropriate program

A FILE whose name starts with - must follow --, as in: uf -- -notes.txt`

// OpenFunc replaces the process with program invoked on arg. It only returns on failure.
type OpenFunc func(program string, arg string) error

// usageError is returned for invalid arguments or flags.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func newRootCmd(open OpenFunc) *cobra.Command {
	var s settings.Settings

	cmd := &cobra.Command{
		Use:                   "uf <FILE>",
		Short:                 "Open FILE with the appropriate program",
		Long:                  longDescription,
		Version:               version.Version,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err: err}
			}

			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			s, err = settings.Load()
			if err != nil {
				return err
			}

			logging.Setup(s.LogLevel, s.LogFile)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			configPath, err := s.ConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			program, err := cfg.Program(cmd.Context(), path, s.Detector())
			if err != nil {
				return err
			}

			return open(program, path)
		},
	}

	cmd.Flags().BoolP("help", "h", false, "Print this help message and exit")
	cmd.Flags().BoolP("version", "v", false, "Print the version number and exit")
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetHelpTemplate(helpTemplate)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	return cmd
}

// run executes uf with args and returns the process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer, open OpenFunc) int {
	cmd := newRootCmd(open)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), usageErr.err)
		fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", cmd.Name())
		return 1
	}

	errorStyle := lipgloss.NewRenderer(stderr).NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fmt.Fprintf(stderr, "%s %v\n", errorStyle.Render("Error:"), err)

	return 1
}
