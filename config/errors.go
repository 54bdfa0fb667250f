package config

import (
	"errors"
	"fmt"
	"github.com/MatthiasKunnen/uf/mimetype"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigOpen     = errors.New("failed to open config file")
	ErrConfigParse    = errors.New("failed to parse config file")
	ErrNoProgramFound = errors.New("no program found")
)

// LineReadError is returned when line Line of the configuration could not be read.
type LineReadError struct {
	Line int
	Err  error
}

func (e LineReadError) Error() string {
	return fmt.Sprintf("failed to read line %d: %v", e.Line, e.Err)
}

func (e LineReadError) Unwrap() error {
	return e.Err
}

// InvalidLineError is returned for a line that is not a valid rule.
// Text is the line without its comment and surrounding whitespace.
type InvalidLineError struct {
	Line int
	Text string
}

func (e InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %d: %s", e.Line, e.Text)
}

// NoProgramFoundError is returned when no rule matches a file.
type NoProgramFoundError struct {
	Mime         mimetype.MimeType
	Extension    string
	HasExtension bool
}

func (e NoProgramFoundError) Error() string {
	if e.HasExtension {
		return fmt.Sprintf("no program found for MIME type '%s', extension '%s'", e.Mime, e.Extension)
	}

	return fmt.Sprintf("no program found for MIME type '%s'", e.Mime)
}

func (e NoProgramFoundError) Is(target error) bool {
	return target == ErrNoProgramFound
}
