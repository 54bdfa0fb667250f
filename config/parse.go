// Package config parses uf's configuration file and resolves the program that opens a file.
//
// The configuration is a list of rules, one per line:
//
//	ext <extension> <program>
//	mime <supertype>/<subtype or *> <program>
//
// Everything from # to the end of a line is a comment. Rules are tried in file order and the
// first matching rule wins.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/MatthiasKunnen/uf/logging"
	"github.com/MatthiasKunnen/uf/mimetype"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	keywordExtension = "ext"
	keywordMime      = "mime"
)

var errInvalidUtf8 = errors.New("stream did not contain valid UTF-8")

// Config is the parsed configuration file. It is not modified after parsing.
type Config struct {
	mappings []Mapping
}

// New returns a Config with the given rules, in order of precedence.
func New(mappings ...Mapping) *Config {
	return &Config{mappings: append([]Mapping(nil), mappings...)}
}

// Mappings returns a copy of the rules in file order.
func (c *Config) Mappings() []Mapping {
	return append([]Mapping(nil), c.mappings...)
}

// Load opens and parses the configuration file at path.
// A missing file results in [ErrConfigNotFound], any other failure to open it in [ErrConfigOpen].
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigOpen, path, err)
	}
	defer file.Close()

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loading config file")

	return Parse(file)
}

// ParseFile parses the configuration file at path without translating open errors.
func ParseFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a configuration from reader.
// A single invalid line fails the whole parse; the returned error matches [ErrConfigParse].
func Parse(reader io.Reader) (*Config, error) {
	sc := bufio.NewScanner(reader)
	result := &Config{}

	lineNumber := 0
	for sc.Scan() {
		lineNumber++

		if !utf8.Valid(sc.Bytes()) {
			return nil, fmt.Errorf(
				"%w: %w",
				ErrConfigParse,
				LineReadError{Line: lineNumber, Err: errInvalidUtf8},
			)
		}

		mapping, err := parseLine(lineNumber, sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
		}

		if mapping != nil {
			result.mappings = append(result.mappings, mapping)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf(
			"%w: %w",
			ErrConfigParse,
			LineReadError{Line: lineNumber + 1, Err: err},
		)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Int("rules", len(result.mappings)).Msg("Parsed config")

	return result, nil
}

// parseLine returns nil without an error for blank and comment-only lines.
func parseLine(lineNumber int, line string) (Mapping, error) {
	if before, _, found := strings.Cut(line, "#"); found {
		line = before
	}
	line = strings.TrimSpace(line)

	if line == "" {
		return nil, nil
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, InvalidLineError{Line: lineNumber, Text: line}
	}

	keyword, key, program := fields[0], fields[1], fields[2]

	switch keyword {
	case keywordExtension:
		return NewExtensionMapping(key, program), nil
	case keywordMime:
		mimeKey, err := mimetype.ParseKey(key)
		if err != nil {
			return nil, err
		}

		return NewMimeMapping(mimeKey, program), nil
	default:
		return nil, InvalidLineError{Line: lineNumber, Text: line}
	}
}
