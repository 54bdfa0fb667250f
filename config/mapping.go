package config

import (
	"fmt"
	"github.com/MatthiasKunnen/uf/mimetype"
)

// Mapping is a single rule of the configuration file. It is either an [ExtensionMapping] or a
// [MimeMapping]; no other implementations exist.
type Mapping interface {
	// Program returns the program that opens files matched by the rule.
	Program() string

	matches(f *file) (bool, error)
}

// ExtensionMapping matches files whose extension equals Extension, case-sensitively.
// Extension has no leading dot.
type ExtensionMapping struct {
	Extension string
	program   string
}

// NewExtensionMapping returns a rule opening files with the given extension using program.
func NewExtensionMapping(extension string, program string) ExtensionMapping {
	return ExtensionMapping{Extension: extension, program: program}
}

func (m ExtensionMapping) Program() string {
	return m.program
}

func (m ExtensionMapping) String() string {
	return fmt.Sprintf("ext %s %s", m.Extension, m.program)
}

func (m ExtensionMapping) matches(f *file) (bool, error) {
	return f.hasExtension && f.extension == m.Extension, nil
}

// MimeMapping matches files whose detected MIME type is covered by Key.
type MimeMapping struct {
	Key     mimetype.Key
	program string
}

// NewMimeMapping returns a rule opening files of the given MIME key using program.
func NewMimeMapping(key mimetype.Key, program string) MimeMapping {
	return MimeMapping{Key: key, program: program}
}

func (m MimeMapping) Program() string {
	return m.program
}

func (m MimeMapping) String() string {
	return fmt.Sprintf("mime %s %s", m.Key, m.program)
}

func (m MimeMapping) matches(f *file) (bool, error) {
	mime, err := f.mimeType()
	if err != nil {
		return false, err
	}

	return m.Key.Matches(mime), nil
}
