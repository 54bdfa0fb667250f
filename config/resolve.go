package config

import (
	"context"
	"github.com/MatthiasKunnen/uf/logging"
	"github.com/MatthiasKunnen/uf/mimetype"
	"path/filepath"
	"strings"
)

// file is the subject of a single resolution. Its MIME type is detected at most once, and only
// when a rule or the final error message needs it.
type file struct {
	ctx          context.Context
	path         string
	extension    string
	hasExtension bool
	detector     mimetype.Detector

	mime     mimetype.MimeType
	detected bool
}

func (f *file) mimeType() (mimetype.MimeType, error) {
	if f.detected {
		return f.mime, nil
	}

	mime, err := f.detector.Detect(f.ctx, f.path)
	if err != nil {
		return mimetype.MimeType{}, err
	}

	f.mime = mime
	f.detected = true

	return mime, nil
}

// Program returns the program of the first rule, in file order, that matches the file at path.
//
// Extension rules compare the extension of path exactly. The MIME type is obtained from detector
// the first time a MIME rule is reached, so a file matched by an extension rule listed before any
// MIME rule is never inspected. A detection failure aborts the resolution.
//
// If no rule matches, a [NoProgramFoundError] describing the file is returned.
func (c *Config) Program(ctx context.Context, path string, detector mimetype.Detector) (string, error) {
	logger := logging.GetLogger("config")
	extension, hasExtension := Extension(path)
	f := &file{
		ctx:          ctx,
		path:         path,
		extension:    extension,
		hasExtension: hasExtension,
		detector:     detector,
	}

	for i, mapping := range c.mappings {
		matched, err := mapping.matches(f)
		if err != nil {
			return "", err
		}

		if matched {
			logger.Debug().
				Str("path", path).
				Int("rule", i+1).
				Str("program", mapping.Program()).
				Msg("Rule matched")
			return mapping.Program(), nil
		}
	}

	mime, err := f.mimeType()
	if err != nil {
		return "", err
	}

	return "", NoProgramFoundError{
		Mime:         mime,
		Extension:    extension,
		HasExtension: hasExtension,
	}
}

// Extension returns the extension of the last element of path, without the leading dot.
// A name without a dot, or whose only dot is its first character such as .bashrc, has no
// extension. A name ending in a dot has the empty extension.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return "", false
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}

	return name[i+1:], true
}
