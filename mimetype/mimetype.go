package mimetype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by [Parse] when the input has no supertype/subtype separator.
var ErrMalformed = errors.New("not a valid MIME type")

// MimeType is the MIME type of a specific file, e.g. image/png.
// The supertype and subtype are kept exactly as the detector reported them.
type MimeType struct {
	supertype string
	subtype   string
}

// Parse splits raw on the first / into supertype and subtype.
// Surrounding whitespace, such as the trailing newline of a command's output, is ignored.
func Parse(raw string) (MimeType, error) {
	supertype, subtype, found := strings.Cut(strings.TrimSpace(raw), "/")
	if !found {
		return MimeType{}, fmt.Errorf("%w: %s", ErrMalformed, raw)
	}

	return MimeType{supertype: supertype, subtype: subtype}, nil
}

// New returns the MIME type supertype/subtype without validating either part.
func New(supertype string, subtype string) MimeType {
	return MimeType{supertype: supertype, subtype: subtype}
}

func (m MimeType) Supertype() string {
	return m.supertype
}

func (m MimeType) Subtype() string {
	return m.subtype
}

// String renders the MIME type as supertype/subtype.
func (m MimeType) String() string {
	return m.supertype + "/" + m.subtype
}
