package mimetype

import (
	"errors"
	"strings"
)

const wildcard = "*"

// ErrInvalidMimeType is matched by every [InvalidMimeTypeError].
var ErrInvalidMimeType = errors.New("invalid MIME type")

// InvalidMimeTypeError is returned by [ParseKey] for a MIME key that is malformed.
type InvalidMimeTypeError struct {
	// Text is the key as it appeared in the configuration.
	Text string
}

func (e InvalidMimeTypeError) Error() string {
	return "invalid MIME type: " + e.Text
}

func (e InvalidMimeTypeError) Is(target error) bool {
	return target == ErrInvalidMimeType
}

// Key is a configured MIME pattern such as text/plain or image/*.
// The zero value matches nothing; use [ParseKey] to obtain a Key.
type Key struct {
	supertype string
	subtype   string
	wildcard  bool
}

// ParseKey parses raw as supertype/subtype where subtype may be * to match any subtype.
// Both parts must be non-empty and may only contain ASCII letters, digits, and the characters
// +-._.
func ParseKey(raw string) (Key, error) {
	supertype, subtype, found := strings.Cut(raw, "/")
	if !found || !isValidPart(supertype) {
		return Key{}, InvalidMimeTypeError{Text: raw}
	}

	if subtype == wildcard {
		return Key{supertype: supertype, wildcard: true}, nil
	}

	if !isValidPart(subtype) {
		return Key{}, InvalidMimeTypeError{Text: raw}
	}

	return Key{supertype: supertype, subtype: subtype}, nil
}

// MustParseKey is like [ParseKey] but panics if raw is not a valid key.
func MustParseKey(raw string) Key {
	key, err := ParseKey(raw)
	if err != nil {
		panic(err)
	}

	return key
}

// Matches reports whether m is covered by the key.
func (k Key) Matches(m MimeType) bool {
	if k.supertype == "" || !strings.EqualFold(k.supertype, m.supertype) {
		return false
	}

	return k.wildcard || strings.EqualFold(k.subtype, m.subtype)
}

func (k Key) Supertype() string {
	return k.supertype
}

// Subtype returns the configured subtype, or * for a wildcard key.
func (k Key) Subtype() string {
	if k.wildcard {
		return wildcard
	}

	return k.subtype
}

func (k Key) IsWildcard() bool {
	return k.wildcard
}

func (k Key) String() string {
	return k.supertype + "/" + k.Subtype()
}

func isValidPart(part string) bool {
	if part == "" {
		return false
	}

	for i := 0; i < len(part); i++ {
		c := part[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '+', c == '-', c == '.', c == '_':
		default:
			return false
		}
	}

	return true
}
