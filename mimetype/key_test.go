package mimetype

import (
	"errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestParseKey(t *testing.T) {
	key, err := ParseKey("image/svg+xml")
	if err != nil {
		t.Fatal(err)
	}

	want := Key{supertype: "image", subtype: "svg+xml"}
	if diff := cmp.Diff(want, key, cmp.AllowUnexported(Key{})); diff != "" {
		t.Errorf("ParseKey() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKey_wildcard(t *testing.T) {
	key, err := ParseKey("image/*")
	if err != nil {
		t.Fatal(err)
	}

	if !key.IsWildcard() {
		t.Errorf("image/* should be a wildcard key")
	}

	if key.String() != "image/*" {
		t.Errorf("key.String() = %s, want image/*", key.String())
	}
}

func TestParseKey_invalid(t *testing.T) {
	for _, raw := range []string{
		"bad",
		"/sub",
		"text/",
		"*/plain",
		"text/pl*in",
		"te xt/plain",
		"text/plain/extra",
		"tëxt/plain",
		"",
	} {
		_, err := ParseKey(raw)
		if !errors.Is(err, ErrInvalidMimeType) {
			t.Errorf("ParseKey(%q) error = %v, want ErrInvalidMimeType", raw, err)
		}

		var invalid InvalidMimeTypeError
		if errors.As(err, &invalid) && invalid.Text != raw {
			t.Errorf("InvalidMimeTypeError.Text = %q, want %q", invalid.Text, raw)
		}
	}
}

func TestKey_Matches(t *testing.T) {
	tests := []struct {
		key  string
		mime MimeType
		want bool
	}{
		{"image/*", New("image", "png"), true},
		{"image/*", New("image", "jpeg"), true},
		{"image/*", New("application", "png"), false},
		{"Text/Plain", New("text", "plain"), true},
		{"Text/Plain", New("TEXT", "PLAIN"), true},
		{"text/plain", New("text", "html"), false},
		{"application/vnd.oasis.opendocument.text", New("application", "vnd.oasis.opendocument.text"), true},
	}

	for _, tt := range tests {
		got := MustParseKey(tt.key).Matches(tt.mime)
		if got != tt.want {
			t.Errorf("%s matches %s = %t, want %t", tt.key, tt.mime, got, tt.want)
		}
	}
}

func TestKey_ZeroValueMatchesNothing(t *testing.T) {
	if (Key{}).Matches(New("", "")) {
		t.Errorf("zero Key should not match anything")
	}
}

func TestParse(t *testing.T) {
	mime, err := Parse("text/plain\n")
	if err != nil {
		t.Fatal(err)
	}

	if mime.Supertype() != "text" || mime.Subtype() != "plain" {
		t.Errorf("Parse() = %s/%s, want text/plain", mime.Supertype(), mime.Subtype())
	}

	if mime.String() != "text/plain" {
		t.Errorf("mime.String() = %s, want text/plain", mime.String())
	}
}

func TestParse_keepsCase(t *testing.T) {
	mime, err := Parse("Application/X-Foo")
	if err != nil {
		t.Fatal(err)
	}

	if mime.String() != "Application/X-Foo" {
		t.Errorf("mime.String() = %s, want Application/X-Foo", mime.String())
	}
}

func TestParse_noSeparator(t *testing.T) {
	_, err := Parse("data")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Parse(data) error = %v, want ErrMalformed", err)
	}
}
