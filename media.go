package ogmeta

import (
	"net/url"
	"unicode"
)

// Image is a structured og:image.
type Image struct {
	URL       string  `json:"url"`
	SecureURL *string `json:"secureUrl,omitempty"`
	MimeType  *string `json:"type,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	Alt       *string `json:"alt,omitempty"`
}

// Video is a structured og:video.
type Video struct {
	URL       string  `json:"url"`
	SecureURL *string `json:"secureUrl,omitempty"`
	MimeType  *string `json:"type,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	Alt       *string `json:"alt,omitempty"`
}

// Audio is a structured og:audio.
type Audio struct {
	URL       string  `json:"url"`
	SecureURL *string `json:"secureUrl,omitempty"`
	MimeType  *string `json:"type,omitempty"`
}

// VideoActor is a video:actor with its optional video:actor:role.
type VideoActor struct {
	Profile URI     `json:"profile"`
	Role    *string `json:"role,omitempty"`
}

// URI is a parsed URI reference. It encodes to and from its string form.
type URI struct {
	url.URL
}

// ParseURI parses s as an RFC 3986 URI reference. Empty strings and strings
// with characters outside the unreserved, reserved and percent-encoded sets
// are rejected rather than escaped. Non-ASCII letters are allowed.
func ParseURI(s string) (URI, error) {
	if s == "" {
		return URI{}, Errorf(EINVALID, "empty URI")
	}
	if err := checkURIChars(s); err != nil {
		return URI{}, err
	}
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, Errorf(EINVALID, "invalid URI %q: %v", s, err)
	}
	return URI{URL: *u}, nil
}

func checkURIChars(s string) error {
	for i, r := range s {
		switch {
		case r == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return Errorf(EINVALID, "URI %q has a malformed escape", s)
			}
		case r >= 0x80:
			if unicode.IsSpace(r) || unicode.IsControl(r) {
				return Errorf(EINVALID, "URI %q contains %q", s, r)
			}
		case !isURIChar(byte(r)):
			return Errorf(EINVALID, "URI %q contains %q", s, r)
		}
	}
	return nil
}

// isURIChar reports whether c is an RFC 3986 unreserved or reserved character.
func isURIChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~', // unreserved
		':', '/', '?', '#', '[', ']', '@', // gen-delims
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=': // sub-delims
		return true
	}
	return false
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// String returns the URI in its textual form.
func (u URI) String() string {
	return u.URL.String()
}

// MarshalText implements encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URI) UnmarshalText(b []byte) error {
	parsed, err := ParseURI(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
