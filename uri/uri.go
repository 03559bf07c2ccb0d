package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/types"
	"github.com/ghettovoice/siphdr/internal/util"
)

// RenderOptions contains options for rendering URIs and headers.
type RenderOptions = types.RenderOptions

// ErrNotAbsolute is returned when the parsed URI has no scheme.
const ErrNotAbsolute errorutil.Error = "not an absolute URI"

// URI is an absolute URI.
type URI struct {
	url.URL
}

// Parse parses an absolute URI from the given input s and normalizes it.
func Parse(s string) (*URI, error) {
	s = grammar.TrimLWS(s)
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	scheme, _, ok := strings.Cut(s, ":")
	if !ok || !isScheme(scheme) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotAbsolute, "%q", s))
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	// net/url lower-cases the scheme, the original casing is kept.
	u.Scheme = scheme

	u2 := &URI{URL: *u}
	u2.Normalize()
	return u2, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *URI { return util.Must2(Parse(s)) }

func isScheme(s string) bool {
	if s == "" || !('a' <= s[0] && s[0] <= 'z' || 'A' <= s[0] && s[0] <= 'Z') {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return true
}

// Normalize lower-cases the host and sets the root path of hierarchical URIs with a host.
// For opaque URIs like "sip:alice@EXAMPLE.COM" the host of the opaque part is lower-cased.
func (u *URI) Normalize() {
	if u == nil {
		return
	}
	if u.URL.Host != "" {
		u.URL.Host = util.LCase(u.URL.Host)
		if u.Path == "" && u.RawPath == "" {
			u.Path = "/"
		}
		return
	}
	if u.Opaque != "" {
		start, end := opaqueHostBounds(u.Opaque)
		u.Opaque = u.Opaque[:start] + util.LCase(u.Opaque[start:end]) + u.Opaque[end:]
	}
}

// opaqueHostBounds locates the host part in "user@host;params" like opaque parts.
func opaqueHostBounds(s string) (start, end int) {
	end = len(s)
	if i := strings.IndexAny(s, ";?"); i >= 0 {
		end = i
	}
	if i := strings.LastIndexByte(s[:end], '@'); i >= 0 {
		start = i + 1
	}
	if i := strings.IndexByte(s[start:end], ':'); i >= 0 {
		end = start + i
	}
	return start, end
}

// Host returns the host component of the URI.
// For opaque URIs like "sip:alice@example.com" the host is extracted from the opaque part.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	if u.URL.Host != "" {
		return u.URL.Hostname()
	}
	if u.Opaque != "" {
		start, end := opaqueHostBounds(u.Opaque)
		return u.Opaque[start:end]
	}
	return ""
}

// IsAbs reports whether the URI is absolute.
func (u *URI) IsAbs() bool { return u != nil && u.URL.IsAbs() }

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.User != nil {
		if pwd, ok := u.User.Password(); ok {
			u2.User = url.UserPassword(u.User.Username(), pwd)
		} else {
			u2.User = url.User(u.User.Username())
		}
	}
	return &u2
}

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.URL.String()))
}

// Render returns the string representation of the URI.
func (u *URI) Render(_ *RenderOptions) string {
	if u == nil {
		return ""
	}
	return u.URL.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string { return u.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
			type hideMethods URI
			type URI hideMethods
			fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality.
// Scheme and host are compared case-insensitively, the rest must match exactly.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	if !util.EqFold(u.Scheme, other.Scheme) {
		return false
	}
	s1, s2 := u.String(), other.String()
	return s1[len(u.Scheme):] == s2[len(other.Scheme):]
}

// IsValid checks whether the URI is an absolute URI with a non-empty body.
func (u *URI) IsValid() bool {
	return u != nil && isScheme(u.Scheme) &&
		(util.TrimSP(u.Opaque) != "" ||
			util.TrimSP(u.URL.Host) != "" ||
			util.TrimSP(u.Path) != "")
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
