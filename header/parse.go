package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
)

var constructors = map[Name]func() Header{
	"Accept":              func() Header { return NewAccept() },
	"Accept-Encoding":     func() Header { return NewAcceptEncoding() },
	"Accept-Language":     func() Header { return NewAcceptLanguage() },
	"Alert-Info":          func() Header { return NewAlertInfo() },
	"Allow":               func() Header { return NewAllow() },
	"Authorization":       func() Header { return NewAuthorization() },
	"Call-ID":             func() Header { return NewCallID() },
	"Call-Info":           func() Header { return NewCallInfo() },
	"Content-Disposition": func() Header { return NewContentDisposition() },
	"Content-Encoding":    func() Header { return NewContentEncoding() },
	"Content-Language":    func() Header { return NewContentLanguage() },
	"Content-Length":      func() Header { return NewContentLength() },
	"Content-Type":        func() Header { return NewContentType() },
	"Error-Info":          func() Header { return NewErrorInfo() },
	"Expires":             func() Header { return NewExpires() },
	"From":                func() Header { return NewFrom() },
	"Max-Forwards":        func() Header { return NewMaxForwards() },
	"Min-Expires":         func() Header { return NewMinExpires() },
	"Organization":        func() Header { return NewOrganization() },
	"Priority":            func() Header { return NewPriority() },
	"Proxy-Authenticate":  func() Header { return NewProxyAuthenticate() },
	"Proxy-Authorization": func() Header { return NewProxyAuthorization() },
	"Proxy-Require":       func() Header { return NewProxyRequire() },
	"Require":             func() Header { return NewRequire() },
	"Retry-After":         func() Header { return NewRetryAfter() },
	"Server":              func() Header { return NewServer() },
	"Subject":             func() Header { return NewSubject() },
	"Supported":           func() Header { return NewSupported() },
	"To":                  func() Header { return NewTo() },
	"Unsupported":         func() Header { return NewUnsupported() },
	"User-Agent":          func() Header { return NewUserAgent() },
	"WWW-Authenticate":    func() Header { return NewWWWAuthenticate() },
}

// New returns a default header for the given canonical or compact name.
// Unknown names produce an [Any] header.
func New(name string) Header {
	n := CanonicName(name)
	if newHdr, ok := constructors[n]; ok {
		return newHdr()
	}
	return NewAny(string(n))
}

// Parse parses a header line "Name: value".
// The header type is selected by the canonical or compact name, unknown names produce an [Any] header.
// For list headers only the first element of the line is returned, use [ParseAll],
// [Group] or [AuthGroup] to get the whole list.
func Parse(line string) (Header, error) {
	hdrs, err := parseLine(line, 1)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdrs[0], nil
}

// ParseAll parses a header line "Name: value1, value2" into one header per list element.
func ParseAll(line string) ([]Header, error) { return errtrace.Wrap2(parseLine(line, -1)) }

func parseLine(line string, limit int) ([]Header, error) {
	line = grammar.Unfold(line)
	name, ok := cutHeaderName(line)
	if !ok {
		return nil, errtrace.Wrap(newMalformedErr("missing header name in %q", line))
	}

	proto := New(name)
	if !proto.AllowMultiple() || proto.Kind() == KindExtension {
		if err := proto.Parse(line); err != nil {
			return nil, errtrace.Wrap(err)
		}
		return []Header{proto}, nil
	}

	split := splitList
	if isAuthKind(proto.Kind()) {
		split = splitAuthList
	}
	segs := split(grammar.StripName(line, string(proto.CanonicName()), string(proto.CompactName())))
	if len(segs) == 0 {
		return []Header{proto}, nil
	}
	if limit > 0 && len(segs) > limit {
		segs = segs[:limit]
	}

	hdrs := make([]Header, 0, len(segs))
	for _, seg := range segs {
		hdr := New(name)
		if err := hdr.Parse(seg); err != nil {
			return nil, errtrace.Wrap(err)
		}
		hdrs = append(hdrs, hdr)
	}
	return hdrs, nil
}

func isAuthKind(k Kind) bool {
	switch k {
	case KindAuthorization, KindProxyAuthorization, KindWWWAuthenticate, KindProxyAuthenticate:
		return true
	}
	return false
}
