// Package uri implements the absolute URI value used by SIP header fields
// (Alert-Info, Call-Info, Error-Info, From, To and others).
//
// # Overview
//
// The [URI] type wraps [net/url.URL] and applies the normalization SIP header
// fields expect:
//
//   - the URI must be absolute, i.e. carry a scheme;
//   - the host component is lower-cased, scheme casing, user info and path are kept;
//   - a hierarchical URI with an authority and an empty path gets the root path "/".
//
// Both hierarchical (http:, https:, ftp:) and opaque (sip:, sips:, tel:, urn:, mailto:)
// URIs are supported. For opaque SIP-like URIs the host is the part following "@"
// up to the first ";", "?" or ":".
//
// # Parsing
//
//	u, err := uri.Parse("http://fred@JJJ.com")
//	// u.String() == "http://fred@jjj.com/"
//
// [Parse] returns [grammar.ErrEmptyInput] for empty input, [ErrNotAbsolute] for
// relative references and a malformed input error otherwise.
//
// # Serialization
//
// [URI] implements [encoding.TextMarshaler] and [encoding.TextUnmarshaler].
package uri
