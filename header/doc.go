// Package header implements parsing, validation and rendering of SIP header fields
// defined by RFC 3261 and related extensions.
//
// # Overview
//
// Every concrete header type implements the [Header] interface. A header is created
// with its constructor (NewExpires, NewContentLength, ...) and then either mutated through
// typed setters or reset from text with [Header.Parse]:
//
//	hdr := header.NewContentLength()
//	if err := hdr.Parse("Content-Length: 8"); err != nil {
//		// handle err
//	}
//	hdr.Render(nil) // "Content-Length: 8"
//
// [Header.Parse] accepts the bare value as well as the value prefixed with the
// canonical or compact header name, tolerates line folding (CRLF followed by
// whitespace) and surrounding whitespace. An empty input resets the header to its
// unset state without an error.
//
// # Behaviors
//
// Concrete headers compose one or more value behaviors. Each behavior owns its
// own slice of state and contributes to rendering, equality and validity:
//
//   - [SecondsValue]: unsigned 32-bit number (Expires, Content-Length, Max-Forwards)
//   - [QValue]: quality value in [0, 1] rendered with 3 decimals (Accept, Accept-Language)
//   - [MediaTypeValue]: type/subtype pair (Accept, Content-Type)
//   - [OptionValue]: single token (Supported, Require, Priority, Content-Encoding)
//   - [AbsoluteURIValue]: angle-bracketed absolute URI (Alert-Info, Call-Info, Error-Info)
//   - [SecurityValue]: authentication scheme with auth-params (Authorization, WWW-Authenticate)
//   - [TagAddressValue]: display name, address and tag (From, To)
//   - [TextValue]: free text (Subject, Organization, User-Agent, Server)
//
// # Parameters
//
// Header parameters are kept in insertion order by [Params]. Names are compared
// case-insensitively, values exactly. Rendering of generic parameter names follows
// the [ParamCase] policy of the header family: media type headers lower-case them,
// the rest keep the original casing.
//
// Authentication headers render well-known auth-params in a fixed order:
// challenges (WWW-Authenticate, Proxy-Authenticate) use realm, nonce, algorithm,
// opaque, qop; credentials (Authorization, Proxy-Authorization) use username, realm,
// algorithm, qop, nonce, uri, response, cnonce, nc, opaque. Unknown parameters
// follow in insertion order and are kept verbatim.
//
// # Groups
//
// [Group] holds several instances of the same header type and parses or renders a
// comma-separated multi-value line. [AuthGroup] does the same for challenge and
// credential lists where commas also separate auth-params.
//
// # Ordering
//
// [Header.CompareTo] and [Sort] order heterogeneous headers by a fixed weight table
// keyed by [Kind], so a message renders its headers in a deterministic order.
//
// # Errors
//
// Parsing failures wrap [ErrMalformedHeader]. Setters return [ErrOutOfRange] for
// numeric values outside the allowed range, [ErrInvalidCharacter] for text outside
// the allowed alphabet and [ErrProtocol] for missing required values.
// Use [errors.Is] to test for them.
//
// # Concurrency
//
// Headers are not safe for concurrent use, render caches are updated on read.
// Use Clone to hand a copy to another goroutine.
package header
