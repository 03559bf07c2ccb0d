package header

import (
	"encoding/json"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
)

// Any represents an extension header with an arbitrary name.
// The value is kept verbatim.
type Any struct {
	textField
}

// NewAny returns an empty extension header with the given name.
func NewAny(name string) *Any {
	hdr := &Any{}
	hdr.name = CanonicName(name)
	hdr.init(KindExtension)
	return hdr
}

// ParseAny parses an extension header line "Name: value".
func ParseAny(s string) (*Any, error) { return errtrace.Wrap2(parseAs(NewAny(""), s)) }

// Parse resets the header from the given text.
// A header without name adopts the name from the "Name: value" prefix.
func (hdr *Any) Parse(s string) error {
	if hdr.name == "" {
		if name, ok := cutHeaderName(s); ok {
			hdr.name = CanonicName(name)
			hdr.init(KindExtension)
		}
	}
	return errtrace.Wrap(hdr.textField.Parse(s))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hdr *Any) UnmarshalText(text []byte) error { return errtrace.Wrap(hdr.Parse(string(text))) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Any) UnmarshalJSON(data []byte) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return errtrace.Wrap(err)
	}
	if hd == nil {
		return errtrace.Wrap(hdr.Parse(""))
	}
	if hdr.name == "" {
		hdr.name = CanonicName(hd.Name)
		hdr.init(KindExtension)
	}
	return errtrace.Wrap(hdr.Parse(hd.Value))
}

// IsValid reports whether the name is a token and the value is not empty.
func (hdr *Any) IsValid() bool { return hdr != nil && hdr.name.IsValid() && hdr.textField.IsValid() }

// Clone returns a deep copy of the header.
func (hdr *Any) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Any{hdr.textField.copy()}
	hdr2.init(KindExtension)
	return hdr2
}

// Equal compares this header with another for equality.
// Names are compared case-insensitively, values exactly.
func (hdr *Any) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Any) bool { return a.equal(&b.textField) })
}

// cutHeaderName returns the name of a "Name: value" header line.
func cutHeaderName(s string) (string, bool) {
	name, rest := grammar.ScanToken(grammar.SkipLWS(s))
	if name == "" || !strings.HasPrefix(strings.TrimLeft(rest, " \t"), ":") {
		return "", false
	}
	return name, true
}
