package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
)

// CallID represents the Call-ID header field: "f81d4fae-7dec-11d0-a765-00a0c91e6bf6@foo.bar.com".
type CallID struct {
	field
	id string
}

// NewCallID returns an unset Call-ID header.
func NewCallID() *CallID {
	hdr := &CallID{}
	hdr.bind(KindCallID, hdr)
	return hdr
}

// ParseCallID parses the Call-ID header from text.
func ParseCallID(s string) (*CallID, error) { return errtrace.Wrap2(parseAs(NewCallID(), s)) }

// ID returns the call identifier.
func (hdr *CallID) ID() string { return hdr.id }

// SetID sets the call identifier. It must be "word" or "word@word".
func (hdr *CallID) SetID(id string) error {
	if !isCallID(id) {
		return errtrace.Wrap(newInvalidCharErr("invalid call-id %q", id))
	}
	hdr.id = id
	hdr.invalidate()
	return nil
}

func (hdr *CallID) resetValue() { hdr.id = "" }

func (hdr *CallID) parseValue(s string) error {
	if !isCallID(s) {
		return errtrace.Wrap(newMalformedErr("invalid call-id %q", s))
	}
	hdr.id = s
	return nil
}

func (hdr *CallID) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, hdr.id))
}

// IsValid reports whether the identifier is set.
func (hdr *CallID) IsValid() bool { return hdr != nil && isCallID(hdr.id) }

// Clone returns a deep copy of the header.
func (hdr *CallID) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &CallID{field: hdr.field.clone(), id: hdr.id}
	hdr2.bind(KindCallID, hdr2)
	return hdr2
}

// Equal compares this header with another for equality.
// Call identifiers are compared case-sensitively.
func (hdr *CallID) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *CallID) bool { return a.id == b.id && a.field.equal(&b.field) })
}

func isWordChar(c byte) bool {
	return grammar.IsTokenChar(c) || strings.IndexByte(`()<>:\"/[]?{}`, c) >= 0
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}

func isCallID(s string) bool {
	local, host, ok := strings.Cut(s, "@")
	return isWord(local) && (!ok || isWord(host))
}
