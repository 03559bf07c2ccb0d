package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/uri"
)

// TagAddressValue is a name-addr or addr-spec with an optional dialog tag:
// `"Bob" <sip:bob@biloxi.com>;tag=a6c85cf`.
type TagAddressValue struct {
	rc      *renderCache
	display string
	addr    *uri.URI
	tag     string
}

// DisplayName returns the display name.
func (v *TagAddressValue) DisplayName() string { return v.display }

// SetDisplayName sets the display name. Control characters are rejected with [ErrInvalidCharacter].
func (v *TagAddressValue) SetDisplayName(name string) error {
	if !grammar.IsText(name) {
		return errtrace.Wrap(newInvalidCharErr("display name %q", name))
	}
	v.display = name
	v.rc.invalidate()
	return nil
}

// Address returns a copy of the address URI.
func (v *TagAddressValue) Address() *uri.URI { return v.addr.Clone() }

// SetAddress sets the address URI. A nil or relative URI is rejected with [ErrProtocol].
func (v *TagAddressValue) SetAddress(u *uri.URI) error {
	if u == nil {
		return errtrace.Wrap(newProtocolErr("address is required"))
	}
	if !u.IsAbs() {
		return errtrace.Wrap(newProtocolErr("address %q is not absolute", u.String()))
	}
	v.addr = u.Clone()
	v.addr.Normalize()
	v.rc.invalidate()
	return nil
}

// SetAddressString parses and sets the address URI.
func (v *TagAddressValue) SetAddressString(s string) error {
	if grammar.TrimLWS(s) == "" {
		return errtrace.Wrap(newProtocolErr("address is required"))
	}
	u, err := uri.Parse(s)
	if err != nil {
		return errtrace.Wrap(newInvalidCharErr(err))
	}
	return errtrace.Wrap(v.SetAddress(u))
}

// Tag returns the dialog tag.
func (v *TagAddressValue) Tag() string { return v.tag }

// SetTag sets the dialog tag. An empty tag removes it.
func (v *TagAddressValue) SetTag(tag string) error {
	if tag != "" && !grammar.IsToken(tag) {
		return errtrace.Wrap(newInvalidCharErr("tag %q is not a token", tag))
	}
	v.tag = tag
	v.rc.invalidate()
	return nil
}

func (v *TagAddressValue) resetTagAddress() { v.display, v.addr, v.tag = "", nil, "" }

// parseTagAddress parses the address and returns its header parameters without the tag.
func (v *TagAddressValue) parseTagAddress(s string) (Params, error) {
	var (
		raw string
		ps  Params
	)
	switch {
	case s[0] == '"':
		name, rest, err := grammar.ScanQuoted(s)
		if err != nil {
			return nil, errtrace.Wrap(newMalformedErr(err))
		}
		rest = grammar.SkipLWS(rest)
		addr, rest, err := grammar.ScanAngle(rest)
		if err != nil {
			return nil, errtrace.Wrap(newMalformedErr(err))
		}
		v.display, raw, ps = name, addr, parseTrailingParams(rest)
	case strings.IndexByte(s, '<') >= 0:
		i := strings.IndexByte(s, '<')
		addr, rest, err := grammar.ScanAngle(s[i:])
		if err != nil {
			return nil, errtrace.Wrap(newMalformedErr(err))
		}
		v.display, raw, ps = grammar.TrimLWS(s[:i]), addr, parseTrailingParams(rest)
	default:
		raw, ps = splitParams(s)
	}

	u, err := uri.Parse(raw)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedErr(err))
	}
	v.addr = u
	if tag, ok := ps.Get("tag"); ok {
		v.tag = tag
		ps = ps.Del("tag")
	}
	return ps, nil
}

func (v *TagAddressValue) renderTagAddressTo(w io.Writer) (num int, err error) {
	if v.addr == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if v.display != "" {
		cw.WriteString(grammar.Quote(v.display))
		cw.WriteString(" ")
	}
	cw.WriteString("<")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(v.addr.RenderTo(w, nil)) })
	cw.WriteString(">")
	if v.tag != "" {
		cw.WriteString(";tag=")
		cw.WriteString(v.tag)
	}
	return errtrace.Wrap2(cw.Result())
}

func (v *TagAddressValue) tagAddressEqual(o *TagAddressValue) bool {
	if v.display != o.display || v.tag != o.tag {
		return false
	}
	if v.addr == nil || o.addr == nil {
		return v.addr == o.addr
	}
	return v.addr.Equal(o.addr)
}

func (v *TagAddressValue) tagAddressValid() bool { return v.addr.IsValid() }

// addressField is the base of From and To headers.
type addressField struct {
	field
	TagAddressValue
}

func (f *addressField) init(kind Kind) {
	f.bind(kind, f)
	f.TagAddressValue.rc = &f.cache
}

func (f *addressField) copy() addressField {
	tv := f.TagAddressValue
	tv.addr = tv.addr.Clone()
	return addressField{field: f.field.clone(), TagAddressValue: tv}
}

func (f *addressField) resetValue() { f.resetTagAddress() }

func (f *addressField) parseValue(s string) error {
	ps, err := f.parseTagAddress(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	f.params = ps
	return nil
}

func (f *addressField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderTagAddressTo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

func (f *addressField) equal(o *addressField) bool {
	return f.field.equal(&o.field) && f.tagAddressEqual(&o.TagAddressValue)
}

// IsValid reports whether the address is set and valid.
func (f *addressField) IsValid() bool { return f.tagAddressValid() && f.paramsValid() }

// From represents the From header field.
type From struct {
	addressField
}

// NewFrom returns an unset From header.
func NewFrom() *From {
	hdr := &From{}
	hdr.init(KindFrom)
	return hdr
}

// ParseFrom parses the From header from text.
func ParseFrom(s string) (*From, error) { return errtrace.Wrap2(parseAs(NewFrom(), s)) }

// Clone returns a deep copy of the header.
func (hdr *From) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &From{hdr.addressField.copy()}
	hdr2.init(KindFrom)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *From) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *From) bool { return a.equal(&b.addressField) })
}

// To represents the To header field.
type To struct {
	addressField
}

// NewTo returns an unset To header.
func NewTo() *To {
	hdr := &To{}
	hdr.init(KindTo)
	return hdr
}

// ParseTo parses the To header from text.
func ParseTo(s string) (*To, error) { return errtrace.Wrap2(parseAs(NewTo(), s)) }

// Clone returns a deep copy of the header.
func (hdr *To) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &To{hdr.addressField.copy()}
	hdr2.init(KindTo)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *To) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *To) bool { return a.equal(&b.addressField) })
}
