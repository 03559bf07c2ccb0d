package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/uri"
)

// AbsoluteURIValue is an absolute URI rendered in angle brackets.
type AbsoluteURIValue struct {
	rc  *renderCache
	uri *uri.URI
}

// URI returns a copy of the URI or nil if it is not set.
func (v *AbsoluteURIValue) URI() *uri.URI { return v.uri.Clone() }

// SetURI sets the URI. A nil or relative URI is rejected with [ErrProtocol].
func (v *AbsoluteURIValue) SetURI(u *uri.URI) error {
	if u == nil {
		return errtrace.Wrap(newProtocolErr("URI is required"))
	}
	if !u.IsAbs() {
		return errtrace.Wrap(newProtocolErr("URI %q is not absolute", u.String()))
	}
	v.uri = u.Clone()
	v.uri.Normalize()
	v.rc.invalidate()
	return nil
}

// SetURIString parses and sets the URI.
func (v *AbsoluteURIValue) SetURIString(s string) error {
	if grammar.TrimLWS(s) == "" {
		return errtrace.Wrap(newProtocolErr("URI is required"))
	}
	u, err := uri.Parse(s)
	if err != nil {
		return errtrace.Wrap(newInvalidCharErr(err))
	}
	return errtrace.Wrap(v.SetURI(u))
}

func (v *AbsoluteURIValue) resetURI() { v.uri = nil }

// parseURI parses "<uri>" or a bare URI.
func (v *AbsoluteURIValue) parseURI(s string) error {
	if len(s) > 0 && s[0] == '<' {
		val, _, err := grammar.ScanAngle(s)
		if err != nil {
			return errtrace.Wrap(newMalformedErr(err))
		}
		s = val
	}
	u, err := uri.Parse(s)
	if err != nil {
		return errtrace.Wrap(newMalformedErr(err))
	}
	v.uri = u
	return nil
}

func (v *AbsoluteURIValue) renderURITo(w io.Writer) (num int, err error) {
	if v.uri == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("<")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(v.uri.RenderTo(w, nil)) })
	cw.WriteString(">")
	return errtrace.Wrap2(cw.Result())
}

func (v *AbsoluteURIValue) uriEqual(o *AbsoluteURIValue) bool {
	if v.uri == nil || o.uri == nil {
		return v.uri == o.uri
	}
	return v.uri.Equal(o.uri)
}

func (v *AbsoluteURIValue) uriValid() bool { return v.uri.IsValid() }

// uriField is the base of headers carrying "<absoluteURI>;param=value".
type uriField struct {
	field
	AbsoluteURIValue
}

func (f *uriField) init(kind Kind) {
	f.bind(kind, f)
	f.AbsoluteURIValue.rc = &f.cache
}

func (f *uriField) copy() uriField {
	return uriField{field: f.field.clone(), AbsoluteURIValue: AbsoluteURIValue{uri: f.uri.Clone()}}
}

func (f *uriField) resetValue() { f.resetURI() }

func (f *uriField) parseValue(s string) error {
	head, ps := splitParams(s)
	if err := f.parseURI(head); err != nil {
		return errtrace.Wrap(err)
	}
	f.params = ps
	return nil
}

func (f *uriField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderURITo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

func (f *uriField) equal(o *uriField) bool {
	return f.field.equal(&o.field) && f.uriEqual(&o.AbsoluteURIValue)
}

// IsValid reports whether the URI is set and absolute.
func (f *uriField) IsValid() bool { return f.uriValid() && f.paramsValid() }

// AlertInfo represents one element of the Alert-Info header field.
// It points to an alternative ring tone: "<http://www.example.com/sounds/moo.wav>".
type AlertInfo struct {
	uriField
}

// NewAlertInfo returns an unset Alert-Info header.
func NewAlertInfo() *AlertInfo {
	hdr := &AlertInfo{}
	hdr.init(KindAlertInfo)
	return hdr
}

// ParseAlertInfo parses one Alert-Info element from text.
func ParseAlertInfo(s string) (*AlertInfo, error) { return errtrace.Wrap2(parseAs(NewAlertInfo(), s)) }

// Clone returns a deep copy of the header.
func (hdr *AlertInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &AlertInfo{hdr.uriField.copy()}
	hdr2.init(KindAlertInfo)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *AlertInfo) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *AlertInfo) bool { return a.equal(&b.uriField) })
}

// ErrorInfo represents one element of the Error-Info header field.
type ErrorInfo struct {
	uriField
}

// NewErrorInfo returns an unset Error-Info header.
func NewErrorInfo() *ErrorInfo {
	hdr := &ErrorInfo{}
	hdr.init(KindErrorInfo)
	return hdr
}

// ParseErrorInfo parses one Error-Info element from text.
func ParseErrorInfo(s string) (*ErrorInfo, error) { return errtrace.Wrap2(parseAs(NewErrorInfo(), s)) }

// Clone returns a deep copy of the header.
func (hdr *ErrorInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ErrorInfo{hdr.uriField.copy()}
	hdr2.init(KindErrorInfo)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ErrorInfo) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ErrorInfo) bool { return a.equal(&b.uriField) })
}

// CallInfo represents one element of the Call-Info header field:
// "<http://wwww.example.com/alice/photo.jpg>;purpose=icon".
type CallInfo struct {
	uriField
}

// NewCallInfo returns an unset Call-Info header.
func NewCallInfo() *CallInfo {
	hdr := &CallInfo{}
	hdr.init(KindCallInfo)
	return hdr
}

// ParseCallInfo parses one Call-Info element from text.
func ParseCallInfo(s string) (*CallInfo, error) { return errtrace.Wrap2(parseAs(NewCallInfo(), s)) }

// Purpose returns the value of the "purpose" parameter.
func (hdr *CallInfo) Purpose() string {
	v, _ := hdr.Param("purpose")
	return v
}

// SetPurpose sets the "purpose" parameter, e.g. "icon", "info" or "card".
func (hdr *CallInfo) SetPurpose(purpose string) error {
	if !grammar.IsToken(purpose) {
		return errtrace.Wrap(newInvalidCharErr("purpose %q is not a token", purpose))
	}
	return errtrace.Wrap(hdr.SetParameter("purpose", purpose))
}

// Clone returns a deep copy of the header.
func (hdr *CallInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &CallInfo{hdr.uriField.copy()}
	hdr2.init(KindCallInfo)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *CallInfo) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *CallInfo) bool { return a.equal(&b.uriField) })
}
