package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/util"
)

// MediaTypeValue is a "type/subtype" media type or range. Both halves are stored in lower case.
type MediaTypeValue struct {
	rc       *renderCache
	typ, sub string
}

// Type returns the top-level media type, e.g. "application".
func (v *MediaTypeValue) Type() string { return v.typ }

// Subtype returns the media subtype, e.g. "sdp".
func (v *MediaTypeValue) Subtype() string { return v.sub }

// MediaType returns "type/subtype" or an empty string if the type is not set.
func (v *MediaTypeValue) MediaType() string {
	if v.typ == "" && v.sub == "" {
		return ""
	}
	return v.typ + "/" + v.sub
}

// SetType sets the top-level media type. A value that is not a token is rejected with [ErrInvalidCharacter].
func (v *MediaTypeValue) SetType(typ string) error {
	if !grammar.IsToken(typ) {
		return errtrace.Wrap(newInvalidCharErr("media type %q is not a token", typ))
	}
	v.typ = util.LCase(typ)
	v.rc.invalidate()
	return nil
}

// SetSubtype sets the media subtype. A value that is not a token is rejected with [ErrInvalidCharacter].
func (v *MediaTypeValue) SetSubtype(sub string) error {
	if !grammar.IsToken(sub) {
		return errtrace.Wrap(newInvalidCharErr("media subtype %q is not a token", sub))
	}
	v.sub = util.LCase(sub)
	v.rc.invalidate()
	return nil
}

// SetMediaType sets both halves at once. On failure the value is not changed.
func (v *MediaTypeValue) SetMediaType(typ, sub string) error {
	if !grammar.IsToken(typ) || !grammar.IsToken(sub) {
		return errtrace.Wrap(newInvalidCharErr("media type %q is not a token pair", typ+"/"+sub))
	}
	v.typ, v.sub = util.LCase(typ), util.LCase(sub)
	v.rc.invalidate()
	return nil
}

func (v *MediaTypeValue) resetMediaType() { v.typ, v.sub = "", "" }

func (v *MediaTypeValue) parseMediaType(s string) error {
	typ, sub, ok := strings.Cut(s, "/")
	typ, sub = grammar.TrimLWS(typ), grammar.TrimLWS(sub)
	if !ok || !grammar.IsToken(typ) || !grammar.IsToken(sub) {
		return errtrace.Wrap(newMalformedErr("invalid media type %q", s))
	}
	v.typ, v.sub = util.LCase(typ), util.LCase(sub)
	return nil
}

func (v *MediaTypeValue) renderMediaTypeTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, v.MediaType()))
}

func (v *MediaTypeValue) mediaTypeEqual(o *MediaTypeValue) bool {
	return v.typ == o.typ && v.sub == o.sub
}

func (v *MediaTypeValue) mediaTypeValid() bool {
	return grammar.IsToken(v.typ) && grammar.IsToken(v.sub)
}

// mediaField is the base of media type headers: "type/subtype;param=value".
// Parameter names are rendered in lower case.
type mediaField struct {
	field
	MediaTypeValue
}

func (f *mediaField) init(kind Kind) {
	f.bind(kind, f)
	f.MediaTypeValue.rc = &f.cache
	f.pcase = ParamCaseLower
}

func (f *mediaField) copy() mediaField {
	return mediaField{field: f.field.clone(), MediaTypeValue: f.MediaTypeValue}
}

func (f *mediaField) resetValue() { f.resetMediaType() }

func (f *mediaField) parseValue(s string) error {
	head, ps := splitParams(s)
	if err := f.parseMediaType(head); err != nil {
		return errtrace.Wrap(err)
	}
	f.params = ps
	return nil
}

func (f *mediaField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderMediaTypeTo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

func (f *mediaField) equal(o *mediaField) bool {
	return f.field.equal(&o.field) && f.mediaTypeEqual(&o.MediaTypeValue)
}

// IsValid reports whether both halves of the media type are set.
func (f *mediaField) IsValid() bool { return f.mediaTypeValid() && f.paramsValid() }

// ContentType represents the Content-Type header field.
type ContentType struct {
	mediaField
}

// NewContentType returns an unset Content-Type header.
func NewContentType() *ContentType {
	hdr := &ContentType{}
	hdr.init(KindContentType)
	return hdr
}

// ParseContentType parses the Content-Type header from text.
func ParseContentType(s string) (*ContentType, error) {
	return errtrace.Wrap2(parseAs(NewContentType(), s))
}

// Clone returns a deep copy of the header.
func (hdr *ContentType) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ContentType{hdr.mediaField.copy()}
	hdr2.init(KindContentType)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ContentType) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ContentType) bool { return a.equal(&b.mediaField) })
}

// Accept represents one media range of the Accept header field: "type/subtype;params;q=0.5".
type Accept struct {
	mediaField
	QValue
}

// NewAccept returns an unset Accept header.
func NewAccept() *Accept {
	hdr := &Accept{}
	hdr.init()
	return hdr
}

// ParseAccept parses one Accept media range from text.
func ParseAccept(s string) (*Accept, error) { return errtrace.Wrap2(parseAs(NewAccept(), s)) }

func (hdr *Accept) init() {
	hdr.mediaField.init(KindAccept)
	hdr.bind(KindAccept, hdr)
	hdr.QValue.rc = &hdr.cache
}

func (hdr *Accept) resetValue() {
	hdr.resetMediaType()
	hdr.resetQ()
}

func (hdr *Accept) parseValue(s string) error {
	if err := hdr.mediaField.parseValue(s); err != nil {
		return errtrace.Wrap(err)
	}
	ps, err := hdr.takeQ(hdr.params)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.params = ps
	return nil
}

func (hdr *Accept) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(hdr.renderMediaTypeTo)
	cw.Call(hdr.renderParamsTo)
	cw.Call(hdr.renderQTo)
	return errtrace.Wrap2(cw.Result())
}

// Param returns the value of the parameter with the given name.
// The "q" parameter is reported from the weight.
func (hdr *Accept) Param(name string) (string, bool) {
	if isQParam(name) {
		return hdr.qParam()
	}
	return hdr.field.Param(name)
}

// AddParameter appends a media range parameter. The "q" parameter sets the weight through [QValue.SetQ].
func (hdr *Accept) AddParameter(name, value string) error {
	if isQParam(name) {
		return errtrace.Wrap(hdr.setQParam(value))
	}
	return errtrace.Wrap(hdr.field.AddParameter(name, value))
}

// SetParameter replaces or appends a media range parameter. The "q" parameter sets the weight through [QValue.SetQ].
func (hdr *Accept) SetParameter(name, value string) error {
	if isQParam(name) {
		return errtrace.Wrap(hdr.setQParam(value))
	}
	return errtrace.Wrap(hdr.field.SetParameter(name, value))
}

// RemoveParameter removes all parameters with the given name. The "q" parameter unsets the weight.
func (hdr *Accept) RemoveParameter(name string) {
	if isQParam(name) {
		hdr.UnsetQ()
		return
	}
	hdr.field.RemoveParameter(name)
}

// Clone returns a deep copy of the header.
func (hdr *Accept) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Accept{mediaField: hdr.mediaField.copy(), QValue: hdr.QValue}
	hdr2.init()
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Accept) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Accept) bool {
		return a.mediaField.equal(&b.mediaField) && a.qEqual(&b.QValue)
	})
}
