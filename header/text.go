package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
)

// TextValue is a free UTF-8 text value.
type TextValue struct {
	rc   *renderCache
	text string
}

// Text returns the text.
func (v *TextValue) Text() string { return v.text }

// SetText sets the text. Control characters are rejected with [ErrInvalidCharacter].
func (v *TextValue) SetText(s string) error {
	if !grammar.IsText(s) {
		return errtrace.Wrap(newInvalidCharErr("text %q", s))
	}
	v.text = s
	v.rc.invalidate()
	return nil
}

func (v *TextValue) resetText() { v.text = "" }

func (v *TextValue) parseText(s string) error {
	if !grammar.IsText(s) {
		return errtrace.Wrap(newMalformedErr("text %q", s))
	}
	v.text = s
	return nil
}

func (v *TextValue) renderTextTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, v.text))
}

func (v *TextValue) textEqual(o *TextValue) bool { return v.text == o.text }

func (v *TextValue) textValid() bool { return v.text != "" && grammar.IsText(v.text) }

// textField is the base of headers with a free text value.
// The whole value is the text, so these headers carry no parameters.
type textField struct {
	field
	TextValue
}

func (f *textField) init(kind Kind) {
	f.bind(kind, f)
	f.TextValue.rc = &f.cache
}

func (f *textField) copy() textField {
	return textField{field: f.field.clone(), TextValue: f.TextValue}
}

func (f *textField) resetValue() { f.resetText() }

func (f *textField) parseValue(s string) error { return errtrace.Wrap(f.parseText(s)) }

func (f *textField) renderValueTo(w io.Writer) (int, error) { return errtrace.Wrap2(f.renderTextTo(w)) }

// AddParameter always fails with [ErrInvalidCharacter]: a ";" in the value is part of the text.
func (f *textField) AddParameter(name, _ string) error {
	return errtrace.Wrap(newInvalidCharErr("%s header does not take parameter %q", f.name, name))
}

// SetParameter always fails with [ErrInvalidCharacter].
func (f *textField) SetParameter(name, _ string) error {
	return errtrace.Wrap(newInvalidCharErr("%s header does not take parameter %q", f.name, name))
}

func (f *textField) equal(o *textField) bool {
	return f.field.equal(&o.field) && f.textEqual(&o.TextValue)
}

// IsValid reports whether the text is not empty.
func (f *textField) IsValid() bool { return f.textValid() }

// Subject represents the Subject header field.
type Subject struct {
	textField
}

// NewSubject returns an empty Subject header.
func NewSubject() *Subject {
	hdr := &Subject{}
	hdr.init(KindSubject)
	return hdr
}

// ParseSubject parses the Subject header from text.
func ParseSubject(s string) (*Subject, error) { return errtrace.Wrap2(parseAs(NewSubject(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Subject) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Subject{hdr.textField.copy()}
	hdr2.init(KindSubject)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Subject) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Subject) bool { return a.equal(&b.textField) })
}

// Organization represents the Organization header field.
type Organization struct {
	textField
}

// NewOrganization returns an empty Organization header.
func NewOrganization() *Organization {
	hdr := &Organization{}
	hdr.init(KindOrganization)
	return hdr
}

// ParseOrganization parses the Organization header from text.
func ParseOrganization(s string) (*Organization, error) {
	return errtrace.Wrap2(parseAs(NewOrganization(), s))
}

// Clone returns a deep copy of the header.
func (hdr *Organization) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Organization{hdr.textField.copy()}
	hdr2.init(KindOrganization)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Organization) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Organization) bool { return a.equal(&b.textField) })
}

// UserAgent represents the User-Agent header field.
type UserAgent struct {
	textField
}

// NewUserAgent returns an empty User-Agent header.
func NewUserAgent() *UserAgent {
	hdr := &UserAgent{}
	hdr.init(KindUserAgent)
	return hdr
}

// ParseUserAgent parses the User-Agent header from text.
func ParseUserAgent(s string) (*UserAgent, error) { return errtrace.Wrap2(parseAs(NewUserAgent(), s)) }

// Clone returns a deep copy of the header.
func (hdr *UserAgent) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &UserAgent{hdr.textField.copy()}
	hdr2.init(KindUserAgent)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *UserAgent) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *UserAgent) bool { return a.equal(&b.textField) })
}

// Server represents the Server header field.
type Server struct {
	textField
}

// NewServer returns an empty Server header.
func NewServer() *Server {
	hdr := &Server{}
	hdr.init(KindServer)
	return hdr
}

// ParseServer parses the Server header from text.
func ParseServer(s string) (*Server, error) { return errtrace.Wrap2(parseAs(NewServer(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Server) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Server{hdr.textField.copy()}
	hdr2.init(KindServer)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Server) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Server) bool { return a.equal(&b.textField) })
}
