package header

import "braces.dev/errtrace"

// Allow represents one method of the Allow header field, e.g. "INVITE".
type Allow struct {
	optionField
}

// NewAllow returns an unset Allow header.
func NewAllow() *Allow {
	hdr := &Allow{}
	hdr.init(KindAllow)
	return hdr
}

// ParseAllow parses the Allow header from text.
func ParseAllow(s string) (*Allow, error) { return errtrace.Wrap2(parseAs(NewAllow(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Allow) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Allow{hdr.optionField.copy()}
	hdr2.init(KindAllow)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Allow) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Allow) bool { return a.equal(&b.optionField) })
}

// Supported represents one option tag of the Supported header field.
type Supported struct {
	optionField
}

// NewSupported returns an unset Supported header.
func NewSupported() *Supported {
	hdr := &Supported{}
	hdr.init(KindSupported)
	return hdr
}

// ParseSupported parses the Supported header from text.
func ParseSupported(s string) (*Supported, error) { return errtrace.Wrap2(parseAs(NewSupported(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Supported) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Supported{hdr.optionField.copy()}
	hdr2.init(KindSupported)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Supported) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Supported) bool { return a.equal(&b.optionField) })
}

// Require represents one option tag of the Require header field.
type Require struct {
	optionField
}

// NewRequire returns an unset Require header.
func NewRequire() *Require {
	hdr := &Require{}
	hdr.init(KindRequire)
	return hdr
}

// ParseRequire parses the Require header from text.
func ParseRequire(s string) (*Require, error) { return errtrace.Wrap2(parseAs(NewRequire(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Require) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Require{hdr.optionField.copy()}
	hdr2.init(KindRequire)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Require) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Require) bool { return a.equal(&b.optionField) })
}

// ProxyRequire represents one option tag of the Proxy-Require header field.
type ProxyRequire struct {
	optionField
}

// NewProxyRequire returns an unset Proxy-Require header.
func NewProxyRequire() *ProxyRequire {
	hdr := &ProxyRequire{}
	hdr.init(KindProxyRequire)
	return hdr
}

// ParseProxyRequire parses the Proxy-Require header from text.
func ParseProxyRequire(s string) (*ProxyRequire, error) { return errtrace.Wrap2(parseAs(NewProxyRequire(), s)) }

// Clone returns a deep copy of the header.
func (hdr *ProxyRequire) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ProxyRequire{hdr.optionField.copy()}
	hdr2.init(KindProxyRequire)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ProxyRequire) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ProxyRequire) bool { return a.equal(&b.optionField) })
}

// Unsupported represents one option tag of the Unsupported header field.
type Unsupported struct {
	optionField
}

// NewUnsupported returns an unset Unsupported header.
func NewUnsupported() *Unsupported {
	hdr := &Unsupported{}
	hdr.init(KindUnsupported)
	return hdr
}

// ParseUnsupported parses the Unsupported header from text.
func ParseUnsupported(s string) (*Unsupported, error) { return errtrace.Wrap2(parseAs(NewUnsupported(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Unsupported) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Unsupported{hdr.optionField.copy()}
	hdr2.init(KindUnsupported)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Unsupported) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Unsupported) bool { return a.equal(&b.optionField) })
}

// ContentEncoding represents one content coding of the Content-Encoding header field.
type ContentEncoding struct {
	optionField
}

// NewContentEncoding returns an unset Content-Encoding header.
func NewContentEncoding() *ContentEncoding {
	hdr := &ContentEncoding{}
	hdr.init(KindContentEncoding)
	return hdr
}

// ParseContentEncoding parses the Content-Encoding header from text.
func ParseContentEncoding(s string) (*ContentEncoding, error) { return errtrace.Wrap2(parseAs(NewContentEncoding(), s)) }

// Clone returns a deep copy of the header.
func (hdr *ContentEncoding) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ContentEncoding{hdr.optionField.copy()}
	hdr2.init(KindContentEncoding)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ContentEncoding) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ContentEncoding) bool { return a.equal(&b.optionField) })
}

// ContentLanguage represents one language tag of the Content-Language header field.
type ContentLanguage struct {
	optionField
}

// NewContentLanguage returns an unset Content-Language header.
func NewContentLanguage() *ContentLanguage {
	hdr := &ContentLanguage{}
	hdr.init(KindContentLanguage)
	return hdr
}

// ParseContentLanguage parses the Content-Language header from text.
func ParseContentLanguage(s string) (*ContentLanguage, error) { return errtrace.Wrap2(parseAs(NewContentLanguage(), s)) }

// Clone returns a deep copy of the header.
func (hdr *ContentLanguage) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ContentLanguage{hdr.optionField.copy()}
	hdr2.init(KindContentLanguage)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ContentLanguage) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ContentLanguage) bool { return a.equal(&b.optionField) })
}

// ContentDisposition represents the Content-Disposition header field: "session;handling=optional".
type ContentDisposition struct {
	optionField
}

// NewContentDisposition returns an unset Content-Disposition header.
func NewContentDisposition() *ContentDisposition {
	hdr := &ContentDisposition{}
	hdr.init(KindContentDisposition)
	return hdr
}

// ParseContentDisposition parses the Content-Disposition header from text.
func ParseContentDisposition(s string) (*ContentDisposition, error) { return errtrace.Wrap2(parseAs(NewContentDisposition(), s)) }

// Clone returns a deep copy of the header.
func (hdr *ContentDisposition) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ContentDisposition{hdr.optionField.copy()}
	hdr2.init(KindContentDisposition)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ContentDisposition) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ContentDisposition) bool { return a.equal(&b.optionField) })
}

// Handling returns the value of the "handling" parameter.
func (hdr *ContentDisposition) Handling() string {
	v, _ := hdr.Param("handling")
	return v
}

// Priority represents the Priority header field, e.g. "urgent".
type Priority struct {
	optionField
}

// NewPriority returns an unset Priority header.
func NewPriority() *Priority {
	hdr := &Priority{}
	hdr.init(KindPriority)
	return hdr
}

// ParsePriority parses the Priority header from text.
func ParsePriority(s string) (*Priority, error) { return errtrace.Wrap2(parseAs(NewPriority(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Priority) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Priority{hdr.optionField.copy()}
	hdr2.init(KindPriority)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Priority) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Priority) bool { return a.equal(&b.optionField) })
}

// AcceptEncoding represents one coding of the Accept-Encoding header field: "gzip;q=0.5".
type AcceptEncoding struct {
	optionQField
}

// NewAcceptEncoding returns an unset Accept-Encoding header.
func NewAcceptEncoding() *AcceptEncoding {
	hdr := &AcceptEncoding{}
	hdr.init(KindAcceptEncoding)
	return hdr
}

// ParseAcceptEncoding parses the Accept-Encoding header from text.
func ParseAcceptEncoding(s string) (*AcceptEncoding, error) { return errtrace.Wrap2(parseAs(NewAcceptEncoding(), s)) }

// Clone returns a deep copy of the header.
func (hdr *AcceptEncoding) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &AcceptEncoding{hdr.optionQField.copy()}
	hdr2.init(KindAcceptEncoding)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *AcceptEncoding) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *AcceptEncoding) bool { return a.equal(&b.optionQField) })
}

// AcceptLanguage represents one language range of the Accept-Language header field: "da;q=0.8".
type AcceptLanguage struct {
	optionQField
}

// NewAcceptLanguage returns an unset Accept-Language header.
func NewAcceptLanguage() *AcceptLanguage {
	hdr := &AcceptLanguage{}
	hdr.init(KindAcceptLanguage)
	return hdr
}

// ParseAcceptLanguage parses the Accept-Language header from text.
func ParseAcceptLanguage(s string) (*AcceptLanguage, error) { return errtrace.Wrap2(parseAs(NewAcceptLanguage(), s)) }

// Clone returns a deep copy of the header.
func (hdr *AcceptLanguage) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &AcceptLanguage{hdr.optionQField.copy()}
	hdr2.init(KindAcceptLanguage)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *AcceptLanguage) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *AcceptLanguage) bool { return a.equal(&b.optionQField) })
}
