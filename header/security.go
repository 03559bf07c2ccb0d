package header

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/util"
)

// wellKnownAuthParams are the auth parameters that are normalized and ordered on render.
var wellKnownAuthParams = []string{
	"realm", "nonce", "algorithm", "opaque", "qop", "uri", "username",
	"response", "cnonce", "nc", "domain", "stale", "nextnonce", "rspauth",
}

// authFamily describes the rendering rules of challenges or credentials.
type authFamily struct {
	// order is the full render sequence of the well-known parameters.
	order []string
	// quoted lists well-known parameters rendered as quoted strings.
	quoted []string
}

func newAuthFamily(first, quoted []string) *authFamily {
	order := slices.Clone(first)
	for _, n := range wellKnownAuthParams {
		if !slices.Contains(order, n) {
			order = append(order, n)
		}
	}
	return &authFamily{order: order, quoted: quoted}
}

var (
	// challengeFamily renders realm, nonce, algorithm, opaque, qop, domain, stale, then extras.
	challengeFamily = newAuthFamily(
		[]string{"realm", "nonce", "algorithm", "opaque", "qop", "domain", "stale"},
		[]string{"realm", "domain", "nonce", "opaque", "qop", "nextnonce", "rspauth"},
	)
	// credentialsFamily renders username first, then realm, algorithm, qop, nonce, uri,
	// response, cnonce, nc, opaque and extras. The challenge order would put nonce before
	// algorithm; credentials instead follow the layout of RFC 3261 Authorization examples,
	// so username leads and qop is written bare.
	credentialsFamily = newAuthFamily(
		[]string{"username", "realm", "algorithm", "qop", "nonce", "uri", "response", "cnonce", "nc", "opaque"},
		[]string{"username", "realm", "nonce", "uri", "response", "cnonce", "opaque", "nextnonce", "rspauth"},
	)
)

func isWellKnownAuthParam(name string) bool { return util.IndexFold(wellKnownAuthParams, name) >= 0 }

// normalize lower-cases well-known names and applies the family quoting.
// Unknown parameters are kept verbatim.
func (fam *authFamily) normalize(p Param) Param {
	if !isWellKnownAuthParam(p.Name) {
		return p
	}
	p.Name = util.LCase(p.Name)
	p.Value = fam.encode(p.Name, grammar.Unquote(p.Value))
	return p
}

func (fam *authFamily) encode(name, val string) string {
	if slices.Contains(fam.quoted, name) {
		return grammar.Quote(val)
	}
	return val
}

// SecurityValue is an authentication scheme followed either by a token68 blob
// or by comma-separated auth parameters: `Digest realm="atlanta.com", nonce="84a4cc6f"`.
type SecurityValue struct {
	rc      *renderCache
	fam     *authFamily
	scheme  string
	token68 string
	auth    Params
}

// Scheme returns the authentication scheme, e.g. "Digest".
func (v *SecurityValue) Scheme() string { return v.scheme }

// SetScheme sets the authentication scheme. A value that is not a token is rejected with [ErrInvalidCharacter].
func (v *SecurityValue) SetScheme(scheme string) error {
	if !grammar.IsToken(scheme) {
		return errtrace.Wrap(newInvalidCharErr("scheme %q is not a token", scheme))
	}
	v.scheme = scheme
	v.rc.invalidate()
	return nil
}

// Token68 returns the token68 blob used by schemes like Basic.
func (v *SecurityValue) Token68() string { return v.token68 }

// SetToken68 sets the token68 blob. It removes all auth parameters.
func (v *SecurityValue) SetToken68(tok string) error {
	if tok != "" && !grammar.IsToken68(tok) {
		return errtrace.Wrap(newInvalidCharErr("%q is not a token68", tok))
	}
	v.token68, v.auth = tok, nil
	v.rc.invalidate()
	return nil
}

// AuthParam returns the unquoted value of the auth parameter.
func (v *SecurityValue) AuthParam(name string) (string, bool) {
	val, ok := v.auth.Get(name)
	if !ok {
		return "", false
	}
	return grammar.Unquote(val), true
}

// SetAuthParam sets the unquoted value of the auth parameter.
// Well-known parameters are quoted according to the header family,
// other values are quoted when they are not valid bare parameter values.
func (v *SecurityValue) SetAuthParam(name, val string) error {
	p, err := v.authParam(name, val)
	if err != nil {
		return errtrace.Wrap(err)
	}
	v.auth = v.auth.Set(p.Name, p.Value)
	v.token68 = ""
	v.rc.invalidate()
	return nil
}

// RemoveAuthParam removes the auth parameter.
func (v *SecurityValue) RemoveAuthParam(name string) {
	v.auth = v.auth.Del(name)
	v.rc.invalidate()
}

func (v *SecurityValue) authParam(name, val string) (Param, error) {
	if !grammar.IsToken(name) {
		return Param{}, errtrace.Wrap(newInvalidCharErr("auth parameter name %q is not a token", name))
	}
	if !grammar.IsText(val) {
		return Param{}, errtrace.Wrap(newInvalidCharErr("auth parameter %q value %q", name, val))
	}
	if isWellKnownAuthParam(name) {
		return v.fam.normalize(Param{name, val}), nil
	}
	if !isParamValue(val) {
		val = grammar.Quote(val)
	}
	return Param{name, val}, nil
}

// Realm returns the "realm" auth parameter.
func (v *SecurityValue) Realm() string { return v.authParamValue("realm") }

// Nonce returns the "nonce" auth parameter.
func (v *SecurityValue) Nonce() string { return v.authParamValue("nonce") }

// Algorithm returns the "algorithm" auth parameter.
func (v *SecurityValue) Algorithm() string { return v.authParamValue("algorithm") }

// QOP returns the "qop" auth parameter.
func (v *SecurityValue) QOP() string { return v.authParamValue("qop") }

// Opaque returns the "opaque" auth parameter.
func (v *SecurityValue) Opaque() string { return v.authParamValue("opaque") }

// Username returns the "username" auth parameter.
func (v *SecurityValue) Username() string { return v.authParamValue("username") }

func (v *SecurityValue) authParamValue(name string) string {
	val, _ := v.AuthParam(name)
	return val
}

func (v *SecurityValue) resetSecurity() { v.scheme, v.token68, v.auth = "", "", nil }

func (v *SecurityValue) parseSecurity(s string) error {
	scheme, rest := grammar.ScanToken(s)
	if scheme == "" {
		return errtrace.Wrap(newMalformedErr("missing auth scheme in %q", s))
	}
	if rest != "" && !grammar.IsWSP(rest[0]) {
		return errtrace.Wrap(newMalformedErr("invalid auth scheme in %q", s))
	}
	v.scheme = scheme

	segs := grammar.Split(rest, ',')
	if len(segs) == 1 && grammar.IsToken68(segs[0]) {
		v.token68 = segs[0]
		return nil
	}
	for _, seg := range segs {
		p, ok := parseParam(seg)
		if !ok {
			continue
		}
		v.auth = append(v.auth, v.fam.normalize(p))
	}
	return nil
}

func (v *SecurityValue) renderSecurityTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(v.scheme)
	switch {
	case v.token68 != "":
		cw.WriteString(" ")
		cw.WriteString(v.token68)
	case len(v.auth) > 0:
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(v.auth.Sorted(v.fam.order).renderTo(w, " ", ", ", ParamCaseAsIs))
		})
	}
	return errtrace.Wrap2(cw.Result())
}

func (v *SecurityValue) securityEqual(o *SecurityValue) bool {
	return grammar.EqualToken(v.scheme, o.scheme) &&
		v.token68 == o.token68 &&
		v.auth.Equal(o.auth)
}

func (v *SecurityValue) securityValid() bool {
	return grammar.IsToken(v.scheme) && v.auth.IsValid()
}

// securityField is the base of challenge and credentials headers.
// Auth parameters are the header parameters.
type securityField struct {
	field
	SecurityValue
}

func (f *securityField) init(kind Kind, fam *authFamily) {
	f.bind(kind, f)
	f.SecurityValue.rc = &f.cache
	f.fam = fam
}

func (f *securityField) copy() securityField {
	sv := f.SecurityValue
	sv.auth = sv.auth.Clone()
	return securityField{field: f.field.clone(), SecurityValue: sv}
}

func (f *securityField) resetValue() { f.resetSecurity() }

func (f *securityField) parseValue(s string) error { return errtrace.Wrap(f.parseSecurity(s)) }

func (f *securityField) renderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(f.renderSecurityTo(w))
}

func (f *securityField) equal(o *securityField) bool {
	return f.kind == o.kind && f.securityEqual(&o.SecurityValue)
}

// IsValid reports whether the scheme is set and all auth parameters are valid.
func (f *securityField) IsValid() bool { return f.securityValid() }

// Param returns the raw value of the auth parameter.
func (f *securityField) Param(name string) (string, bool) { return f.auth.Get(name) }

// Params returns a copy of the auth parameters.
func (f *securityField) Params() Params { return f.auth.Clone() }

// AddParameter appends the auth parameter.
// Well-known parameters are normalized, other values must be tokens or quoted strings.
func (f *securityField) AddParameter(name, value string) error {
	if err := validateParam(name, value); err != nil {
		return errtrace.Wrap(err)
	}
	f.auth = f.auth.Append(name, value)
	f.auth[len(f.auth)-1] = f.fam.normalize(f.auth[len(f.auth)-1])
	f.token68 = ""
	f.invalidate()
	return nil
}

// SetParameter replaces or appends the auth parameter.
func (f *securityField) SetParameter(name, value string) error {
	if err := validateParam(name, value); err != nil {
		return errtrace.Wrap(err)
	}
	p := f.fam.normalize(Param{name, value})
	f.auth = f.auth.Set(p.Name, p.Value)
	f.token68 = ""
	f.invalidate()
	return nil
}

// RemoveParameter removes the auth parameter.
func (f *securityField) RemoveParameter(name string) { f.RemoveAuthParam(name) }

// Authorization represents one credentials element of the Authorization header field.
type Authorization struct {
	securityField
}

// NewAuthorization returns an unset Authorization header.
func NewAuthorization() *Authorization {
	hdr := &Authorization{}
	hdr.init(KindAuthorization, credentialsFamily)
	return hdr
}

// ParseAuthorization parses one Authorization element from text.
func ParseAuthorization(s string) (*Authorization, error) {
	return errtrace.Wrap2(parseAs(NewAuthorization(), s))
}

// Clone returns a deep copy of the header.
func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Authorization{hdr.securityField.copy()}
	hdr2.init(KindAuthorization, credentialsFamily)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Authorization) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Authorization) bool { return a.equal(&b.securityField) })
}

// ProxyAuthorization represents one credentials element of the Proxy-Authorization header field.
type ProxyAuthorization struct {
	securityField
}

// NewProxyAuthorization returns an unset Proxy-Authorization header.
func NewProxyAuthorization() *ProxyAuthorization {
	hdr := &ProxyAuthorization{}
	hdr.init(KindProxyAuthorization, credentialsFamily)
	return hdr
}

// ParseProxyAuthorization parses one Proxy-Authorization element from text.
func ParseProxyAuthorization(s string) (*ProxyAuthorization, error) {
	return errtrace.Wrap2(parseAs(NewProxyAuthorization(), s))
}

// Clone returns a deep copy of the header.
func (hdr *ProxyAuthorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ProxyAuthorization{hdr.securityField.copy()}
	hdr2.init(KindProxyAuthorization, credentialsFamily)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthorization) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ProxyAuthorization) bool { return a.equal(&b.securityField) })
}

// WWWAuthenticate represents one challenge of the WWW-Authenticate header field.
type WWWAuthenticate struct {
	securityField
}

// NewWWWAuthenticate returns an unset WWW-Authenticate header.
func NewWWWAuthenticate() *WWWAuthenticate {
	hdr := &WWWAuthenticate{}
	hdr.init(KindWWWAuthenticate, challengeFamily)
	return hdr
}

// ParseWWWAuthenticate parses one WWW-Authenticate challenge from text.
func ParseWWWAuthenticate(s string) (*WWWAuthenticate, error) {
	return errtrace.Wrap2(parseAs(NewWWWAuthenticate(), s))
}

// Stale reports whether the "stale" auth parameter is true.
func (hdr *WWWAuthenticate) Stale() bool { return util.EqFold(hdr.authParamValue("stale"), "true") }

// Clone returns a deep copy of the header.
func (hdr *WWWAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &WWWAuthenticate{hdr.securityField.copy()}
	hdr2.init(KindWWWAuthenticate, challengeFamily)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *WWWAuthenticate) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *WWWAuthenticate) bool { return a.equal(&b.securityField) })
}

// ProxyAuthenticate represents one challenge of the Proxy-Authenticate header field.
type ProxyAuthenticate struct {
	securityField
}

// NewProxyAuthenticate returns an unset Proxy-Authenticate header.
func NewProxyAuthenticate() *ProxyAuthenticate {
	hdr := &ProxyAuthenticate{}
	hdr.init(KindProxyAuthenticate, challengeFamily)
	return hdr
}

// ParseProxyAuthenticate parses one Proxy-Authenticate challenge from text.
func ParseProxyAuthenticate(s string) (*ProxyAuthenticate, error) {
	return errtrace.Wrap2(parseAs(NewProxyAuthenticate(), s))
}

// Clone returns a deep copy of the header.
func (hdr *ProxyAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ProxyAuthenticate{hdr.securityField.copy()}
	hdr2.init(KindProxyAuthenticate, challengeFamily)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthenticate) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ProxyAuthenticate) bool { return a.equal(&b.securityField) })
}
