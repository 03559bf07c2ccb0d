package header

import (
	"slices"
)

// Kind identifies a concrete header type.
type Kind int

const (
	KindExtension Kind = iota
	KindMaxForwards
	KindFrom
	KindTo
	KindCallID
	KindExpires
	KindMinExpires
	KindRetryAfter
	KindAllow
	KindSupported
	KindRequire
	KindProxyRequire
	KindUnsupported
	KindAccept
	KindAcceptEncoding
	KindAcceptLanguage
	KindAlertInfo
	KindCallInfo
	KindErrorInfo
	KindAuthorization
	KindProxyAuthorization
	KindWWWAuthenticate
	KindProxyAuthenticate
	KindSubject
	KindPriority
	KindOrganization
	KindUserAgent
	KindServer
	KindContentDisposition
	KindContentEncoding
	KindContentLanguage
	KindContentType
	KindContentLength
)

type kindInfo struct {
	name    Name
	compact Name
	multi   bool
	weight  int
}

// kindInfos declares every concrete header type: names, multiplicity and the weight
// of the canonical message order. Routing headers go first, then addressing and dialog
// identification, capabilities, authentication, descriptive headers, extensions and
// finally the message body description with Content-Length being the last one.
var kindInfos = [...]kindInfo{
	KindMaxForwards:        {"Max-Forwards", "Max-Forwards", false, 30},
	KindFrom:               {"From", "f", false, 40},
	KindTo:                 {"To", "t", false, 50},
	KindCallID:             {"Call-ID", "i", false, 60},
	KindExpires:            {"Expires", "Expires", false, 80},
	KindMinExpires:         {"Min-Expires", "Min-Expires", false, 90},
	KindRetryAfter:         {"Retry-After", "Retry-After", false, 100},
	KindAllow:              {"Allow", "Allow", true, 110},
	KindSupported:          {"Supported", "k", true, 120},
	KindRequire:            {"Require", "Require", true, 130},
	KindProxyRequire:       {"Proxy-Require", "Proxy-Require", true, 140},
	KindUnsupported:        {"Unsupported", "Unsupported", true, 150},
	KindAccept:             {"Accept", "Accept", true, 160},
	KindAcceptEncoding:     {"Accept-Encoding", "Accept-Encoding", true, 170},
	KindAcceptLanguage:     {"Accept-Language", "Accept-Language", true, 180},
	KindAlertInfo:          {"Alert-Info", "Alert-Info", true, 190},
	KindCallInfo:           {"Call-Info", "Call-Info", true, 200},
	KindErrorInfo:          {"Error-Info", "Error-Info", true, 210},
	KindAuthorization:      {"Authorization", "Authorization", true, 220},
	KindProxyAuthorization: {"Proxy-Authorization", "Proxy-Authorization", true, 230},
	KindWWWAuthenticate:    {"WWW-Authenticate", "WWW-Authenticate", true, 240},
	KindProxyAuthenticate:  {"Proxy-Authenticate", "Proxy-Authenticate", true, 250},
	KindSubject:            {"Subject", "s", false, 260},
	KindPriority:           {"Priority", "Priority", false, 270},
	KindOrganization:       {"Organization", "Organization", false, 280},
	KindUserAgent:          {"User-Agent", "User-Agent", false, 290},
	KindServer:             {"Server", "Server", false, 300},
	KindExtension:          {"", "", true, 400},
	KindContentDisposition: {"Content-Disposition", "Content-Disposition", false, 500},
	KindContentEncoding:    {"Content-Encoding", "e", true, 510},
	KindContentLanguage:    {"Content-Language", "Content-Language", true, 520},
	KindContentType:        {"Content-Type", "c", false, 530},
	KindContentLength:      {"Content-Length", "l", false, 540},
}

func (k Kind) info() kindInfo {
	if k < 0 || int(k) >= len(kindInfos) {
		return kindInfos[KindExtension]
	}
	return kindInfos[k]
}

// Weight returns the position weight of the kind in the canonical header order.
func (k Kind) Weight() int { return k.info().weight }

// Name returns the canonical header name of the kind.
// Extension headers have no fixed name and return an empty string.
func (k Kind) Name() Name { return k.info().name }

func (k Kind) String() string {
	if k == KindExtension {
		return "extension"
	}
	return string(k.info().name)
}

// Kinded is implemented by headers and header groups.
type Kinded interface {
	Kind() Kind
}

// Compare returns the signed weight difference of a and b in the canonical header order.
func Compare(a, b Kinded) int {
	return a.Kind().Weight() - b.Kind().Weight()
}

// Sort sorts headers in the canonical order.
// Headers of the same kind keep their relative order.
func Sort[H Kinded](hdrs []H) {
	slices.SortStableFunc(hdrs, func(a, b H) int { return Compare(a, b) })
}
