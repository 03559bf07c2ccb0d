package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

// Rules of RFC 3261 Section 25.1 used by the header codec.
//
//	token         = 1*(alphanum / "-" / "." / "!" / "%" / "*" / "_" / "+" / "`" / "'" / "~")
//	quoted-string = DQUOTE *(qdtext / quoted-pair) DQUOTE
//	quoted-pair   = "\" OCTET
//	comment       = "(" *ctext ")"
//	angle-quoted  = "<" *atext ">"
//	fold          = (CR LF / LF / CR) 1*WSP
//	SWS           = *(WSP / CR / LF)
//	HCOLON        = *WSP ":" SWS
//	header-prefix = token HCOLON
//	token68       = 1*(ALPHA / DIGIT / "-" / "." / "_" / "~" / "+" / "/") *"="
//
// The text rules accept any octet except their delimiters.
var (
	tokenChar = abnf.AltFirst(
		"token-char",
		abnf_core.Operators().ALPHA,
		abnf_core.Operators().DIGIT,
		abnf.LiteralCS("-", []byte("-")),
		abnf.LiteralCS(".", []byte(".")),
		abnf.LiteralCS("!", []byte("!")),
		abnf.LiteralCS("%", []byte("%")),
		abnf.LiteralCS("*", []byte("*")),
		abnf.LiteralCS("_", []byte("_")),
		abnf.LiteralCS("+", []byte("+")),
		abnf.LiteralCS("`", []byte("`")),
		abnf.LiteralCS("'", []byte("'")),
		abnf.LiteralCS("~", []byte("~")),
	)
	token     = abnf.Repeat1Inf("token", tokenChar)
	digitsRun = abnf.Repeat1Inf("digits", abnf_core.Operators().DIGIT)

	quotedPair = abnf.Concat(
		"quoted-pair",
		abnf.LiteralCS("\\", []byte(`\`)),
		abnf_core.Operators().OCTET,
	)
	qdtext = abnf.AltFirst(
		"qdtext",
		abnf.Range("%x00-21", []byte{0x00}, []byte{0x21}),
		abnf.Range("%x23-5B", []byte{0x23}, []byte{0x5b}),
		abnf.Range("%x5D-FF", []byte{0x5d}, []byte{0xff}),
	)
	quotedString = abnf.Concat(
		"quoted-string",
		abnf_core.Operators().DQUOTE,
		abnf.Repeat0Inf("qcontent", abnf.AltFirst("qchar", qdtext, quotedPair)),
		abnf_core.Operators().DQUOTE,
	)

	comment = abnf.Concat(
		"comment",
		abnf.LiteralCS("(", []byte("(")),
		abnf.Repeat0Inf("ctext", abnf.AltFirst(
			"ctext-char",
			abnf.Range("%x00-28", []byte{0x00}, []byte{0x28}),
			abnf.Range("%x2A-FF", []byte{0x2a}, []byte{0xff}),
		)),
		abnf.LiteralCS(")", []byte(")")),
	)

	angleQuoted = abnf.Concat(
		"angle-quoted",
		abnf.LiteralCS("<", []byte("<")),
		abnf.Repeat0Inf("atext", abnf.AltFirst(
			"atext-char",
			abnf.Range("%x00-3D", []byte{0x00}, []byte{0x3d}),
			abnf.Range("%x3F-FF", []byte{0x3f}, []byte{0xff}),
		)),
		abnf.LiteralCS(">", []byte(">")),
	)

	lineBreak = abnf.AltFirst(
		"line-break",
		abnf.Concat("CR LF", abnf_core.Operators().CR, abnf_core.Operators().LF),
		abnf_core.Operators().LF,
		abnf_core.Operators().CR,
	)
	fold = abnf.Concat("fold", lineBreak, abnf.Repeat1Inf("WSP", abnf_core.Operators().WSP))

	sws = abnf.Repeat0Inf("SWS", abnf.AltFirst(
		"lws-char",
		abnf_core.Operators().WSP,
		abnf_core.Operators().CR,
		abnf_core.Operators().LF,
	))
	hcolon = abnf.Concat(
		"HCOLON",
		abnf.Repeat0Inf("WSP", abnf_core.Operators().WSP),
		abnf.LiteralCS(":", []byte(":")),
		sws,
	)
	headerPrefix = abnf.Concat("header-prefix", token, hcolon)

	token68 = abnf.Concat(
		"token68",
		abnf.Repeat1Inf("token68-chars", abnf.AltFirst(
			"token68-char",
			abnf_core.Operators().ALPHA,
			abnf_core.Operators().DIGIT,
			abnf.LiteralCS("-", []byte("-")),
			abnf.LiteralCS(".", []byte(".")),
			abnf.LiteralCS("_", []byte("_")),
			abnf.LiteralCS("~", []byte("~")),
			abnf.LiteralCS("+", []byte("+")),
			abnf.LiteralCS("/", []byte("/")),
		)),
		abnf.Repeat0Inf("token68-pad", abnf.LiteralCS("=", []byte("="))),
	)
)

// Token parses a token that starts s.
func Token(s []byte, ns *abnf.Nodes) error {
	return token(s, 0, ns) //errtrace:skip
}

// QuotedString parses a quoted string that starts s.
func QuotedString(s []byte, ns *abnf.Nodes) error {
	return quotedString(s, 0, ns) //errtrace:skip
}

// Comment parses a comment that starts s.
func Comment(s []byte, ns *abnf.Nodes) error {
	return comment(s, 0, ns) //errtrace:skip
}

// AngleQuoted parses "<...>" that starts s.
func AngleQuoted(s []byte, ns *abnf.Nodes) error {
	return angleQuoted(s, 0, ns) //errtrace:skip
}

// HeaderPrefix parses "Name *WSP : SWS" that starts s.
func HeaderPrefix(s []byte, ns *abnf.Nodes) error {
	return headerPrefix(s, 0, ns) //errtrace:skip
}

// Token68 parses a token68 blob that starts s.
func Token68(s []byte, ns *abnf.Nodes) error {
	return token68(s, 0, ns) //errtrace:skip
}
