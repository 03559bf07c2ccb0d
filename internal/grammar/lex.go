package grammar

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/siphdr/internal/util"
)

// Unfold collapses every line fold (CRLF, LF or CR followed by SP or HTAB) with the
// following whitespace run into a single SP and trims the result.
func Unfold(s string) string {
	if strings.IndexAny(s, "\r\n") < 0 {
		return TrimLWS(s)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	ns := abnf.NewNodes()
	defer ns.Free()

	in := []byte(s)
	for i := 0; i < len(in); i++ {
		if c := in[i]; c != '\r' && c != '\n' {
			sb.WriteByte(c)
			continue
		}

		ns.Clear()
		if err := fold(in, uint(i), ns); err != nil {
			sb.WriteByte(in[i])
			continue
		}
		sb.WriteByte(' ')
		i += ns.Best().Len() - 1
	}
	return TrimLWS(sb.String())
}

// StripName consumes the leading "Name *WSP :" prefix when the name matches one of names
// (case-insensitive). The remaining value is returned trimmed.
// Text that does not start with one of the names is returned trimmed as a bare value.
func StripName(s string, names ...string) string {
	s = TrimLWS(s)
	if s == "" {
		return s
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := HeaderPrefix([]byte(s), ns); err != nil {
		return s
	}
	n := ns.Best()
	if util.IndexFold(names, MustGetNode(n, "token").String()) < 0 {
		return s
	}
	return TrimLWS(s[n.Len():])
}

// ScanToken returns the longest token prefix of s and the remainder.
func ScanToken(s string) (tok, rest string) {
	l := scan(token, s)
	return s[:l], s[l:]
}

// ScanDigits returns the longest run of decimal digits prefixing s and the remainder.
func ScanDigits(s string) (digits, rest string) {
	l := scan(digitsRun, s)
	return s[:l], s[l:]
}

// scan returns the length of the longest match of op at the start of s, or 0.
func scan(op abnf.Operator, s string) int {
	if len(s) == 0 {
		return 0
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return 0
	}
	return ns.Best().Len()
}

// ScanQuoted parses a quoted string that starts s.
// It returns the content without the surrounding quotes with quoted pairs resolved,
// and the text following the closing quote.
func ScanQuoted(s string) (val, rest string, err error) {
	if len(s) == 0 || s[0] != '"' {
		return "", s, errtrace.Wrap(ErrMalformedInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := QuotedString([]byte(s), ns); err != nil {
		return "", s, errtrace.Wrap(ErrUnclosedQuote)
	}

	n := ns.Best()
	qc := MustGetNode(n, "qcontent")
	var sb strings.Builder
	sb.Grow(qc.Len())
	for _, ch := range qc.Children {
		v := s[ch.Pos : int(ch.Pos)+ch.Len()]
		if ch.Contains("quoted-pair") {
			v = v[1:]
		}
		sb.WriteString(v)
	}
	return sb.String(), s[n.Len():], nil
}

// ScanComment parses a comment "(...)" that starts s and returns its content verbatim.
// Nested comments are not supported: the first ")" closes the comment.
func ScanComment(s string) (val, rest string, err error) {
	if len(s) == 0 || s[0] != '(' {
		return "", s, errtrace.Wrap(ErrMalformedInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Comment([]byte(s), ns); err != nil {
		return "", s, errtrace.Wrap(ErrUnclosedComment)
	}
	n := ns.Best()
	return s[1 : n.Len()-1], s[n.Len():], nil
}

// ScanAngle parses "<...>" that starts s and returns the enclosed text.
func ScanAngle(s string) (val, rest string, err error) {
	if len(s) == 0 || s[0] != '<' {
		return "", s, errtrace.Wrap(ErrMalformedInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := AngleQuoted([]byte(s), ns); err != nil {
		return "", s, errtrace.Wrap(ErrUnclosedAngle)
	}
	n := ns.Best()
	return s[1 : n.Len()-1], s[n.Len():], nil
}

// Index returns the index of the first sep in s that is outside quoted strings,
// angle brackets and comments, or -1.
func Index(s string, sep byte) int {
	var quoted, escaped bool
	angle, paren := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quoted:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			continue
		case c == sep && angle == 0 && paren == 0:
			return i
		}
		switch c {
		case '"':
			quoted = true
		case '<':
			angle++
		case '>':
			if angle > 0 {
				angle--
			}
		case '(':
			paren++
		case ')':
			if paren > 0 {
				paren--
			}
		}
	}
	return -1
}

// Split splits s by sep occurring outside quoted strings, angle brackets and comments.
// Segments are trimmed, empty segments are dropped.
func Split(s string, sep byte) []string {
	var parts []string
	for {
		i := Index(s, sep)
		if i < 0 {
			break
		}
		if p := TrimLWS(s[:i]); p != "" {
			parts = append(parts, p)
		}
		s = s[i+1:]
	}
	if p := TrimLWS(s); p != "" {
		parts = append(parts, p)
	}
	return parts
}
