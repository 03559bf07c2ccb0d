// Package grammar implements the lexical primitives of the SIP header grammar (RFC 3261 Section 25.1):
// linear whitespace folding, tokens, quoted strings, comments and list splitting.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"

	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"

	"github.com/ghettovoice/siphdr/internal/util"
)

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput      Error = "empty input"
	ErrMalformedInput  Error = "malformed input"
	ErrUnclosedQuote   Error = "unclosed quoted string"
	ErrUnclosedComment Error = "unclosed comment"
	ErrUnclosedAngle   Error = "unclosed angle bracket"
	ErrNodeNotFound    Error = "node not found"
)

var tokenChars, digitChars [256]bool

func init() {
	abnf.EnableNodeCache(10 * 1024)

	ns := abnf.NewNodes()
	defer ns.Free()
	for c := range 256 {
		in := []byte{byte(c)}
		ns.Clear()
		tokenChars[c] = tokenChar(in, 0, ns) == nil
		ns.Clear()
		digitChars[c] = abnf_core.Operators().DIGIT(in, 0, ns) == nil
	}
}

// MustGetNode returns the node with the given key from the subtree of n.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// IsTokenChar reports whether c belongs to the token alphabet.
func IsTokenChar(c byte) bool { return tokenChars[c] }

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return digitChars[c] }

// IsWSP reports whether c is SP or HTAB.
func IsWSP(c byte) bool { return c == ' ' || c == '\t' }

// IsToken reports whether s is a non-empty token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Token([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsToken68 reports whether s is a non-empty token68 blob as used by the Basic auth scheme.
func IsToken68[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Token68([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsQuoted reports whether the whole s is a single quoted string.
func IsQuoted[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := QuotedString([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// Quote wraps s into double quotes escaping quotes and backslashes.
func Quote(s string) string {
	if strings.IndexAny(s, `"\`) < 0 {
		return `"` + s + `"`
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote strips surrounding double quotes and resolves quoted pairs.
// Values that are not quoted are returned unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	v, _, _ := ScanQuoted(s)
	return v
}

// IsText reports whether s contains no control characters except HTAB.
func IsText(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 && c != '\t' || c == 0x7f {
			return false
		}
	}
	return true
}

// EqualToken compares two tokens case-insensitively.
func EqualToken(a, b string) bool { return util.EqFold(a, b) }

const lwsChars = " \t\r\n"

// TrimLWS trims leading and trailing linear whitespace.
func TrimLWS(s string) string { return strings.Trim(s, lwsChars) }

// SkipLWS trims leading linear whitespace.
func SkipLWS(s string) string {
	if len(s) == 0 {
		return s
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := sws([]byte(s), 0, ns); err != nil {
		return s
	}
	return s[ns.Best().Len():]
}
