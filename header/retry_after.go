package header

import (
	"io"
	"math"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
)

// RetryAfter represents the Retry-After header field: "18000;duration=3600" or "120 (I'm in a meeting)".
type RetryAfter struct {
	secondsField
	comment string
}

// NewRetryAfter returns an unset Retry-After header.
func NewRetryAfter() *RetryAfter {
	hdr := &RetryAfter{}
	hdr.init()
	return hdr
}

// ParseRetryAfter parses the Retry-After header from text.
func ParseRetryAfter(s string) (*RetryAfter, error) {
	return errtrace.Wrap2(parseAs(NewRetryAfter(), s))
}

func (hdr *RetryAfter) init() {
	hdr.secondsField.init(KindRetryAfter)
	hdr.bind(KindRetryAfter, hdr)
}

// Comment returns the comment text without parentheses.
func (hdr *RetryAfter) Comment() string { return hdr.comment }

// SetComment sets the comment. Parentheses and control characters are rejected with [ErrInvalidCharacter].
func (hdr *RetryAfter) SetComment(comment string) error {
	if !grammar.IsText(comment) || strings.ContainsAny(comment, "()") {
		return errtrace.Wrap(newInvalidCharErr("comment %q", comment))
	}
	hdr.comment = comment
	hdr.invalidate()
	return nil
}

// Duration returns the "duration" parameter in seconds.
func (hdr *RetryAfter) Duration() (uint32, bool) {
	v, ok := hdr.Param("duration")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// SetDuration sets the "duration" parameter in seconds.
// Values outside of [0, 2^32-1] are rejected with [ErrOutOfRange].
func (hdr *RetryAfter) SetDuration(n int64) error {
	if n < 0 || n > math.MaxUint32 {
		return errtrace.Wrap(newOutOfRangeErr("duration %d not in range [0, %d]", n, uint32(math.MaxUint32)))
	}
	return errtrace.Wrap(hdr.SetParameter("duration", strconv.FormatInt(n, 10)))
}

func (hdr *RetryAfter) resetValue() {
	hdr.resetSeconds()
	hdr.comment = ""
}

func (hdr *RetryAfter) parseValue(s string) error {
	rest, err := hdr.parseSeconds(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	rest = grammar.SkipLWS(rest)
	if len(rest) > 0 && rest[0] == '(' {
		comment, r, err := grammar.ScanComment(rest)
		if err != nil {
			return errtrace.Wrap(newMalformedErr(err))
		}
		hdr.comment, rest = grammar.TrimLWS(comment), r
	}
	hdr.params = parseTrailingParams(rest)
	return nil
}

func (hdr *RetryAfter) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(hdr.renderSecondsTo)
	if hdr.comment != "" {
		cw.Fprint(" (", hdr.comment, ")")
	}
	cw.Call(hdr.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

// Clone returns a deep copy of the header.
func (hdr *RetryAfter) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &RetryAfter{secondsField: hdr.secondsField.copy(), comment: hdr.comment}
	hdr2.init()
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *RetryAfter) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *RetryAfter) bool {
		return a.comment == b.comment && a.secondsField.equal(&b.secondsField)
	})
}
