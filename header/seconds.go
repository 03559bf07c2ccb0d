package header

import (
	"io"
	"math"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
)

// SecondsValue is an optional delta-seconds value in range [0, 2^32-1].
type SecondsValue struct {
	rc   *renderCache
	secs uint32
	set  bool
}

// Seconds returns the value and whether it is set.
func (v *SecondsValue) Seconds() (uint32, bool) { return v.secs, v.set }

// SetSeconds sets the value.
// Values outside of [0, 2^32-1] are rejected with [ErrOutOfRange].
func (v *SecondsValue) SetSeconds(n int64) error {
	if n < 0 || n > math.MaxUint32 {
		return errtrace.Wrap(newOutOfRangeErr("seconds %d not in range [0, %d]", n, uint32(math.MaxUint32)))
	}
	v.secs, v.set = uint32(n), true
	v.rc.invalidate()
	return nil
}

// UnsetSeconds resets the value to the unset state.
func (v *SecondsValue) UnsetSeconds() {
	v.resetSeconds()
	v.rc.invalidate()
}

func (v *SecondsValue) resetSeconds() { v.secs, v.set = 0, false }

// parseSeconds consumes the leading digits of s. Leading zeros are ignored.
func (v *SecondsValue) parseSeconds(s string) (rest string, err error) {
	digits, rest := grammar.ScanDigits(s)
	if digits == "" {
		return s, errtrace.Wrap(newMalformedErr("%q is not a number", s))
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return s, errtrace.Wrap(newMalformedErr("seconds %q overflow", digits))
	}
	v.secs, v.set = uint32(n), true
	return rest, nil
}

func (v *SecondsValue) renderSecondsTo(w io.Writer) (int, error) {
	if !v.set {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, strconv.FormatUint(uint64(v.secs), 10)))
}

func (v *SecondsValue) secondsEqual(o *SecondsValue) bool { return v.set == o.set && v.secs == o.secs }

func (v *SecondsValue) secondsValid() bool { return v.set }

// secondsField is the base of delta-seconds headers: "123;param=value".
type secondsField struct {
	field
	SecondsValue
}

func (f *secondsField) init(kind Kind) {
	f.bind(kind, f)
	f.SecondsValue.rc = &f.cache
}

func (f *secondsField) copy() secondsField {
	return secondsField{field: f.field.clone(), SecondsValue: f.SecondsValue}
}

func (f *secondsField) resetValue() { f.resetSeconds() }

func (f *secondsField) parseValue(s string) error {
	rest, err := f.parseSeconds(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	f.params = parseTrailingParams(rest)
	return nil
}

func (f *secondsField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderSecondsTo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

func (f *secondsField) equal(o *secondsField) bool {
	return f.field.equal(&o.field) && f.secondsEqual(&o.SecondsValue)
}

// IsValid reports whether the value is set.
func (f *secondsField) IsValid() bool { return f.secondsValid() && f.paramsValid() }

// parseTrailingParams parses ";a=1;b" that follows the value.
// Anything else is ignored.
func parseTrailingParams(rest string) Params {
	rest = grammar.SkipLWS(rest)
	if rest == "" || rest[0] != ';' {
		return nil
	}
	_, ps := splitParams(rest)
	return ps
}

// ContentLength represents the Content-Length header field.
// The default value is 0. The header is valid only with a non-zero length.
type ContentLength struct {
	secondsField
}

// NewContentLength returns a Content-Length header with zero length.
func NewContentLength() *ContentLength {
	hdr := &ContentLength{}
	hdr.init(KindContentLength)
	hdr.secs, hdr.set = 0, true
	return hdr
}

// ParseContentLength parses the Content-Length header from text.
func ParseContentLength(s string) (*ContentLength, error) {
	return errtrace.Wrap2(parseAs(NewContentLength(), s))
}

// Length returns the body length in bytes.
func (hdr *ContentLength) Length() uint32 { return hdr.secs }

// SetLength sets the body length in bytes.
func (hdr *ContentLength) SetLength(n int64) error { return errtrace.Wrap(hdr.SetSeconds(n)) }

// IsValid reports whether the length is set and is not zero.
func (hdr *ContentLength) IsValid() bool {
	return hdr != nil && hdr.set && hdr.secs > 0 && hdr.paramsValid()
}

// Clone returns a deep copy of the header.
func (hdr *ContentLength) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &ContentLength{hdr.secondsField.copy()}
	hdr2.init(KindContentLength)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *ContentLength) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *ContentLength) bool { return a.equal(&b.secondsField) })
}

// Expires represents the Expires header field.
// It gives the relative time in seconds after which the message or content expires.
type Expires struct {
	secondsField
}

// NewExpires returns an unset Expires header.
func NewExpires() *Expires {
	hdr := &Expires{}
	hdr.init(KindExpires)
	return hdr
}

// ParseExpires parses the Expires header from text.
func ParseExpires(s string) (*Expires, error) { return errtrace.Wrap2(parseAs(NewExpires(), s)) }

// Clone returns a deep copy of the header.
func (hdr *Expires) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &Expires{hdr.secondsField.copy()}
	hdr2.init(KindExpires)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *Expires) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *Expires) bool { return a.equal(&b.secondsField) })
}

// MinExpires represents the Min-Expires header field.
type MinExpires struct {
	secondsField
}

// NewMinExpires returns an unset Min-Expires header.
func NewMinExpires() *MinExpires {
	hdr := &MinExpires{}
	hdr.init(KindMinExpires)
	return hdr
}

// ParseMinExpires parses the Min-Expires header from text.
func ParseMinExpires(s string) (*MinExpires, error) {
	return errtrace.Wrap2(parseAs(NewMinExpires(), s))
}

// Clone returns a deep copy of the header.
func (hdr *MinExpires) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &MinExpires{hdr.secondsField.copy()}
	hdr2.init(KindMinExpires)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *MinExpires) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *MinExpires) bool { return a.equal(&b.secondsField) })
}

// DefaultMaxForwards is the initial hop limit of a request.
const DefaultMaxForwards = 70

// MaxForwards represents the Max-Forwards header field.
type MaxForwards struct {
	secondsField
}

// NewMaxForwards returns a Max-Forwards header with [DefaultMaxForwards] hops.
func NewMaxForwards() *MaxForwards {
	hdr := &MaxForwards{}
	hdr.init(KindMaxForwards)
	hdr.secs, hdr.set = DefaultMaxForwards, true
	return hdr
}

// ParseMaxForwards parses the Max-Forwards header from text.
func ParseMaxForwards(s string) (*MaxForwards, error) {
	return errtrace.Wrap2(parseAs(NewMaxForwards(), s))
}

// Hops returns the number of remaining hops.
func (hdr *MaxForwards) Hops() uint32 { return hdr.secs }

// Decrement decreases the hop counter by one. It reports false when no hops are left.
func (hdr *MaxForwards) Decrement() bool {
	if !hdr.set || hdr.secs == 0 {
		return false
	}
	hdr.secs--
	hdr.invalidate()
	return true
}

// Clone returns a deep copy of the header.
func (hdr *MaxForwards) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := &MaxForwards{hdr.secondsField.copy()}
	hdr2.init(KindMaxForwards)
	return hdr2
}

// Equal compares this header with another for equality.
func (hdr *MaxForwards) Equal(val any) bool {
	return equalHeaders(hdr, val, func(a, b *MaxForwards) bool { return a.equal(&b.secondsField) })
}
