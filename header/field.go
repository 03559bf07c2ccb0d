package header

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/types"
	"github.com/ghettovoice/siphdr/internal/util"
)

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// Header represents a generic SIP header field.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	Kinded
	// CanonicName returns the canonical name of the header, e.g. "Content-Length".
	CanonicName() Name
	// CompactName returns the compact name of the header, e.g. "l".
	// Headers without a compact form return the canonical name.
	CompactName() Name
	// AllowMultiple reports whether several instances of the header may appear in one message.
	AllowMultiple() bool
	// Parse resets the header from the given header text.
	Parse(s string) error
	// RenderValue returns the header value without the name prefix.
	RenderValue() string
	// RenderCompact returns the header rendered with the compact name.
	RenderCompact() string
	// Bytes returns the rendered header as UTF-8 bytes.
	Bytes() []byte
	// Runes returns the rendered header as a rune sequence.
	Runes() []rune
	String() string
	// CompareTo returns the weight difference of this and the other header in the canonical order.
	CompareTo(other Header) int
	// Param returns the value of the first parameter with the given name.
	Param(name string) (string, bool)
	// Params returns a copy of the header parameters.
	Params() Params
	// AddParameter appends a parameter.
	AddParameter(name, value string) error
	// SetParameter replaces or appends a parameter.
	SetParameter(name, value string) error
	// RemoveParameter removes all parameters with the given name.
	RemoveParameter(name string)
}

// valueCodec is implemented by concrete headers and binds them to the common field machinery.
type valueCodec interface {
	resetValue()
	parseValue(s string) error
	renderValueTo(w io.Writer) (int, error)
}

// renderCache holds the rendered value. Every mutator must call invalidate.
type renderCache struct {
	val    string
	cached bool
}

func (c *renderCache) invalidate() {
	if c == nil {
		return
	}
	c.val, c.cached = "", false
}

// field is the common part of all headers: identity, parameters and the render cache.
type field struct {
	kind    Kind
	name    Name
	compact Name
	multi   bool
	params  Params
	pcase   ParamCase
	cache   renderCache
	codec   valueCodec
}

func (f *field) bind(kind Kind, codec valueCodec) {
	f.kind, f.codec = kind, codec
	if kind == KindExtension {
		f.compact, f.multi = f.name, true
		return
	}
	info := kind.info()
	f.name, f.compact, f.multi = info.name, info.compact, info.multi
}

func (f *field) clone() field {
	f2 := *f
	f2.params = f.params.Clone()
	f2.codec = nil
	return f2
}

func (f *field) invalidate() { f.cache.invalidate() }

// Kind returns the header kind.
func (f *field) Kind() Kind { return f.kind }

// CanonicName returns the canonical name of the header.
func (f *field) CanonicName() Name { return f.name }

// CompactName returns the compact name of the header.
func (f *field) CompactName() Name { return f.compact }

// AllowMultiple reports whether several instances of the header may appear in one message.
func (f *field) AllowMultiple() bool { return f.multi }

// SetParamCase sets the rendering policy of generic parameter names.
func (f *field) SetParamCase(pc ParamCase) {
	f.pcase = pc
	f.invalidate()
}

// Parse resets the header from the given text.
// The text may be prefixed with the canonical or compact header name followed by a colon.
// An empty text resets the header to the unset state.
// On failure the header is left in the unset state.
func (f *field) Parse(s string) error {
	f.invalidate()
	f.params = nil
	f.codec.resetValue()

	s = grammar.StripName(grammar.Unfold(s), string(f.name), string(f.compact))
	if s == "" {
		return nil
	}
	if err := f.codec.parseValue(s); err != nil {
		if errorutil.IsGrammarErr(err) {
			err = newMalformedErr(err)
		}
		f.params = nil
		f.codec.resetValue()
		f.invalidate()
		return errtrace.Wrap(fmt.Errorf("parse %s header: %w", f.name, err))
	}
	return nil
}

// RenderValue returns the header value without the name prefix.
func (f *field) RenderValue() string {
	if !f.cache.cached {
		sb := util.GetStringBuilder()
		f.codec.renderValueTo(sb) //nolint:errcheck
		f.cache.val = sb.String()
		util.FreeStringBuilder(sb)
		f.cache.cached = true
	}
	return f.cache.val
}

func (f *field) renderName(opts *RenderOptions) Name {
	if opts != nil && opts.Compact {
		return f.compact
	}
	return f.name
}

// RenderTo writes the header to the provided writer.
func (f *field) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(f.renderName(opts), ": ", f.RenderValue())
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (f *field) Render(opts *RenderOptions) string {
	return string(f.renderName(opts)) + ": " + f.RenderValue()
}

// RenderCompact returns the header rendered with the compact name.
func (f *field) RenderCompact() string { return f.Render(&RenderOptions{Compact: true}) }

// String returns the header rendered with the canonical name.
func (f *field) String() string { return f.Render(nil) }

// Bytes returns the rendered header as UTF-8 bytes.
func (f *field) Bytes() []byte { return []byte(f.Render(nil)) }

// Runes returns the rendered header as a rune sequence.
func (f *field) Runes() []rune { return []rune(f.Render(nil)) }

// Format implements fmt.Formatter for custom formatting of the header.
// Verb %s prints the value, %+s prints the full header line, %q quotes them.
func (f *field) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			f.RenderTo(s, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(s, f.RenderValue())
		return
	case 'q':
		if s.Flag('+') {
			fmt.Fprint(s, strconv.Quote(f.Render(nil)))
			return
		}
		fmt.Fprint(s, strconv.Quote(f.RenderValue()))
		return
	default:
		type hideMethods field
		type field hideMethods
		fmt.Fprintf(s, fmt.FormatString(s, verb), (*field)(f))
		return
	}
}

// CompareTo returns the weight difference of this and the other header in the canonical order.
func (f *field) CompareTo(other Header) int {
	if other == nil {
		return f.kind.Weight()
	}
	return f.kind.Weight() - other.Kind().Weight()
}

// Param returns the value of the first parameter with the given name.
func (f *field) Param(name string) (string, bool) { return f.params.Get(name) }

// Params returns a copy of the header parameters.
func (f *field) Params() Params { return f.params.Clone() }

func validateParam(name, value string) error {
	if !grammar.IsToken(name) {
		return errtrace.Wrap(newInvalidCharErr("parameter name %q is not a token", name))
	}
	if !isParamValue(value) {
		return errtrace.Wrap(newInvalidCharErr("parameter %q value %q", name, value))
	}
	return nil
}

// AddParameter appends a parameter.
// The name must be a non-empty token, the value a token or a quoted string.
func (f *field) AddParameter(name, value string) error {
	if err := validateParam(name, value); err != nil {
		return errtrace.Wrap(err)
	}
	f.params = f.params.Append(name, value)
	f.invalidate()
	return nil
}

// SetParameter replaces the value of the parameter with the given name or appends it.
func (f *field) SetParameter(name, value string) error {
	if err := validateParam(name, value); err != nil {
		return errtrace.Wrap(err)
	}
	f.params = f.params.Set(name, value)
	f.invalidate()
	return nil
}

// RemoveParameter removes all parameters with the given name.
func (f *field) RemoveParameter(name string) {
	f.params = f.params.Del(name)
	f.invalidate()
}

func (f *field) renderParamsTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(f.params.renderTo(w, ";", ";", f.pcase))
}

func (f *field) equal(other *field) bool {
	return f.kind == other.kind &&
		(f.kind != KindExtension || f.name == other.name) &&
		f.params.Equal(other.params)
}

func (f *field) paramsValid() bool { return f.params.IsValid() }

// MarshalText implements [encoding.TextMarshaler].
func (f *field) MarshalText() ([]byte, error) { return f.Bytes(), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *field) UnmarshalText(text []byte) error { return errtrace.Wrap(f.Parse(string(text))) }

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON implements [json.Marshaler].
func (f *field) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(headerData{Name: string(f.name), Value: f.RenderValue()}))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *field) UnmarshalJSON(data []byte) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return errtrace.Wrap(err)
	}
	if hd == nil {
		return errtrace.Wrap(f.Parse(""))
	}
	if n := CanonicName(hd.Name); n != f.name && Name(hd.Name) != f.compact {
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %q, want %q", hd.Name, f.name))
	}
	return errtrace.Wrap(f.Parse(hd.Value))
}

func parseAs[H Header](hdr H, s string) (H, error) {
	if err := hdr.Parse(s); err != nil {
		var zero H
		return zero, errtrace.Wrap(err)
	}
	return hdr, nil
}

// equalHeaders implements the common part of Equal for a concrete header type T:
// val may be T or *T, same pointers are equal, nil is equal only to a nil pointer.
func equalHeaders[T any](hdr *T, val any, eq func(a, b *T) bool) bool {
	var other *T
	switch v := val.(type) {
	case T:
		other = &v
	case *T:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return eq(hdr, other)
}
