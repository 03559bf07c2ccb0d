package header

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/types"
	"github.com/ghettovoice/siphdr/internal/util"
)

// group is the common part of [Group] and [AuthGroup].
type group[T Header] struct {
	newElem func() T
	proto   T
	elems   []T
}

func newGroup[T Header](newElem func() T, elems []T) group[T] {
	return group[T]{newElem: newElem, proto: newElem(), elems: slices.Clone(elems)}
}

// Kind returns the kind of the group elements.
func (g *group[T]) Kind() Kind { return g.proto.Kind() }

// CanonicName returns the canonical name of the group elements.
func (g *group[T]) CanonicName() Name { return g.proto.CanonicName() }

// CompactName returns the compact name of the group elements.
func (g *group[T]) CompactName() Name { return g.proto.CompactName() }

// Len returns the number of elements.
func (g *group[T]) Len() int { return len(g.elems) }

// At returns the element at index i.
func (g *group[T]) At(i int) T { return g.elems[i] }

// Add appends elements to the group.
func (g *group[T]) Add(elems ...T) { g.elems = append(g.elems, elems...) }

// Remove removes the element at index i.
func (g *group[T]) Remove(i int) { g.elems = slices.Delete(g.elems, i, i+1) }

// All returns an iterator over the elements with their indexes.
func (g *group[T]) All() iter.Seq2[int, T] { return slices.All(g.elems) }

// IsValid reports whether the group is not empty and all elements are valid.
func (g *group[T]) IsValid() bool {
	if len(g.elems) == 0 {
		return false
	}
	for _, e := range g.elems {
		if !types.IsValid(e) {
			return false
		}
	}
	return true
}

// RenderValue returns element values joined with ", ".
func (g *group[T]) RenderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	g.renderValuesTo(sb) //nolint:errcheck
	return sb.String()
}

func (g *group[T]) renderValuesTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, e := range g.elems {
		if i > 0 {
			cw.WriteString(", ")
		}
		cw.WriteString(e.RenderValue())
	}
	return errtrace.Wrap2(cw.Result())
}

func (g *group[T]) name(opts *RenderOptions) Name {
	if opts != nil && opts.Compact {
		return g.proto.CompactName()
	}
	return g.proto.CanonicName()
}

// parse resets the group from the header text.
// Every line of s is stripped of the header name and split into elements with split.
func (g *group[T]) parse(s string, split func(string) []string) error {
	g.elems = nil
	names := []string{string(g.proto.CanonicName()), string(g.proto.CompactName())}
	for _, line := range splitLines(grammar.Unfold(s)) {
		for _, seg := range split(grammar.StripName(line, names...)) {
			e := g.newElem()
			if err := e.Parse(seg); err != nil {
				g.elems = nil
				return errtrace.Wrap(err)
			}
			g.elems = append(g.elems, e)
		}
	}
	return nil
}

func (g *group[T]) equal(o *group[T]) bool {
	return slices.EqualFunc(g.elems, o.elems, func(a, b T) bool { return types.IsEqual(a, b) })
}

func (g *group[T]) clone() group[T] {
	g2 := group[T]{newElem: g.newElem, proto: g.proto}
	if g.elems != nil {
		g2.elems = make([]T, len(g.elems))
		for i, e := range g.elems {
			g2.elems[i] = types.Clone[Header](e).(T) //nolint:forcetypeassert
		}
	}
	return g2
}

func splitLines(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		if line = grammar.TrimLWS(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitList(s string) []string { return grammar.Split(s, ',') }

// Group is an ordered list of headers of one type that share one header line:
// "Supported: 100rel, timer".
type Group[T Header] struct {
	group[T]
}

// NewGroup returns a group of headers constructed with newElem.
func NewGroup[T Header](newElem func() T, elems ...T) *Group[T] {
	return &Group[T]{newGroup(newElem, elems)}
}

// Parse resets the group from a comma-separated list of header values.
// Commas inside quoted strings, angle brackets and comments do not split values.
// Several lines of the same header are accepted as well.
// On failure the group is left empty.
func (g *Group[T]) Parse(s string) error {
	if err := g.parse(s, splitList); err != nil {
		return errtrace.Wrap(fmt.Errorf("parse %s group: %w", g.proto.CanonicName(), err))
	}
	return nil
}

// RenderTo writes "Name: value1, value2" to the provided writer.
// An empty group renders nothing.
func (g *Group[T]) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if g == nil || len(g.elems) == 0 {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(g.name(opts), ": ")
	cw.Call(g.renderValuesTo)
	return errtrace.Wrap2(cw.Result())
}

// Render returns "Name: value1, value2".
func (g *Group[T]) Render(opts *RenderOptions) string {
	if g == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	g.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// RenderCompact returns the group rendered with the compact name.
func (g *Group[T]) RenderCompact() string { return g.Render(&RenderOptions{Compact: true}) }

func (g *Group[T]) String() string { return g.Render(nil) }

// Bytes returns the rendered group as UTF-8 bytes.
func (g *Group[T]) Bytes() []byte { return []byte(g.Render(nil)) }

// Clone returns a deep copy of the group.
func (g *Group[T]) Clone() *Group[T] {
	if g == nil {
		return nil
	}
	return &Group[T]{g.group.clone()}
}

// Equal compares groups element-wise in order.
func (g *Group[T]) Equal(val any) bool {
	var other *Group[T]
	switch v := val.(type) {
	case Group[T]:
		other = &v
	case *Group[T]:
		other = v
	default:
		return false
	}

	if g == other {
		return true
	} else if g == nil || other == nil {
		return false
	}
	return g.equal(&other.group)
}

// AuthGroup is an ordered list of challenges or credentials of one header type.
// A group with one element renders exactly as the element,
// several elements render as consecutive header lines.
type AuthGroup[T Header] struct {
	group[T]
}

// NewAuthGroup returns a group of challenges or credentials constructed with newElem.
func NewAuthGroup[T Header](newElem func() T, elems ...T) *AuthGroup[T] {
	return &AuthGroup[T]{newGroup(newElem, elems)}
}

// Parse resets the group from a header text.
// A comma-separated list is split at every element that starts with "scheme SP".
// On failure the group is left empty.
func (g *AuthGroup[T]) Parse(s string) error {
	if err := g.parse(s, splitAuthList); err != nil {
		return errtrace.Wrap(fmt.Errorf("parse %s group: %w", g.proto.CanonicName(), err))
	}
	return nil
}

// RenderTo writes the group elements as header lines separated with CRLF.
func (g *AuthGroup[T]) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if g == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, e := range g.elems {
		if i > 0 {
			cw.WriteString("\r\n")
		}
		cw.WriteString(e.Render(opts))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the group elements as header lines separated with CRLF.
func (g *AuthGroup[T]) Render(opts *RenderOptions) string {
	if g == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	g.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// RenderCompact returns the group rendered with the compact name.
func (g *AuthGroup[T]) RenderCompact() string { return g.Render(&RenderOptions{Compact: true}) }

func (g *AuthGroup[T]) String() string { return g.Render(nil) }

// Bytes returns the rendered group as UTF-8 bytes.
func (g *AuthGroup[T]) Bytes() []byte { return []byte(g.Render(nil)) }

// Clone returns a deep copy of the group.
func (g *AuthGroup[T]) Clone() *AuthGroup[T] {
	if g == nil {
		return nil
	}
	return &AuthGroup[T]{g.group.clone()}
}

// Equal compares groups element-wise in order.
func (g *AuthGroup[T]) Equal(val any) bool {
	var other *AuthGroup[T]
	switch v := val.(type) {
	case AuthGroup[T]:
		other = &v
	case *AuthGroup[T]:
		other = v
	default:
		return false
	}

	if g == other {
		return true
	} else if g == nil || other == nil {
		return false
	}
	return g.equal(&other.group)
}

// splitAuthList splits `Digest realm="a", nonce="b", Basic realm="c"` into one segment per scheme.
func splitAuthList(s string) []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, seg := range grammar.Split(s, ',') {
		if cur.Len() > 0 && startsAuthScheme(seg) {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(", ")
		}
		cur.WriteString(seg)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// startsAuthScheme reports whether seg looks like "scheme SP ..." rather than "name=value".
func startsAuthScheme(seg string) bool {
	tok, rest := grammar.ScanToken(seg)
	if tok == "" || rest == "" || !grammar.IsWSP(rest[0]) {
		return false
	}
	rest = strings.TrimLeft(rest, " \t")
	return rest != "" && rest[0] != '='
}
