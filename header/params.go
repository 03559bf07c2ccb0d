package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
	"github.com/ghettovoice/siphdr/internal/util"
)

// Param is a single header parameter.
// A parameter without value (flag parameter) has an empty Value.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Params is an ordered list of header parameters.
// Names are compared case-insensitively, values exactly.
type Params []Param

// ParamCase is a rendering policy of generic parameter names.
type ParamCase int

const (
	// ParamCaseAsIs renders parameter names as they were provided.
	ParamCaseAsIs ParamCase = iota
	// ParamCaseLower renders parameter names in lower case.
	ParamCaseLower
)

func (c ParamCase) apply(name string) string {
	if c == ParamCaseLower {
		return util.LCase(name)
	}
	return name
}

// Index returns the index of the first parameter with the given name or -1.
func (ps Params) Index(name string) int {
	for i := range ps {
		if util.EqFold(ps[i].Name, name) {
			return i
		}
	}
	return -1
}

// Get returns the value of the first parameter with the given name.
func (ps Params) Get(name string) (string, bool) {
	if i := ps.Index(name); i >= 0 {
		return ps[i].Value, true
	}
	return "", false
}

// Has checks whether a parameter with the given name is in the list.
func (ps Params) Has(name string) bool { return ps.Index(name) >= 0 }

// Set replaces the value of the first parameter with the given name
// and removes its duplicates, or appends a new parameter.
func (ps Params) Set(name, value string) Params {
	i := ps.Index(name)
	if i < 0 {
		return append(ps, Param{name, value})
	}
	ps[i].Value = value
	head, tail := ps[:i+1], ps[i+1:].Del(name)
	return append(head, tail...)
}

// Append appends a parameter keeping already present parameters with the same name.
func (ps Params) Append(name, value string) Params {
	return append(ps, Param{name, value})
}

// Del removes all parameters with the given name.
func (ps Params) Del(name string) Params {
	out := ps[:0]
	for _, p := range ps {
		if !util.EqFold(p.Name, name) {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	return out
}

// Len returns the number of parameters.
func (ps Params) Len() int { return len(ps) }

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	ps2 := make(Params, len(ps))
	copy(ps2, ps)
	return ps2
}

// Equal compares two parameter lists as multisets:
// order does not matter, names are compared case-insensitively and values exactly.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if len(ps) != len(other) {
		return false
	}
	if len(ps) == 0 {
		return true
	}

	counts := make(map[Param]int, len(ps))
	for _, p := range ps {
		counts[Param{util.LCase(p.Name), p.Value}]++
	}
	for _, p := range other {
		k := Param{util.LCase(p.Name), p.Value}
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

// Sorted returns a copy of the list with the parameters named in order moved
// to the front in the given sequence. The rest follow in insertion order.
func (ps Params) Sorted(order []string) Params {
	if len(ps) == 0 {
		return ps.Clone()
	}
	out := make(Params, 0, len(ps))
	for _, name := range order {
		for _, p := range ps {
			if util.EqFold(p.Name, name) {
				out = append(out, p)
			}
		}
	}
	for _, p := range ps {
		if util.IndexFold(order, p.Name) < 0 {
			out = append(out, p)
		}
	}
	return out
}

// IsValid checks that all names are tokens and all values are valid parameter values.
func (ps Params) IsValid() bool {
	for _, p := range ps {
		if !grammar.IsToken(p.Name) || !isParamValue(p.Value) {
			return false
		}
	}
	return true
}

func isParamValue(s string) bool {
	if s == "" || grammar.IsQuoted(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; !grammar.IsTokenChar(c) && strings.IndexByte(":/[]@?&$=", c) < 0 {
			return false
		}
	}
	return true
}

// renderTo writes parameters each prefixed with lead and separated with sep, e.g.
// ";a=1;b" or ", a=1, b".
func (ps Params) renderTo(w io.Writer, lead, sep string, pc ParamCase) (num int, err error) {
	if len(ps) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, p := range ps {
		if i == 0 {
			cw.WriteString(lead)
		} else {
			cw.WriteString(sep)
		}
		cw.WriteString(pc.apply(p.Name))
		if p.Value != "" {
			cw.WriteString("=")
			cw.WriteString(p.Value)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// parseParam parses "name[=value]". Values are kept verbatim including quotes.
func parseParam(s string) (Param, bool) {
	name, val, _ := strings.Cut(s, "=")
	name, val = grammar.TrimLWS(name), grammar.TrimLWS(val)
	if !grammar.IsToken(name) {
		return Param{}, false
	}
	return Param{name, val}, true
}

// parseParams parses parameter segments dropping those with malformed names.
func parseParams(segs []string) Params {
	if len(segs) == 0 {
		return nil
	}
	ps := make(Params, 0, len(segs))
	for _, seg := range segs {
		if p, ok := parseParam(seg); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

// splitParams splits "head;a=1;b" into the head and its parameters.
func splitParams(s string) (head string, ps Params) {
	segs := grammar.Split(s, ';')
	if len(segs) == 0 {
		return "", nil
	}
	if grammar.Index(s, ';') == 0 {
		return "", parseParams(segs)
	}
	return segs[0], parseParams(segs[1:])
}
