package header

import (
	"io"
	"math"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/util"
)

// QValue is an optional preference weight in range [0, 1] carried in the "q" parameter.
type QValue struct {
	rc  *renderCache
	q   float64
	set bool
}

// Q returns the weight and whether it is set.
func (v *QValue) Q() (float64, bool) { return v.q, v.set }

// SetQ sets the weight. Values outside of [0, 1] are rejected with [ErrOutOfRange].
func (v *QValue) SetQ(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return errtrace.Wrap(newOutOfRangeErr("q-value %v not in range [0, 1]", q))
	}
	v.q, v.set = q, true
	v.rc.invalidate()
	return nil
}

// UnsetQ removes the weight.
func (v *QValue) UnsetQ() {
	v.resetQ()
	v.rc.invalidate()
}

func (v *QValue) resetQ() { v.q, v.set = 0, false }

// takeQ moves the "q" parameter from ps into the value.
func (v *QValue) takeQ(ps Params) (Params, error) {
	raw, ok := ps.Get("q")
	if !ok {
		return ps, nil
	}
	q, err := strconv.ParseFloat(grammar.Unquote(raw), 64)
	if err != nil || q < 0 || q > 1 {
		return ps, errtrace.Wrap(newMalformedErr("invalid q-value %q", raw))
	}
	v.q, v.set = q, true
	return ps.Del("q"), nil
}

// setQParam assigns a raw "q" parameter value through [QValue.SetQ].
func (v *QValue) setQParam(raw string) error {
	q, err := strconv.ParseFloat(grammar.Unquote(raw), 64)
	if err != nil {
		return errtrace.Wrap(newInvalidCharErr("q-value %q is not a number", raw))
	}
	return errtrace.Wrap(v.SetQ(q))
}

func (v *QValue) qParam() (string, bool) {
	if !v.set {
		return "", false
	}
	return strconv.FormatFloat(v.q, 'f', 3, 64), true
}

func isQParam(name string) bool { return util.EqFold(name, "q") }

func (v *QValue) renderQTo(w io.Writer) (int, error) {
	if !v.set {
		return 0, nil
	}
	q, _ := v.qParam()
	return errtrace.Wrap2(io.WriteString(w, ";q="+q))
}

func (v *QValue) qMillis() int64 { return int64(math.Round(v.q * 1000)) }

func (v *QValue) qEqual(o *QValue) bool {
	return v.set == o.set && (!v.set || v.qMillis() == o.qMillis())
}
