package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/grammar"
	"github.com/ghettovoice/siphdr/internal/ioutil"
)

// OptionValue is a single token value such as an option tag, a method or an encoding.
type OptionValue struct {
	rc  *renderCache
	opt string
}

// Option returns the token value.
func (v *OptionValue) Option() string { return v.opt }

// SetOption sets the token value. A value that is not a token is rejected with [ErrInvalidCharacter].
func (v *OptionValue) SetOption(opt string) error {
	if !grammar.IsToken(opt) {
		return errtrace.Wrap(newInvalidCharErr("option %q is not a token", opt))
	}
	v.opt = opt
	v.rc.invalidate()
	return nil
}

func (v *OptionValue) resetOption() { v.opt = "" }

func (v *OptionValue) parseOption(s string) error {
	tok, _ := grammar.ScanToken(s)
	if tok == "" {
		return errtrace.Wrap(newMalformedErr("%q is not a token", s))
	}
	v.opt = tok
	return nil
}

func (v *OptionValue) renderOptionTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, v.opt))
}

func (v *OptionValue) optionValid() bool { return grammar.IsToken(v.opt) }

// optionField is the base of token headers: "token;param=value".
type optionField struct {
	field
	OptionValue
}

func (f *optionField) init(kind Kind) {
	f.bind(kind, f)
	f.OptionValue.rc = &f.cache
}

func (f *optionField) copy() optionField {
	return optionField{field: f.field.clone(), OptionValue: f.OptionValue}
}

func (f *optionField) resetValue() { f.resetOption() }

func (f *optionField) parseValue(s string) error {
	head, ps := splitParams(s)
	if err := f.parseOption(head); err != nil {
		return errtrace.Wrap(err)
	}
	f.params = ps
	return nil
}

func (f *optionField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderOptionTo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

func (f *optionField) equal(o *optionField) bool {
	return f.field.equal(&o.field) && grammar.EqualToken(f.opt, o.opt)
}

// IsValid reports whether the option is a non-empty token.
func (f *optionField) IsValid() bool { return f.optionValid() && f.paramsValid() }

// optionQField is the base of token headers weighted with a q-value: "gzip;q=0.5".
type optionQField struct {
	optionField
	QValue
}

func (f *optionQField) init(kind Kind) {
	f.optionField.init(kind)
	f.bind(kind, f)
	f.QValue.rc = &f.cache
}

func (f *optionQField) copy() optionQField {
	return optionQField{optionField: f.optionField.copy(), QValue: f.QValue}
}

func (f *optionQField) resetValue() {
	f.resetOption()
	f.resetQ()
}

func (f *optionQField) parseValue(s string) error {
	if err := f.optionField.parseValue(s); err != nil {
		return errtrace.Wrap(err)
	}
	ps, err := f.takeQ(f.params)
	if err != nil {
		return errtrace.Wrap(err)
	}
	f.params = ps
	return nil
}

func (f *optionQField) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(f.renderOptionTo)
	cw.Call(f.renderQTo)
	cw.Call(f.renderParamsTo)
	return errtrace.Wrap2(cw.Result())
}

// Param returns the value of the parameter with the given name.
// The "q" parameter is reported from the weight.
func (f *optionQField) Param(name string) (string, bool) {
	if isQParam(name) {
		return f.qParam()
	}
	return f.field.Param(name)
}

// AddParameter appends a parameter. The "q" parameter sets the weight through [QValue.SetQ].
func (f *optionQField) AddParameter(name, value string) error {
	if isQParam(name) {
		return errtrace.Wrap(f.setQParam(value))
	}
	return errtrace.Wrap(f.field.AddParameter(name, value))
}

// SetParameter replaces or appends a parameter. The "q" parameter sets the weight through [QValue.SetQ].
func (f *optionQField) SetParameter(name, value string) error {
	if isQParam(name) {
		return errtrace.Wrap(f.setQParam(value))
	}
	return errtrace.Wrap(f.field.SetParameter(name, value))
}

// RemoveParameter removes all parameters with the given name. The "q" parameter unsets the weight.
func (f *optionQField) RemoveParameter(name string) {
	if isQParam(name) {
		f.UnsetQ()
		return
	}
	f.field.RemoveParameter(name)
}

func (f *optionQField) equal(o *optionQField) bool {
	return f.optionField.equal(&o.optionField) && f.qEqual(&o.QValue)
}
