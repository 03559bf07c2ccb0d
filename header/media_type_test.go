package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/siphdr/header"
)

func TestContentType_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantTyp string
		wantSub string
		want    string
		wantErr error
	}{
		{"empty", "", "", "", "", nil},
		{"bare", "application/sdp", "application", "sdp", "application/sdp", nil},
		{"compact", "c: Application/SDP", "application", "sdp", "application/sdp", nil},
		{"spaces", "Content-Type: text / html", "text", "html", "text/html", nil},
		{"params", "multipart/mixed; Boundary=\"a,b\";charset=utf-8", "multipart", "mixed", "multipart/mixed;boundary=\"a,b\";charset=utf-8", nil},
		{"no subtype", "text", "", "", "", header.ErrMalformedHeader},
		{"bad char", "text/ht ml", "", "", "", header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := header.NewContentType()
			err := hdr.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdr.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if hdr.Type() != c.wantTyp || hdr.Subtype() != c.wantSub {
				t.Errorf("hdr type = %q/%q, want %q/%q", hdr.Type(), hdr.Subtype(), c.wantTyp, c.wantSub)
			}
			if got := hdr.RenderValue(); got != c.want {
				t.Errorf("hdr.RenderValue() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestContentType_Setters(t *testing.T) {
	t.Parallel()

	hdr := header.NewContentType()
	if hdr.IsValid() {
		t.Error("empty hdr.IsValid() = true, want false")
	}
	if err := hdr.SetMediaType("Application", "SDP"); err != nil {
		t.Fatalf("hdr.SetMediaType() error = %v, want nil", err)
	}
	if got, want := hdr.String(), "Content-Type: application/sdp"; got != want {
		t.Errorf("hdr.String() = %q, want %q", got, want)
	}
	if err := hdr.SetSubtype("pidf+xml"); err != nil {
		t.Fatalf("hdr.SetSubtype() error = %v, want nil", err)
	}
	if got, want := hdr.RenderCompact(), "c: application/pidf+xml"; got != want {
		t.Errorf("hdr.RenderCompact() = %q, want %q", got, want)
	}
	if err := hdr.SetType("a/b"); !cmp.Equal(err, header.ErrInvalidCharacter, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetType(\"a/b\") error = %v, want %v", err, header.ErrInvalidCharacter)
	}
	if err := hdr.SetSubtype(""); !cmp.Equal(err, header.ErrInvalidCharacter, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetSubtype(\"\") error = %v, want %v", err, header.ErrInvalidCharacter)
	}
	if err := hdr.SetMediaType("text", "h tml"); !cmp.Equal(err, header.ErrInvalidCharacter, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetMediaType(bad) error = %v, want %v", err, header.ErrInvalidCharacter)
	}
	if got, want := hdr.MediaType(), "application/pidf+xml"; got != want {
		t.Errorf("hdr.MediaType() after failed setters = %q, want %q", got, want)
	}
	if !hdr.IsValid() {
		t.Error("hdr.IsValid() = false, want true")
	}
}

func TestAccept_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"wildcard", "*/*", "*/*"},
		{"type wildcard", "Accept: text/*", "text/*"},
		{"q", "application/sdp;q=0.55699", "application/sdp;q=0.557"},
		{"params and q", "text/html;level=1;q=0.5", "text/html;level=1;q=0.500"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.ParseAccept(c.in)
			if err != nil {
				t.Fatalf("header.ParseAccept(%q) error = %v, want nil", c.in, err)
			}
			if got := hdr.RenderValue(); got != c.want {
				t.Errorf("hdr.RenderValue() = %q, want %q", got, c.want)
			}
			if !hdr.IsValid() {
				t.Errorf("hdr.IsValid() = false, want true")
			}
		})
	}
}

func TestAccept_SetQ(t *testing.T) {
	t.Parallel()

	hdr, _ := header.ParseAccept("application/sdp")
	hdr.RenderValue()
	if err := hdr.SetQ(0.55699); err != nil {
		t.Fatalf("hdr.SetQ(0.55699) error = %v, want nil", err)
	}
	if got, want := hdr.String(), "Accept: application/sdp;q=0.557"; got != want {
		t.Errorf("hdr.String() = %q, want %q", got, want)
	}
	for _, q := range []float64{-0.1, 1.1} {
		if err := hdr.SetQ(q); !cmp.Equal(err, header.ErrOutOfRange, cmpopts.EquateErrors()) {
			t.Errorf("hdr.SetQ(%v) error = %v, want %v", q, err, header.ErrOutOfRange)
		}
	}

	hdr2, err := header.ParseAccept(hdr.String())
	if err != nil {
		t.Fatalf("header.ParseAccept(%q) error = %v, want nil", hdr.String(), err)
	}
	if !hdr2.Equal(hdr) {
		t.Errorf("round-trip %q is not equal to the original", hdr2.String())
	}
}

func TestAccept_QParameter(t *testing.T) {
	t.Parallel()

	hdr, err := header.ParseAccept("application/sdp")
	if err != nil {
		t.Fatalf("header.ParseAccept() error = %v, want nil", err)
	}
	if err := hdr.SetQ(0.5); err != nil {
		t.Fatalf("hdr.SetQ() error = %v, want nil", err)
	}
	if err := hdr.AddParameter("q", "0.7"); err != nil {
		t.Fatalf("hdr.AddParameter() error = %v, want nil", err)
	}
	if got, want := hdr.String(), "Accept: application/sdp;q=0.700"; got != want {
		t.Errorf("hdr.String() = %q, want %q", got, want)
	}
	if q, ok := hdr.Q(); !ok || q != 0.7 {
		t.Errorf("hdr.Q() = (%v, %v), want (0.7, true)", q, ok)
	}
	if v, ok := hdr.Param("Q"); !ok || v != "0.700" {
		t.Errorf(`hdr.Param("Q") = (%q, %v), want ("0.700", true)`, v, ok)
	}
	if got := hdr.Params().Len(); got != 0 {
		t.Errorf("hdr.Params().Len() = %d, want 0", got)
	}

	hdr2, err := header.ParseAccept(hdr.String())
	if err != nil {
		t.Fatalf("header.ParseAccept(%q) error = %v, want nil", hdr.String(), err)
	}
	if !hdr.Equal(hdr2) {
		t.Errorf("reparsed header = %+s, want %+s", hdr2, hdr)
	}

	if err := hdr.SetParameter("q", "1.5"); !cmp.Equal(err, error(header.ErrOutOfRange), cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetParameter(q, 1.5) error = %v, want %v", err, header.ErrOutOfRange)
	}
	if err := hdr.SetParameter("q", "high"); !cmp.Equal(err, error(header.ErrInvalidCharacter), cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetParameter(q, high) error = %v, want %v", err, header.ErrInvalidCharacter)
	}
	if got, want := hdr.String(), "Accept: application/sdp;q=0.700"; got != want {
		t.Errorf("hdr.String() = %q, want %q after rejected q", got, want)
	}

	if err := hdr.AddParameter("level", "1"); err != nil {
		t.Fatalf("hdr.AddParameter(level) error = %v, want nil", err)
	}
	hdr.RemoveParameter("q")
	if _, ok := hdr.Q(); ok {
		t.Error("hdr.Q() set after RemoveParameter(q), want unset")
	}
	if got, want := hdr.String(), "Accept: application/sdp;level=1"; got != want {
		t.Errorf("hdr.String() = %q, want %q", got, want)
	}
}
