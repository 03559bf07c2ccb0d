package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/siphdr/header"
)

func TestRetryAfter_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		in          string
		wantSecs    uint32
		wantComment string
		wantDur     uint32
		wantDurOK   bool
		want        string
		wantErr     error
	}{
		{"empty", "", 0, "", 0, false, "", nil},
		{"seconds", "Retry-After: 18000", 18000, "", 0, false, "18000", nil},
		{"duration", "18000;duration=3600", 18000, "", 3600, true, "18000;duration=3600", nil},
		{
			"comment", "120 (I'm in a meeting)",
			120, "I'm in a meeting", 0, false, "120 (I'm in a meeting)", nil,
		},
		{
			"comment and duration", "Retry-After: 0120 ( lunch ) ;duration=60;x",
			120, "lunch", 60, true, "120 (lunch);duration=60;x", nil,
		},
		{"unclosed comment", "120 (lunch", 0, "", 0, false, "", header.ErrMalformedHeader},
		{"no seconds", "(lunch)", 0, "", 0, false, "", header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := header.NewRetryAfter()
			err := hdr.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdr.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if secs, _ := hdr.Seconds(); secs != c.wantSecs {
				t.Errorf("hdr.Seconds() = %d, want %d", secs, c.wantSecs)
			}
			if got := hdr.Comment(); got != c.wantComment {
				t.Errorf("hdr.Comment() = %q, want %q", got, c.wantComment)
			}
			if dur, ok := hdr.Duration(); dur != c.wantDur || ok != c.wantDurOK {
				t.Errorf("hdr.Duration() = (%d, %v), want (%d, %v)", dur, ok, c.wantDur, c.wantDurOK)
			}
			if got := hdr.RenderValue(); got != c.want {
				t.Errorf("hdr.RenderValue() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestRetryAfter_Setters(t *testing.T) {
	t.Parallel()

	hdr := header.NewRetryAfter()
	if hdr.IsValid() {
		t.Error("empty hdr.IsValid() = true, want false")
	}
	if err := hdr.SetSeconds(300); err != nil {
		t.Fatalf("hdr.SetSeconds() error = %v, want nil", err)
	}
	if err := hdr.SetComment("back soon"); err != nil {
		t.Fatalf("hdr.SetComment() error = %v, want nil", err)
	}
	if err := hdr.SetDuration(600); err != nil {
		t.Fatalf("hdr.SetDuration() error = %v, want nil", err)
	}
	if got, want := hdr.String(), "Retry-After: 300 (back soon);duration=600"; got != want {
		t.Errorf("hdr.String() = %q, want %q", got, want)
	}
	if !hdr.IsValid() {
		t.Error("hdr.IsValid() = false, want true")
	}

	if err := hdr.SetComment("(nested)"); !cmp.Equal(err, header.ErrInvalidCharacter, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetComment(\"(nested)\") error = %v, want %v", err, header.ErrInvalidCharacter)
	}
	if err := hdr.SetDuration(-1); !cmp.Equal(err, header.ErrOutOfRange, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetDuration(-1) error = %v, want %v", err, header.ErrOutOfRange)
	}

	hdr2 := hdr.Clone().(*header.RetryAfter)
	if !hdr.Equal(hdr2) {
		t.Fatal("hdr.Equal(hdr.Clone()) = false, want true")
	}
	if err := hdr2.SetComment(""); err != nil {
		t.Fatalf("hdr2.SetComment(\"\") error = %v, want nil", err)
	}
	if hdr.Equal(hdr2) {
		t.Error("hdr.Equal(hdr2) = true, want false")
	}
	if got, want := hdr2.RenderValue(), "300;duration=600"; got != want {
		t.Errorf("hdr2.RenderValue() = %q, want %q", got, want)
	}
}
