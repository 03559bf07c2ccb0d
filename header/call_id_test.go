package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/siphdr/header"
)

func TestCallID_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"with host", "Call-ID: f81d4fae-7dec-11d0-a765-00a0c91e6bf6@foo.bar.com", "f81d4fae-7dec-11d0-a765-00a0c91e6bf6@foo.bar.com", nil},
		{"compact", "i:a84b4c76e66710", "a84b4c76e66710", nil},
		{"word chars", "i: <abc>:[1]@{host}", "<abc>:[1]@{host}", nil},
		{"space", "i: abc def", "", header.ErrMalformedHeader},
		{"empty host", "i: abc@", "", header.ErrMalformedHeader},
		{"two hosts", "i: a@b@c", "", header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := header.NewCallID()
			err := hdr.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("hdr.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got := hdr.ID(); got != c.want {
				t.Errorf("hdr.ID() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCallID_SetID(t *testing.T) {
	t.Parallel()

	hdr := header.NewCallID()
	if hdr.IsValid() {
		t.Error("empty hdr.IsValid() = true, want false")
	}
	if err := hdr.SetID("3848276298220188511@atlanta.example.com"); err != nil {
		t.Fatalf("hdr.SetID() error = %v, want nil", err)
	}
	if got, want := hdr.RenderCompact(), "i: 3848276298220188511@atlanta.example.com"; got != want {
		t.Errorf("hdr.RenderCompact() = %q, want %q", got, want)
	}
	if err := hdr.SetID(""); !cmp.Equal(err, header.ErrInvalidCharacter, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetID(\"\") error = %v, want %v", err, header.ErrInvalidCharacter)
	}

	hdr2, _ := header.ParseCallID("3848276298220188511@ATLANTA.example.com")
	if hdr.Equal(hdr2) {
		t.Error("hdr.Equal(hdr2) = true, want false")
	}
	if !hdr.Equal(hdr.Clone()) {
		t.Error("hdr.Equal(hdr.Clone()) = false, want true")
	}
}
