package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/siphdr/header"
)

func TestGroup_Parse(t *testing.T) {
	t.Parallel()

	g := header.NewGroup(header.NewAlertInfo)
	if err := g.Parse(`<sip:a@x>;p=v, <sip:b@x>`); err != nil {
		t.Fatalf("g.Parse() error = %v, want nil", err)
	}
	if got, want := g.Len(), 2; got != want {
		t.Fatalf("g.Len() = %d, want %d", got, want)
	}

	var got []string
	for _, e := range g.All() {
		got = append(got, e.RenderValue())
	}
	if diff := cmp.Diff(got, []string{"<sip:a@x>;p=v", "<sip:b@x>"}); diff != "" {
		t.Errorf("group values mismatch\ndiff (-got +want):\n%v", diff)
	}
	if got, want := g.String(), "Alert-Info: <sip:a@x>;p=v, <sip:b@x>"; got != want {
		t.Errorf("g.String() = %q, want %q", got, want)
	}
	if !g.IsValid() {
		t.Error("g.IsValid() = false, want true")
	}
}

func TestGroup_ParseCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    []string
		wantErr error
	}{
		{"empty", "", nil, nil},
		{"with name", "Supported: 100rel, timer", []string{"100rel", "timer"}, nil},
		{"compact name", "k: path", []string{"path"}, nil},
		{"empty items", "100rel, , timer,", []string{"100rel", "timer"}, nil},
		{"folded", "Supported: 100rel,\r\n timer", []string{"100rel", "timer"}, nil},
		{"several lines", "Supported: 100rel\r\nSupported: timer, path", []string{"100rel", "timer", "path"}, nil},
		{"bad item", "100rel, /b", nil, header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			g := header.NewGroup(header.NewSupported)
			err := g.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("g.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			var got []string
			for _, e := range g.All() {
				got = append(got, e.Option())
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("group options mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestGroup_Mutations(t *testing.T) {
	t.Parallel()

	g := header.NewGroup(header.NewSupported)
	if g.IsValid() {
		t.Error("empty g.IsValid() = true, want false")
	}
	if got := g.String(); got != "" {
		t.Errorf("empty g.String() = %q, want \"\"", got)
	}
	if got, want := g.Kind(), header.KindSupported; got != want {
		t.Errorf("g.Kind() = %v, want %v", got, want)
	}

	s1, _ := header.ParseSupported("100rel")
	s2, _ := header.ParseSupported("timer")
	s3, _ := header.ParseSupported("path")
	g.Add(s1, s2, s3)
	if got, want := g.RenderCompact(), "k: 100rel, timer, path"; got != want {
		t.Errorf("g.RenderCompact() = %q, want %q", got, want)
	}

	g2 := g.Clone()
	if !g.Equal(g2) {
		t.Fatal("g.Equal(g.Clone()) = false, want true")
	}
	if err := g2.At(0).SetOption("replaces"); err != nil {
		t.Fatalf("g2.At(0).SetOption() error = %v, want nil", err)
	}
	if got, want := g.At(0).Option(), "100rel"; got != want {
		t.Errorf("g.At(0).Option() = %q, want %q after clone mutation", got, want)
	}
	if g.Equal(g2) {
		t.Error("g.Equal(g2) = true, want false")
	}

	g.Remove(1)
	if got, want := g.RenderValue(), "100rel, path"; got != want {
		t.Errorf("g.RenderValue() = %q, want %q", got, want)
	}

	g3 := header.NewGroup(header.NewSupported, s1, s3)
	if !g.Equal(g3) {
		t.Error("g.Equal(g3) = false, want true")
	}
	g3.Remove(0)
	g3.Add(s1)
	if g.Equal(g3) {
		t.Error("g.Equal(reordered) = true, want false")
	}
	if g.Equal(header.NewGroup(header.NewRequire)) {
		t.Error("g.Equal(other type) = true, want false")
	}
}

func TestAuthGroup_Parse(t *testing.T) {
	t.Parallel()

	in := `WWW-Authenticate: Digest realm="atlanta.com", nonce="84a4cc6f", Basic realm="biloxi.com"`
	g := header.NewAuthGroup(header.NewWWWAuthenticate)
	if err := g.Parse(in); err != nil {
		t.Fatalf("g.Parse() error = %v, want nil", err)
	}
	if got, want := g.Len(), 2; got != want {
		t.Fatalf("g.Len() = %d, want %d", got, want)
	}
	if got, want := g.At(0).Scheme(), "Digest"; got != want {
		t.Errorf("g.At(0).Scheme() = %q, want %q", got, want)
	}
	if got, want := g.At(1).Realm(), "biloxi.com"; got != want {
		t.Errorf("g.At(1).Realm() = %q, want %q", got, want)
	}

	want := "WWW-Authenticate: Digest realm=\"atlanta.com\", nonce=\"84a4cc6f\"\r\n" +
		"WWW-Authenticate: Basic realm=\"biloxi.com\""
	if got := g.String(); got != want {
		t.Errorf("g.String() = %q, want %q", got, want)
	}

	g2 := g.Clone()
	if !g.Equal(g2) {
		t.Error("g.Equal(g.Clone()) = false, want true")
	}
	g2.Remove(1)
	if got, want := g2.String(), g.At(0).String(); got != want {
		t.Errorf("single element g2.String() = %q, want %q", got, want)
	}
	if got, want := g.Len(), 2; got != want {
		t.Errorf("g.Len() = %d, want %d after clone mutation", got, want)
	}
}

func TestAuthGroup_ParseError(t *testing.T) {
	t.Parallel()

	g := header.NewAuthGroup(header.NewAuthorization)
	err := g.Parse(`="bob", Digest realm="x"`)
	if !cmp.Equal(err, header.ErrMalformedHeader, cmpopts.EquateErrors()) {
		t.Errorf("g.Parse() error = %v, want %v", err, header.ErrMalformedHeader)
	}
	if got := g.Len(); got != 0 {
		t.Errorf("g.Len() = %d, want 0", got)
	}
}
