package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/siphdr/header"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantKind header.Kind
		want     string
		wantErr  error
	}{
		{"content length", "Content-Length: 42", header.KindContentLength, "Content-Length: 42", nil},
		{"compact name", "l:42", header.KindContentLength, "Content-Length: 42", nil},
		{"lower case name", "max-forwards: 10", header.KindMaxForwards, "Max-Forwards: 10", nil},
		{"list first element", "Supported: 100rel, timer", header.KindSupported, "Supported: 100rel", nil},
		{"from", "f: Alice <sip:alice@atlanta.com>;tag=88sja8x", header.KindFrom, `From: "Alice" <sip:alice@atlanta.com>;tag=88sja8x`, nil},
		{"call-id", "i: a84b4c76e66710@pc33.atlanta.com", header.KindCallID, "Call-ID: a84b4c76e66710@pc33.atlanta.com", nil},
		{"extension", "X-Custom: a, b", header.KindExtension, "X-Custom: a, b", nil},
		{"folded", "Subject: Hello\r\n world", header.KindSubject, "Subject: Hello world", nil},
		{"no name", "100rel", 0, "", header.ErrMalformedHeader},
		{"bad value", "Max-Forwards: abc", 0, "", header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got := hdr.Kind(); got != c.wantKind {
				t.Errorf("hdr.Kind() = %v, want %v", got, c.wantKind)
			}
			if got := hdr.String(); got != c.want {
				t.Errorf("hdr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    []string
		wantErr error
	}{
		{"single", "Expires: 3600", []string{"Expires: 3600"}, nil},
		{"options", "k: 100rel, timer", []string{"Supported: 100rel", "Supported: timer"}, nil},
		{"empty list", "Supported:", []string{"Supported: "}, nil},
		{
			"accept", "Accept: application/sdp;level=1;q=0.5, text/html",
			[]string{"Accept: application/sdp;level=1;q=0.500", "Accept: text/html"}, nil,
		},
		{
			"challenges", `WWW-Authenticate: Digest realm="a", nonce="b", Basic realm="c"`,
			[]string{`WWW-Authenticate: Digest realm="a", nonce="b"`, `WWW-Authenticate: Basic realm="c"`}, nil,
		},
		{"extension kept whole", "X-List: a, b", []string{"X-List: a, b"}, nil},
		{"bad element", "Allow: INVITE, /", nil, header.ErrMalformedHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdrs, err := header.ParseAll(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.ParseAll(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			var got []string
			for _, hdr := range hdrs {
				got = append(got, hdr.String())
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseAll(%q) mismatch\ndiff (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		wantKind header.Kind
		wantName header.Name
	}{
		{"Content-Type", header.KindContentType, "Content-Type"},
		{"c", header.KindContentType, "Content-Type"},
		{"www-authenticate", header.KindWWWAuthenticate, "WWW-Authenticate"},
		{"call-id", header.KindCallID, "Call-ID"},
		{"x-foo", header.KindExtension, "X-Foo"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := header.New(c.name)
			if got := hdr.Kind(); got != c.wantKind {
				t.Errorf("header.New(%q).Kind() = %v, want %v", c.name, got, c.wantKind)
			}
			if got := hdr.CanonicName(); got != c.wantName {
				t.Errorf("header.New(%q).CanonicName() = %q, want %q", c.name, got, c.wantName)
			}
		})
	}

	if _, ok := header.New("Subject").(*header.Subject); !ok {
		t.Errorf("header.New(\"Subject\") = %T, want *header.Subject", header.New("Subject"))
	}
	if _, ok := header.New("X-Unknown").(*header.Any); !ok {
		t.Errorf("header.New(\"X-Unknown\") = %T, want *header.Any", header.New("X-Unknown"))
	}
}
