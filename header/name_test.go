package header_test

import (
	"testing"

	"github.com/ghettovoice/siphdr/header"
)

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want header.Name
	}{
		{"", ""},
		{"content-length", "Content-Length"},
		{" ACCEPT-ENCODING ", "Accept-Encoding"},
		{"l", "Content-Length"},
		{"L", "Content-Length"},
		{"i", "Call-ID"},
		{"call-id", "Call-ID"},
		{"www-authenticate", "WWW-Authenticate"},
		{"x-custom-header", "X-Custom-Header"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestName_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name header.Name
		val  any
		want bool
	}{
		{"From", "f", true},
		{"Content-Type", header.Name("content-type"), true},
		{"To", "From", false},
		{"To", 1, false},
	}

	for _, c := range cases {
		t.Run(string(c.name), func(t *testing.T) {
			t.Parallel()

			if got := c.name.Equal(c.val); got != c.want {
				t.Errorf("name.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}
