package header_test

import (
	"encoding/json"
	"testing"

	"github.com/ghettovoice/siphdr/header"
)

func TestToJSON_FromJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"content length", "l: 8", `{"name":"Content-Length","value":"8"}`},
		{"content type", "c: application/sdp", `{"name":"Content-Type","value":"application/sdp"}`},
		{"to", `To: <sip:bob@biloxi.com>;tag=1`, `{"name":"To","value":"<sip:bob@biloxi.com>;tag=1"}`},
		{"extension", "X-Foo: bar", `{"name":"X-Foo","value":"bar"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.in)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.in, err)
			}
			data, err := header.ToJSON(hdr)
			if err != nil {
				t.Fatalf("header.ToJSON() error = %v, want nil", err)
			}
			if got := string(data); got != c.want {
				t.Errorf("header.ToJSON() = %s, want %s", got, c.want)
			}

			hdr2, err := header.FromJSON(data)
			if err != nil {
				t.Fatalf("header.FromJSON(%s) error = %v, want nil", data, err)
			}
			if !hdr.Equal(hdr2) {
				t.Errorf("header.FromJSON(%s) = %+s, want %+s", data, hdr2, hdr)
			}
		})
	}
}

func TestFromJSON_Errors(t *testing.T) {
	t.Parallel()

	hdr, err := header.FromJSON([]byte("null"))
	if err != nil || hdr != nil {
		t.Errorf("header.FromJSON(null) = (%v, %v), want (nil, nil)", hdr, err)
	}
	if _, err := header.FromJSON([]byte(`{"name":"bad name","value":"x"}`)); err == nil {
		t.Error("header.FromJSON(bad name) error = nil, want error")
	}
	if _, err := header.FromJSON([]byte(`{"name":"Expires","value":"soon"}`)); err == nil {
		t.Error("header.FromJSON(bad value) error = nil, want error")
	}
	if _, err := header.FromJSON([]byte(`[1]`)); err == nil {
		t.Error("header.FromJSON(array) error = nil, want error")
	}
	if data, _ := header.ToJSON(nil); string(data) != "null" {
		t.Errorf("header.ToJSON(nil) = %s, want null", data)
	}
}

func TestHeader_MarshalJSON(t *testing.T) {
	t.Parallel()

	hdr, _ := header.ParseMaxForwards("70")
	data, err := json.Marshal(hdr)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v, want nil", err)
	}
	if got, want := string(data), `{"name":"Max-Forwards","value":"70"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	hdr2 := header.NewMaxForwards()
	if err := json.Unmarshal([]byte(`{"name":"Max-Forwards","value":"10"}`), hdr2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if got := hdr2.Hops(); got != 10 {
		t.Errorf("hdr2.Hops() = %d, want 10", got)
	}
	if err := json.Unmarshal([]byte(`{"name":"Expires","value":"10"}`), hdr2); err == nil {
		t.Error("json.Unmarshal(other header) error = nil, want error")
	}

	hdr3 := header.NewFrom()
	if err := json.Unmarshal([]byte(`{"name":"f","value":"<sip:a@b>"}`), hdr3); err != nil {
		t.Fatalf("json.Unmarshal(compact) error = %v, want nil", err)
	}
	if got, want := hdr3.String(), "From: <sip:a@b>"; got != want {
		t.Errorf("hdr3.String() = %q, want %q", got, want)
	}

	text, err := hdr3.MarshalText()
	if err != nil {
		t.Fatalf("hdr3.MarshalText() error = %v, want nil", err)
	}
	hdr4 := header.NewFrom()
	if err := hdr4.UnmarshalText(text); err != nil {
		t.Fatalf("hdr4.UnmarshalText(%q) error = %v, want nil", text, err)
	}
	if !hdr3.Equal(hdr4) {
		t.Errorf("hdr4 = %+s, want %+s", hdr4, hdr3)
	}
}
