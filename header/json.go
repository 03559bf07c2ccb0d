package header

import (
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ghettovoice/siphdr/internal/errorutil"
)

// ToJSON encodes the header as `{"name":"Content-Length","value":"8"}`.
func ToJSON(hdr Header) ([]byte, error) {
	if hdr == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(headerData{Name: string(hdr.CanonicName()), Value: hdr.RenderValue()}))
}

// FromJSON decodes a header encoded with [ToJSON].
// The header type is selected by the name.
func FromJSON(data []byte) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, nil
	}
	if !Name(hd.Name).IsValid() {
		return nil, errtrace.Wrap(errorutil.Errorf("invalid header name %q", hd.Name))
	}
	hdr := New(hd.Name)
	if err := hdr.Parse(hd.Value); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}
