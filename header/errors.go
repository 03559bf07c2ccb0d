package header

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/siphdr/internal/errorutil"

const (
	// ErrMalformedHeader is returned when the header text can not be interpreted under the header grammar.
	ErrMalformedHeader errorutil.Error = "malformed header"
	// ErrOutOfRange is returned when a numeric value assigned to a header is outside of the allowed range.
	ErrOutOfRange errorutil.Error = "value out of range"
	// ErrInvalidCharacter is returned when a value assigned to a header contains disallowed characters.
	ErrInvalidCharacter errorutil.Error = "invalid character"
	// ErrProtocol is returned when a required value is missing.
	ErrProtocol errorutil.Error = "protocol error"
)

func newMalformedErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedHeader, args...) //errtrace:skip
}

func newOutOfRangeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrOutOfRange, args...) //errtrace:skip
}

func newInvalidCharErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidCharacter, args...) //errtrace:skip
}

func newProtocolErr(args ...any) error {
	return errorutil.NewWrapperError(ErrProtocol, args...) //errtrace:skip
}
