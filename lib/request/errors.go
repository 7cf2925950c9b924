package request

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a failed request.
type Kind int

// Error kinds returned by the Handler.
const (
	KindDecode Kind = iota + 1
	KindTransport
	KindURL
	KindNotFound
	KindBadRequest
	KindUnauthorized
	KindTooManyRequests
	KindInternal
	KindUnknown
	KindRPC
	KindInvalidFeeResponse
)

// Sentinel errors, one per Kind, to be used with errors.Is.
var (
	ErrDecode             = errors.New("deserialization error")
	ErrTransport          = errors.New("transport error")
	ErrURL                = errors.New("invalid url")
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrInternal           = errors.New("internal error")
	ErrUnknown            = errors.New("unknown error")
	ErrRPC                = errors.New("rpc error")
	ErrInvalidFeeResponse = errors.New("invalid fee response type")
)

var sentinels = map[Kind]error{ //nolint:gochecknoglobals // read-only lookup
	KindDecode:             ErrDecode,
	KindTransport:          ErrTransport,
	KindURL:                ErrURL,
	KindNotFound:           ErrNotFound,
	KindBadRequest:         ErrBadRequest,
	KindUnauthorized:       ErrUnauthorized,
	KindTooManyRequests:    ErrTooManyRequests,
	KindInternal:           ErrInternal,
	KindUnknown:            ErrUnknown,
	KindRPC:                ErrRPC,
	KindInvalidFeeResponse: ErrInvalidFeeResponse,
}

// String returns the sentinel message of the kind.
func (k Kind) String() string {
	if s, ok := sentinels[k]; ok {
		return s.Error()
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the error returned by every failed request. Only the fields relevant to its Kind are set: Path for
// NotFound, BadRequest, Unauthorized, TooManyRequests and Internal; Status for Internal and Unknown; Text (the raw
// response body) for Decode, BadRequest, Unauthorized, Internal and Unknown; Code and Message for RPC errors. Err
// holds the underlying cause of Decode, Transport and URL errors.
type Error struct {
	Kind    Kind
	Path    string
	Status  int
	Text    string
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDecode:
		return fmt.Sprintf("deserialization error: %v. response: %s", e.Err, e.Text)
	case KindTransport:
		return fmt.Sprintf("transport error: %v", e.Err)
	case KindURL:
		return fmt.Sprintf("invalid url: %v", e.Err)
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Path)
	case KindBadRequest:
		return fmt.Sprintf("bad request for %s %s", e.Path, e.Text)
	case KindUnauthorized:
		return fmt.Sprintf("unauthorized for %s %s", e.Path, e.Text)
	case KindTooManyRequests:
		return fmt.Sprintf("too many requests: %s", e.Path)
	case KindInternal:
		return fmt.Sprintf("internal error. http code %d %s %s", e.Status, e.Path, e.Text)
	case KindUnknown:
		return fmt.Sprintf("unknown error http code: %d %s", e.Status, e.Text)
	case KindRPC:
		return fmt.Sprintf("rpc error code:%d message:%s", e.Code, e.Message)
	case KindInvalidFeeResponse:
		return fmt.Sprintf("invalid fee response type %s", e.Text)
	}

	return e.Kind.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error of e's Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]

	return ok && s == target
}

// IsKind reports whether err is, or wraps, a request *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error

	return errors.As(err, &e) && e.Kind == k
}
