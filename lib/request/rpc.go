package request

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"strings"
)

// JSON-RPC envelope constants. The provider does not use the id for anything, calls are never multiplexed.
const (
	Version = "2.0"
	ID      = "1"
)

// ErrNoResult is returned when a JSON-RPC response carries no "result" member.
var ErrNoResult = errors.New("json-rpc response without result")

// Req is a JSON-RPC request envelope. Only Method and Params vary between calls.
type Req[P any] struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  P      `json:"params"`
}

// NewReq returns the request envelope for method with the given params.
func NewReq[P any](method string, params P) Req[P] {
	return Req[P]{JSONRPC: Version, ID: ID, Method: method, Params: params}
}

// Res is a JSON-RPC response envelope.
type Res[T any] struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Result  T      `json:"result"`
}

// UnmarshalJSON decodes the envelope and fails when "result" is missing, so that an error-shaped body is not taken
// for a successful response. Both string and numeric ids are accepted.
func (r *Res[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		JSONRPC string             `json:"jsonrpc"`
		ID      stdjson.RawMessage `json:"id"`
		Result  stdjson.RawMessage `json:"result"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw.Result == nil {
		return ErrNoResult
	}

	r.JSONRPC = raw.JSONRPC
	r.ID = strings.Trim(string(raw.ID), `"`)

	return json.Unmarshal(raw.Result, &r.Result)
}

// RPCError is the body of an application-level error returned with a successful HTTP status.
type RPCError struct {
	ID    string        `json:"id"`
	Error *RPCErrorBody `json:"error"`
}

// RPCErrorBody contains the code and message of an RPCError.
type RPCErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Validate makes sure the body really is an error object.
func (e RPCError) Validate() error {
	if e.Error == nil {
		return ErrNoRPCError
	}

	return nil
}

// ErrNoRPCError is returned when a body does not contain an "error" member.
var ErrNoRPCError = errors.New("json-rpc body without error")

// Call sends a JSON-RPC request for method to endpoint and returns the decoded result.
func Call[T any, P any](ctx context.Context, h *Handler, endpoint, method string, params P) (T, error) {
	res, err := Post[Res[T]](ctx, h, endpoint, NewReq(method, params))

	return res.Result, err
}
