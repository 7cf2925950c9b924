// Package request implements the HTTP dispatcher shared by every outbound call of selene: it sends one request,
// classifies the HTTP status of the response and decodes the body into either the caller's type or a typed error.
//
// The dispatcher never retries, caches or batches. Timeouts belong to the *http.Client given at construction and
// cancellation to the context of each call.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// Validator is implemented by response types that must reject a body which decodes without error but lacks
// required members.
type Validator interface {
	Validate() error
}

// Handler sends requests through a shared http.Client. It holds no mutable state and is safe for concurrent use.
type Handler struct {
	client  *http.Client
	agent   string
	log     zerolog.Logger
	verbose bool
}

// New returns a Handler using client. userAgent is sent with every request when not empty. In verbose mode the
// serialized body of every request is logged at debug level.
func New(client *http.Client, userAgent string, logger zerolog.Logger, verbose bool) *Handler {
	if client == nil {
		client = http.DefaultClient
	}

	return &Handler{client: client, agent: userAgent, log: logger, verbose: verbose}
}

// Send performs one HTTP call with the given verb to rawURL, sending body as JSON when not nil, and decodes the
// response into T. An empty successful response yields the zero value of T.
func Send[T any](ctx context.Context, h *Handler, method, rawURL string, body interface{}) (T, error) {
	var zero T

	u, err := url.Parse(rawURL)
	if err != nil {
		return zero, &Error{Kind: KindURL, Err: err}
	}

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return zero, &Error{Kind: KindURL, Err: fmt.Errorf("unsupported method %q", method)}
	}

	path := u.Path

	var payload io.Reader

	var pl []byte

	if body != nil {
		if pl, err = json.Marshal(body); err != nil {
			return zero, &Error{Kind: KindDecode, Err: err}
		}

		payload = bytes.NewReader(pl)
	}

	if h.verbose && pl != nil {
		h.log.Debug().Str("method", method).Str("path", path).RawJSON("body", pl).Msg("sending request")
	} else {
		h.log.Debug().Str("method", method).Str("path", path).Msg("sending request")
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return zero, &Error{Kind: KindURL, Err: err}
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if h.agent != "" {
		req.Header.Set("User-Agent", h.agent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return zero, &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &Error{Kind: KindTransport, Err: err}
	}

	text, err := Classify(path, resp.StatusCode, string(raw))
	if err != nil {
		return zero, err
	}

	return Decode[T](text)
}

// Classify maps an HTTP status to either the unchanged body text or a typed error carrying path and text.
func Classify(path string, status int, text string) (string, error) {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return text, nil
	case http.StatusNotFound:
		return "", &Error{Kind: KindNotFound, Path: path}
	case http.StatusBadRequest:
		return "", &Error{Kind: KindBadRequest, Path: path, Text: text}
	case http.StatusUnauthorized:
		return "", &Error{Kind: KindUnauthorized, Path: path, Text: text}
	case http.StatusTooManyRequests:
		return "", &Error{Kind: KindTooManyRequests, Path: path}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return "", &Error{Kind: KindInternal, Status: status, Path: path, Text: text}
	}

	return "", &Error{Kind: KindUnknown, Status: status, Text: text}
}

// Decode decodes text into T. When that fails, text is tried as an RPCError; the first successful attempt wins.
// If neither matches, the error carries the failure of the T attempt and the raw text.
func Decode[T any](text string) (T, error) {
	var zero T

	if text == "" {
		return zero, nil
	}

	v, err := decodeAs[T](text)
	if err == nil {
		return v, nil
	}

	if e, errRPC := decodeAs[RPCError](text); errRPC == nil {
		return zero, &Error{Kind: KindRPC, Code: e.Error.Code, Message: e.Error.Message}
	}

	return zero, &Error{Kind: KindDecode, Err: err, Text: text}
}

func decodeAs[T any](text string) (T, error) {
	var v T

	if err := json.UnmarshalFromString(text, &v); err != nil {
		return v, err
	}

	if val, ok := any(&v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return v, err
		}
	}

	return v, nil
}

// Get sends a GET request to rawURL.
func Get[T any](ctx context.Context, h *Handler, rawURL string) (T, error) {
	return Send[T](ctx, h, http.MethodGet, rawURL, nil)
}

// Post sends body to rawURL with a POST request.
func Post[T any](ctx context.Context, h *Handler, rawURL string, body interface{}) (T, error) {
	return Send[T](ctx, h, http.MethodPost, rawURL, body)
}

// Put sends body to rawURL with a PUT request.
func Put[T any](ctx context.Context, h *Handler, rawURL string, body interface{}) (T, error) {
	return Send[T](ctx, h, http.MethodPut, rawURL, body)
}

// Patch sends body to rawURL with a PATCH request.
func Patch[T any](ctx context.Context, h *Handler, rawURL string, body interface{}) (T, error) {
	return Send[T](ctx, h, http.MethodPatch, rawURL, body)
}

// Delete sends a DELETE request to rawURL, the response body is expected to be empty.
func Delete(ctx context.Context, h *Handler, rawURL string) error {
	_, err := Send[struct{}](ctx, h, http.MethodDelete, rawURL, nil)

	return err
}
