// Package types contains the request and response bodies of the Helius APIs: DAS asset queries, enhanced
// transactions, webhooks and priority fees, plus the enum catalogs they use.
//
// Large catalogs (transaction types, sources, program names, interfaces, token standards) are open: a value the
// provider adds after this package was written decodes as its raw string and IsKnown reports false.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// Errors returned while decoding provider bodies.
var (
	ErrNotANumber     = errors.New("expected a string or number")
	ErrNoWebhookID    = errors.New("webhook without webhookID")
	ErrNoDomainNames  = errors.New("names without domainNames")
	ErrUnknownFeeType = errors.New("fee estimate without priorityFeeEstimate or priorityFeeLevels")
)

// Number is a decimal number the provider sends either bare or quoted. The zero value marshals as 0.
type Number string

// UnmarshalJSON accepts 2, 2.5 and "2".
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))

	if s == "null" {
		*n = ""

		return nil
	}

	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotANumber, s)
		}

		s = strings.TrimSpace(unq)
	}

	if _, err := strconv.ParseFloat(s, 64); err != nil || strings.ContainsAny(s, "xXnNiI_") {
		return fmt.Errorf("%w: %s", ErrNotANumber, s)
	}

	*n = Number(s)

	return nil
}

// MarshalJSON writes n as a bare JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}

	return []byte(n), nil
}

// Int64 returns n as an integer.
func (n Number) Int64() (int64, error) {
	if n == "" {
		return 0, nil
	}

	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns n as a float.
func (n Number) Float64() (float64, error) {
	if n == "" {
		return 0, nil
	}

	return strconv.ParseFloat(string(n), 64)
}

func (n Number) String() string {
	if n == "" {
		return "0"
	}

	return string(n)
}
