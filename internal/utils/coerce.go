// internal/utils/coerce.go
package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Form-originated payloads deliver numbers and booleans as strings. The
// Flex types accept either representation and coerce unparseable input to
// the zero value instead of rejecting the request.

type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt(coerceInt(data))
	return nil
}

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(coerceFloat(data))
	return nil
}

type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		b = false
	}
	*f = FlexBool(b)
	return nil
}

func coerceInt(data []byte) int {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		return n
	}
	n, err := strconv.Atoi(unquote(data))
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(data []byte) float64 {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return n
	}
	n, err := strconv.ParseFloat(unquote(data), 64)
	if err != nil {
		return 0
	}
	return n
}

func unquote(data []byte) string {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		return strings.TrimSpace(unquoted)
	}
	return s
}

// Query-parameter counterparts with the same parse-default-zero semantics.

func ParseIntDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func ParseFloatDefault(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}
