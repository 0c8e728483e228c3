//go:build !purego

package utils

import (
	gojson "github.com/goccy/go-json" //nolint:depguard
)

// UnmarshalJSON decodes data into val.
func UnmarshalJSON(data []byte, val any) error {
	return gojson.UnmarshalWithOption(data, val)
}
