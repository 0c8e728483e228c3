//go:build purego

package utils

import (
	"encoding/json" //nolint:depguard
)

// UnmarshalJSON decodes data into val.
func UnmarshalJSON(data []byte, val any) error {
	return json.Unmarshal(data, val)
}
