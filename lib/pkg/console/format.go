package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FormatArgs renders tool-call arguments as "key: value" pairs with sorted
// keys, quoting strings the way they were given.
func FormatArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, formatValue(args[k])))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case float64:
		// JSON numbers decode as float64; print integers without the
		// trailing ".0".
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// toolStatus is the status/error pair every tool result carries.
type toolStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s toolStatus) summary() string {
	if s.Status == "error" && s.Error != "" {
		return fmt.Sprintf("error (%s)", s.Error)
	}
	if s.Status == "" {
		return "unknown"
	}
	return s.Status
}

// decodeToolStatus pulls the uniform status fields out of a loosely typed
// tool response map.
func decodeToolStatus(response map[string]any) toolStatus {
	var st toolStatus
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &st,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return st
	}
	_ = decoder.Decode(response)
	return st
}
