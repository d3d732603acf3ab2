package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a caller-supplied task identifier. Callers may supply identifiers as
// strings or as integers; the original form is preserved so that ordering
// compares numeric identifiers numerically and everything else lexically.
// The engine never generates or mutates identifiers.
type ID struct {
	text  string
	num   int64
	isNum bool
}

// StringID returns an ID for a string-form identifier.
func StringID(s string) ID {
	return ID{text: s}
}

// IntID returns an ID for an integer-form identifier.
func IntID(n int64) ID {
	return ID{num: n, isNum: true}
}

// IsZero reports whether the ID is absent (no string or integer was supplied).
func (id ID) IsZero() bool {
	return !id.isNum && id.text == ""
}

// Numeric reports whether the identifier was supplied as an integer.
func (id ID) Numeric() bool {
	return id.isNum
}

// String returns the canonical string form of the identifier. Integer and
// string forms that render identically (7 and "7") share a canonical form,
// which is what dependency references resolve against.
func (id ID) String() string {
	if id.isNum {
		return strconv.FormatInt(id.num, 10)
	}
	return id.text
}

// Less orders identifiers for tie-breaking: numerically when both were
// supplied numeric, lexically otherwise.
func (id ID) Less(other ID) bool {
	if id.isNum && other.isNum {
		return id.num < other.num
	}
	return id.String() < other.String()
}

// MarshalJSON writes the identifier back out in its original form.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isNum {
		return strconv.AppendInt(nil, id.num, 10), nil
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON accepts a JSON string or integer. Anything else (floats,
// objects, arrays) is rejected at decode time.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ID{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return fmt.Errorf("task id must be a string or integer, got %s", trimmed)
	}
	*id = IntID(n)
	return nil
}

// FromAny converts a dynamically-typed value (as produced by TOML or YAML
// decoding) into an ID. Supported forms are strings and integer kinds.
func FromAny(v any) (ID, error) {
	switch x := v.(type) {
	case nil:
		return ID{}, nil
	case string:
		return StringID(x), nil
	case int:
		return IntID(int64(x)), nil
	case int64:
		return IntID(x), nil
	case uint64:
		return IntID(int64(x)), nil
	case float64:
		// TOML/JSON decoders hand integers back as floats in some paths;
		// accept only exact integers.
		if x == float64(int64(x)) {
			return IntID(int64(x)), nil
		}
		return ID{}, fmt.Errorf("task id must be a string or integer, got %v", x)
	default:
		return ID{}, fmt.Errorf("task id must be a string or integer, got %T", v)
	}
}
