package embed

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// IsValidURL reports whether v is a string starting with an http or https scheme.
// The rest of the URL is not checked.
func IsValidURL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsValidTitle reports whether v is a string that fits into an embed title.
func IsValidTitle(v any) bool {
	s, ok := v.(string)
	return ok && length(s) <= titleLength
}

// IsValidDescription reports whether v is a string that fits into an embed description.
func IsValidDescription(v any) bool {
	s, ok := v.(string)
	return ok && length(s) <= descriptionLength
}

// IsValidField reports whether v is a field or a mapping with a valid name and value
// and an optional boolean inline flag.
func IsValidField(v any) bool {
	_, err := parseField("field", v)
	return err == nil
}

// IsValidFieldList reports whether v is a list of at most 25 valid fields.
func IsValidFieldList(v any) bool {
	_, err := parseFields(v)
	return err == nil
}

// IsValidColor reports whether v is an already resolved color,
// i.e. a [Color] or an integer within the 24-bit RGB range.
// Color names are not resolved colors. Use [ParseColor] for those.
func IsValidColor(v any) bool {
	if _, ok := v.(string); ok {
		return false
	}
	_, err := ParseColor(v)
	return err == nil
}

// IsValidAuthorShape reports whether v is a mapping containing the keys "name" and "icon_url".
// The values are not checked.
func IsValidAuthorShape(v any) bool {
	return checkKeys("author", v, "name", "icon_url") == nil
}

// IsValidFooterShape reports whether v is a mapping containing the keys "text" and "icon_url".
// The values are not checked.
func IsValidFooterShape(v any) bool {
	return checkKeys("footer", v, "text", "icon_url") == nil
}

func checkURL(field, s string) error {
	if s == "" || IsValidURL(s) {
		return nil
	}
	return &ValidationError{
		Field:  field,
		Value:  s,
		Reason: "must start with http:// or https://",
		Err:    ErrInvalidURL,
	}
}

func checkKeys(field string, v any, keys ...string) error {
	m, ok := asMap(v)
	if !ok {
		return shapeError(field, v, "must be a mapping")
	}
	var missing []string
	for _, k := range keys {
		if _, found := m[k]; !found {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return shapeError(field, v, fmt.Sprintf("missing keys: %s", strings.Join(missing, ", ")))
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Attrs:
		return x, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []map[string]any:
		s := make([]any, len(x))
		for i, m := range x {
			s[i] = m
		}
		return s, true
	case []Field:
		s := make([]any, len(x))
		for i, f := range x {
			s[i] = f
		}
		return s, true
	}
	return nil, false
}

// asInt converts integer values as produced by the various decoders into an int.
// Floats are accepted when they have no fractional part.
// Values outside the 32-bit range are rejected on every platform.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		if x > math.MaxInt32 || x < math.MinInt32 {
			return 0, false
		}
		return int(x), true
	case uint:
		if x > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		if x > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case float32:
		return asInt(float64(x))
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	}
	return 0, false
}

func stringFrom(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", shapeError(field, v, "must be a string")
	}
	return s, nil
}

// optionalString returns the string value of key in m or an empty string when the key is missing.
func optionalString(m map[string]any, field, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	return stringFrom(field+"."+key, v)
}

func optionalInt(m map[string]any, field, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, shapeError(field+"."+key, v, "must be an integer")
	}
	return n, nil
}

// checkUnexpectedKeys returns an [UnexpectedKeysError] for all keys in m which are not allowed.
// Reported keys are prefixed with the path of the mapping, unless it is the top level.
func checkUnexpectedKeys(path string, m map[string]any, allowed []string) error {
	var keys []string
	for k := range m {
		if slices.Contains(allowed, k) {
			continue
		}
		if path != "" {
			k = path + "." + k
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	return &UnexpectedKeysError{Keys: keys}
}
