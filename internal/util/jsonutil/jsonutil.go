package jsonutil

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// Model replies are rarely clean JSON: the object is usually wrapped in a
// markdown fence, prefixed with prose, or carries trailing commas. The
// extraction rules below are ordered most-specific first; a candidate that
// fails to parse falls through to the next rule.
var extractPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```"),
	regexp.MustCompile("(?s)```\\s*(.*?)\\s*```"),
	regexp.MustCompile(`(?s)(\{.*\})`),
}

var (
	trailingCommaObj = regexp.MustCompile(`,\s*}`)
	trailingCommaArr = regexp.MustCompile(`,\s*]`)
	controlChars     = regexp.MustCompile("[\x00-\x1f]+")
)

// ExtractObject salvages a JSON object from free-form model output.
// It returns nil if no rule yields a parseable, non-null object.
// Arrays and bare scalars are rejected; callers always expect an object.
func ExtractObject(text string) map[string]any {
	for _, pat := range extractPatterns {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[1]
		if candidate == "" {
			candidate = m[0]
		}
		cleaned := Repair(candidate)

		var parsed map[string]any
		if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
			continue
		}
		if parsed == nil {
			continue
		}
		return parsed
	}
	return nil
}

// Repair applies the salvage pass: trailing commas before a closing brace or
// bracket are dropped, and runs of raw control characters collapse to one
// space. Literal newlines inside string values are the usual offender.
func Repair(s string) string {
	s = trailingCommaObj.ReplaceAllString(s, "}")
	s = trailingCommaArr.ReplaceAllString(s, "]")
	s = controlChars.ReplaceAllString(s, " ")
	return s
}

// HasValidContent reports whether obj carries at least one usable value.
// Empty strings, empty arrays, empty objects and nulls do not count; an
// object made only of those is treated as no answer at all.
func HasValidContent(obj map[string]any) bool {
	if len(obj) == 0 {
		return false
	}
	for _, v := range obj {
		switch x := v.(type) {
		case nil:
			continue
		case string:
			if x != "" {
				return true
			}
		case []any:
			if len(x) > 0 {
				return true
			}
		case map[string]any:
			if len(x) > 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into <, etc.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Remove trailing newline from json.Encoder.Encode
	out := bytes.TrimRight(buf.Bytes(), "\n")
	return out, nil
}

// StringifyValue renders an arbitrary decoded JSON value for prompt
// interpolation. Strings pass through, numbers render without the float
// artifacts json decoding gives them, and composites render as compact JSON.
func StringifyValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	case float64, bool:
		b, _ := json.Marshal(x)
		return string(b)
	default:
		b, err := MarshalNoEscape(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
