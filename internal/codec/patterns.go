package codec

import "strings"

// Decoders scan for fixed markers instead of using a JSON or XML parser: the
// upstream bodies are small and not reliably well-formed.

type decoder func(raw string) (string, bool)

// passthrough treats the whole body as the short URL. It never fails, so an
// error page returned with a 200 is reported as a result.
func passthrough(raw string) (string, bool) {
	return raw, true
}

// between returns the text strictly between the first open marker and the
// following close marker.
func between(open, close string) decoder {
	return func(raw string) (string, bool) {
		if raw == "" {
			return "", false
		}
		_, rest, ok := strings.Cut(raw, open)
		if !ok {
			return "", false
		}
		value, _, ok := strings.Cut(rest, close)
		if !ok {
			return "", false
		}
		return value, true
	}
}

// quotedField finds key in a JSON-like body and returns the quoted string that
// follows it, provided the value appears before the next comma. post rewrites
// the extracted value.
func quotedField(key string, post func(string) string) decoder {
	return func(raw string) (string, bool) {
		if raw == "" {
			return "", false
		}
		_, rest, ok := strings.Cut(raw, key)
		if !ok {
			return "", false
		}
		segment, _, _ := strings.Cut(rest, ",")
		_, quoted, ok := strings.Cut(segment, `"`)
		if !ok {
			return "", false
		}
		value, _, ok := strings.Cut(quoted, `"`)
		if !ok {
			return "", false
		}
		if post != nil {
			value = post(value)
		}
		return value, true
	}
}

// attribute extracts an HTML attribute value that starts right after marker
// and runs up to end. When end is missing the rest of the page is returned.
func attribute(marker, end string) decoder {
	return func(raw string) (string, bool) {
		if raw == "" {
			return "", false
		}
		_, rest, ok := strings.Cut(raw, marker)
		if !ok {
			return "", false
		}
		value, _, _ := strings.Cut(rest, end)
		return value, true
	}
}

func unescapeSlashes(s string) string {
	return strings.ReplaceAll(s, `\`, "")
}

func prefix(base string) func(string) string {
	return func(s string) string {
		return base + s
	}
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}
