package util

import "strings"

// ParseCommaSeparatedList splits the first query value on commas, trimming
// whitespace around each part. Later values are ignored (the UI sends one).
func ParseCommaSeparatedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	raw := values[0]
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ClampRemarks100 trims free-text remarks to 100 runes.
func ClampRemarks100(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > 100 {
		return string(r[:100])
	}
	return s
}
