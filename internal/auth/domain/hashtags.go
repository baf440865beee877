package domain

import "strings"

// ParseHashtags splits free text on whitespace and strips one leading '#'
// from each token. Tokens left empty are dropped; duplicates are kept.
func ParseHashtags(raw string) []string {
	fields := strings.Fields(raw)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		tag := strings.TrimPrefix(f, "#")
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
