package parser

import "strings"

// normalise lowercases the input and strips everything but letters, digits
// and single spaces, so punctuation and stray separators never reach the
// matcher.
func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := true
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_', '/', '\'':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenise(normalised string) []string {
	if normalised == "" {
		return nil
	}
	return strings.Fields(normalised)
}
