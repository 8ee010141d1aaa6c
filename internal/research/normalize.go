package research

import (
	"strings"
	"unicode"
)

// Normalize extracts a canonical topic phrase from free text, independent of
// the source format. Deterministic: the dedupe stage depends on it.
//
// Lowercases and strips punctuation, drops stop words and short tokens, then
// prefers the first 3-token window containing a tech keyword; otherwise the
// first three meaningful tokens, title-cased. Text with no meaningful tokens
// falls back to a 50-char prefix of the input.
func (c Config) Normalize(raw string) string {
	cleaned := stripPunctuation(strings.ToLower(raw))
	words := strings.Fields(cleaned)

	stop := make(map[string]struct{}, len(c.StopWords))
	for _, w := range c.StopWords {
		stop[w] = struct{}{}
	}

	meaningful := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip || len(w) <= 2 {
			continue
		}
		meaningful = append(meaningful, w)
	}

	if len(meaningful) >= 2 {
		for i := 0; i < len(meaningful)-1; i++ {
			end := i + 3
			if end > len(meaningful) {
				end = len(meaningful)
			}
			phrase := strings.Join(meaningful[i:end], " ")
			if containsAny(phrase, c.TechKeywords) {
				return titleCase(phrase)
			}
		}

		if len(meaningful) > 3 {
			meaningful = meaningful[:3]
		}
		return titleCase(strings.Join(meaningful, " "))
	}

	if len(meaningful) > 0 {
		return titleCase(strings.Join(meaningful, " "))
	}

	// Rune-wise prefix so multibyte input cannot be cut mid-character.
	if runes := []rune(raw); len(runes) > 50 {
		return string(runes[:50])
	}
	return raw
}

func keywordDensity(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	density := float64(matches) / float64(len(keywords))
	if density > 1 {
		density = 1
	}
	return density
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
