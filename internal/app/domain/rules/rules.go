package rules

import (
	"regexp"
	"strings"
)

// linkRe flags anything that plausibly carries a URL: explicit schemes,
// telegram deep links, www hosts and bare domains with a short TLD.
var linkRe = regexp.MustCompile(`(?i)(?:https?://|t\.me/|telegram\.me/|\bwww\.|\.[a-z]{2,3}(?:/|\b))`)

// boundary is what may sit next to a banned word for it to count as a whole
// word. regexp's \b only knows ASCII, so cyrillic words need the explicit
// letter/digit classes.
const boundary = `[^\p{L}\p{N}_]`

type entry struct {
	word string
	re   *regexp.Regexp
}

// WordSet holds a compiled banned-word list. Entries with inner spaces are
// matched as case-insensitive substrings, single words only at word
// boundaries, in configuration order.
type WordSet struct {
	entries []entry
}

func CompileWords(words []string) *WordSet {
	ws := &WordSet{entries: make([]entry, 0, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}

		if strings.Contains(w, " ") {
			ws.entries = append(ws.entries, entry{word: w})
			continue
		}

		re := regexp.MustCompile(`(?i)(?:\A|` + boundary + `)` + regexp.QuoteMeta(w) + `(?:` + boundary + `|\z)`)
		ws.entries = append(ws.entries, entry{word: w, re: re})
	}

	return ws
}

// Match returns the first configured word found in text.
func (ws *WordSet) Match(text string) (string, bool) {
	if text == "" || len(ws.entries) == 0 {
		return "", false
	}

	lower := strings.ToLower(text)
	for _, e := range ws.entries {
		if e.re == nil {
			if strings.Contains(lower, strings.ToLower(e.word)) {
				return e.word, true
			}
			continue
		}

		if e.re.MatchString(text) {
			return e.word, true
		}
	}

	return "", false
}

func HasLink(text string) bool {
	return text != "" && linkRe.MatchString(text)
}

// LinkAllowed reports whether any allowlist entry occurs in the message.
// The match is a plain substring over the whole text, not over the found
// link: a message mentioning an allowed domain anywhere passes even when it
// also carries another URL.
func LinkAllowed(text string, allowlist []string) bool {
	if len(allowlist) == 0 {
		return false
	}

	lower := strings.ToLower(text)
	for _, a := range allowlist {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" && strings.Contains(lower, a) {
			return true
		}
	}

	return false
}
