package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"library-assistant/internal/model"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// stopwords are dropped when simplifying policy questions before the
// similarity search, so "how do I obtain a library card" matches the
// same documents as "library card requirements".
var stopwords = map[string]struct{}{
	"what": {}, "are": {}, "the": {}, "is": {}, "at": {}, "to": {}, "a": {},
	"of": {}, "for": {}, "i": {}, "do": {}, "in": {}, "on": {}, "by": {},
	"can": {}, "how": {}, "and": {}, "an": {}, "does": {}, "with": {},
	"from": {}, "my": {}, "me": {}, "about": {}, "obtain": {}, "get": {},
	"apply": {}, "steps": {}, "process": {}, "please": {}, "provide": {},
	"information": {}, "explain": {}, "give": {}, "list": {}, "details": {},
	"tell": {}, "need": {}, "show": {}, "am": {}, "required": {},
	"requirements": {}, "card": {}, "way": {}, "would": {}, "like": {},
}

// searchFillers are chat phrasing around the actual title in a search
// message ("do you have ...", "find me ...").
var searchFillers = []string{
	"do you have", "can you find", "search for", "look for", "look up",
	"find me", "find", "is there", "copies of", "a copy of",
}

// tailTurns returns the last n turns, preserving order.
func tailTurns(turns []model.Turn, n int) []model.Turn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// historyText renders turns as a prompt-friendly transcript.
func historyText(turns []model.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		speaker := "Human"
		if t.Role == model.RoleAssistant {
			speaker = "AI"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, t.Text))
	}
	return strings.Join(lines, "\n")
}

// historyLines renders turns as plain strings for the classifier.
func historyLines(turns []model.Turn) []string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		speaker := "Human"
		if t.Role == model.RoleAssistant {
			speaker = "AI"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, t.Text))
	}
	return lines
}

// cleanQueryText strips chat phrasing and punctuation from a search
// message, leaving the likely title/topic phrase.
func cleanQueryText(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = nonWordRe.ReplaceAllString(q, "")
	for _, filler := range searchFillers {
		q = strings.ReplaceAll(q, filler, "")
	}
	return strings.Join(strings.Fields(q), " ")
}

// simplifyQuery drops stopwords from a policy question.
func simplifyQuery(query string) string {
	q := strings.ToLower(query)
	q = nonWordRe.ReplaceAllString(q, "")
	kept := make([]string, 0)
	for _, word := range strings.Fields(q) {
		if _, skip := stopwords[word]; !skip {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func payloadString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
