package intent

import (
	"strings"

	"github.com/poiesic/adaptivesearch/core"
)

// maxKeyTerms caps the number of extracted key terms per query.
const maxKeyTerms = 5

// Stop words to skip when padding key terms with generic words
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "how": true, "what": true, "can": true,
	"should": true, "would": true, "could": true, "there": true, "their": true,
}

// tokenize splits text into words, lowercases, and trims punctuation,
// preserving the original word order.
func tokenize(text string) []string {
	words := strings.Fields(text)
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		w := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}
	return cleaned
}

// extractKeyTerms picks up to maxKeyTerms terms from the query.
// Words longer than 3 characters that are also keywords of the winning
// intent are taken first; the list is then padded with generic words
// longer than 4 characters, preserving original order throughout.
func extractKeyTerms(lower string, winner core.Intent) []string {
	words := tokenize(lower)

	keywords := make(map[string]bool, len(keywordTable[winner]))
	for _, kw := range keywordTable[winner] {
		keywords[kw] = true
	}

	terms := make([]string, 0, maxKeyTerms)
	seen := make(map[string]bool)

	for _, w := range words {
		if len(w) > 3 && keywords[w] && !seen[w] {
			terms = append(terms, w)
			seen[w] = true
			if len(terms) == maxKeyTerms {
				return terms
			}
		}
	}

	for _, w := range words {
		if len(w) > 4 && !seen[w] && !stopWords[w] {
			terms = append(terms, w)
			seen[w] = true
			if len(terms) == maxKeyTerms {
				break
			}
		}
	}

	return terms
}
