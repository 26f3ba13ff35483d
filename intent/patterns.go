package intent

import (
	"regexp"

	"github.com/poiesic/adaptivesearch/core"
)

// Pattern tables, one ordered set per intent. The pattern score for an
// intent is (matching patterns) / (total patterns for that intent), so
// each table stays short to keep a strong match meaningful.

var directLookupPatterns = compile(
	`\bhow (?:do|can) i use\b`,
	`\b\w+ node\b`,
	`\buse the\b`,
)

var semanticPatterns = compile(
	`\bsimilar to\b`,
	`\bsomething (?:that|like|for)\b`,
	`\brelated to\b`,
	`\bany way to\b`,
)

var workflowPatterns = compile(
	`\bworkflow\b`,
	`\btemplate\b`,
	`\bexample of\b`,
	`\bstep[ -]by[ -]step\b`,
)

var propertyPatterns = compile(
	`\b(?:property|field|parameter|option)s?\b`,
	`\bconfigur(?:e|ing|ation)\b`,
	`\bcredentials?\b`,
	`\bset(?:ting)? up\b`,
)

var integrationPatterns = compile(
	`\bconnect (?:to|with)\b`,
	`\bintegrat(?:e|ion)\b`,
	`\bsync(?:ing)? (?:to|with|from|data)\b`,
	`\bsend .+ to\b`,
)

var recommendationPatterns = compile(
	`\bwhich .+ should i\b`,
	`\brecommend\b`,
	`\bbest (?:way|node|tool|service)\b`,
	`\bsuggest\b`,
)

// patternTable maps each intent to its ordered pattern set.
var patternTable = map[core.Intent][]*regexp.Regexp{
	core.IntentDirectLookup:    directLookupPatterns,
	core.IntentSemantic:        semanticPatterns,
	core.IntentWorkflowPattern: workflowPatterns,
	core.IntentPropertySearch:  propertyPatterns,
	core.IntentIntegrationTask: integrationPatterns,
	core.IntentRecommendation:  recommendationPatterns,
}

// Keyword tables, one list per intent. The keyword score for an intent
// is (matched keywords) / (list size), capped at 1.0.

var keywordTable = map[core.Intent][]string{
	core.IntentDirectLookup: {
		"node", "use", "http", "documentation", "docs",
		"parameters", "reference", "syntax",
	},
	core.IntentSemantic: {
		"find", "search", "similar", "like", "related",
		"about", "anything", "discover",
	},
	core.IntentWorkflowPattern: {
		"workflow", "template", "example", "automation",
		"steps", "build", "pipeline", "pattern",
	},
	core.IntentPropertySearch: {
		"property", "field", "parameter", "option",
		"configure", "setting", "credential", "value",
	},
	core.IntentIntegrationTask: {
		"connect", "integration", "sync", "google", "sheets",
		"slack", "webhook", "export", "import", "api",
	},
	core.IntentRecommendation: {
		"recommend", "best", "should", "suggest", "better",
		"alternative", "compare", "versus",
	},
}

// compile builds case-insensitive patterns. Queries are matched against
// the raw text, so the tables own the case handling.
func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return patterns
}
