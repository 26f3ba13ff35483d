package refine

import (
	"math/rand"
	"sync"
)

// Fixed vocabularies for the query transforms. Kept small on purpose:
// the transforms nudge the query, they do not rewrite it wholesale.

var technicalTerms = []string{"api", "webhook", "payload", "endpoint", "authentication"}

var configurationTerms = []string{"configure", "configuration", "setup", "setting", "settings", "options"}

var fillerWords = []string{"please", "just", "really", "maybe", "some", "any", "possibly"}

var propertyPhrasing = []string{"property", "properties", "field", "fields", "parameter", "parameters", "option", "options", "value", "where"}

var diversifyTerms = []string{"tutorial", "guide", "overview", "examples"}

var contextTerms = []string{"integration", "workflow", "service", "connector"}

// TermPicker selects one term from a fixed vocabulary. Implementations
// must be safe for concurrent use.
type TermPicker interface {
	Pick(terms []string) string
}

// roundRobinPicker cycles through vocabularies deterministically. A
// single position is shared across vocabularies, which is fine: the
// point is reproducibility, not fairness per list.
type roundRobinPicker struct {
	mu   sync.Mutex
	next int
}

// NewRoundRobinPicker returns the default deterministic picker.
func NewRoundRobinPicker() TermPicker {
	return &roundRobinPicker{}
}

func (p *roundRobinPicker) Pick(terms []string) string {
	if len(terms) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	term := terms[p.next%len(terms)]
	p.next++
	return term
}

// seededPicker draws terms from a seeded generator, reproducible for a
// given seed.
type seededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededPicker returns a picker backed by a seeded generator.
func NewSeededPicker(seed int64) TermPicker {
	return &seededPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *seededPicker) Pick(terms []string) string {
	if len(terms) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return terms[p.rng.Intn(len(terms))]
}
