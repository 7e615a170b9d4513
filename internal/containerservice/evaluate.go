package containerservice

import (
	"strings"

	"github.com/SystemBuilders/chains/internal/cache"
)

// Evaluate evaluates the postfix expression expr. The second return value
// is true if the result came from the cache.
//
// Expressions are cached under their tokens joined by single spaces, so
// differences in whitespace share an entry.
func (cs *SimpleContainerService) Evaluate(expr string) (float64, bool, error) {
	tokens := strings.Fields(expr)
	key := strings.Join(tokens, " ")

	cs.evalMu.Lock()
	defer cs.evalMu.Unlock()

	if result, err := cs.results.GetElement(key); err == nil {
		cs.
			log.
			Debug().
			Str("expression", key).
			Msg("cache hit")
		return result, true, nil
	}

	result, err := cs.evaluator.Evaluate(tokens)
	if err != nil {
		return 0, false, err
	}
	if err := cs.results.PutElement(key, result); err != nil && err != cache.ErrElementAlreadyExists {
		return 0, false, err
	}
	return result, false, nil
}
