package naming

import (
	"cmp"
	"slices"
	"strings"
)

// MinSuggestionScore is the similarity a candidate needs to be suggested.
const MinSuggestionScore = 0.5

// Suggest returns up to limit candidates that look like name, best first.
// Comparison ignores case and underscores. Ties keep the candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	norm := normalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, normalizeIdent(c))
		if score >= MinSuggestionScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(x, y scored) int {
		return cmp.Compare(y.score, x.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}

func normalizeIdent(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}
