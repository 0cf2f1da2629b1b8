package command

import (
	"sort"
	"strings"
)

// DefaultSuggestions is how many names a failed lookup offers.
const DefaultSuggestions = 3

// Suggest returns up to limit registered names that contain the letters of
// name in order, best match first. A limit of zero or less means no limit.
func (t *Table) Suggest(name string, limit int) []string {
	query := []rune(strings.ToLower(strings.TrimSpace(name)))
	if len(query) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score int
	}
	var results []scored
	for _, c := range t.Commands() {
		if s := matchScore(query, []rune(c.Name)); s > 0 {
			results = append(results, scored{c.Name, s})
		}
	}

	// Sort by score descending, then by name for deterministic ordering
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].name < results[j].name
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}

// matchScore scores text against query using a greedy left-to-right scan.
// It returns 0 when some query rune is missing from text.
func matchScore(query, text []rune) int {
	matches := make([]int, 0, len(query))
	qi := 0
	for i := 0; i < len(text) && qi < len(query); i++ {
		if text[i] == query[qi] {
			matches = append(matches, i)
			qi++
		}
	}
	if qi != len(query) {
		return 0
	}

	score := 100

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += 20
		}
	}
	for _, idx := range matches {
		if idx == 0 || text[idx-1] == '_' {
			score += 15
		}
	}

	// Gaps between and before matches
	if gap := matches[len(matches)-1] - matches[0] - len(matches) + 1; gap > 0 {
		score -= gap * 2
	}
	score -= matches[0]

	if len(text) < 20 {
		score += 20 - len(text)
	}
	if len(text) >= len(query) && string(text[:len(query)]) == string(query) {
		score += 50
	}

	return max(score, 1)
}
