package query

import (
	"sort"

	"github.com/klatt42/serpmaster/internal/model"
)

// KeywordFilter selects a subset of keywords. Zero-value fields disable
// their predicate.
type KeywordFilter struct {
	// Level filters by exact competition level (easy, moderate, hard).
	// Empty or "ALL" disables the predicate.
	Level string

	// Search is a case-insensitive substring matched against the keyword
	// phrase and the level label.
	Search string

	// MinVolume drops keywords below this monthly search volume.
	MinVolume int
}

// KeywordSortKey names the field keywords are ordered by.
type KeywordSortKey string

// Sort keys for keywords.
const (
	KeywordSortScore      KeywordSortKey = "score"
	KeywordSortVolume     KeywordSortKey = "volume"
	KeywordSortDifficulty KeywordSortKey = "difficulty"
	KeywordSortCPC        KeywordSortKey = "cpc"
	KeywordSortKeyword    KeywordSortKey = "keyword"
)

// FilterKeywords returns the keywords matching the filter, preserving input
// order. The input slice is not modified.
func FilterKeywords(keywords []model.Keyword, f KeywordFilter) []model.Keyword {
	result := make([]model.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		if !enumMatches(f.Level, kw.Level) {
			continue
		}
		if kw.Volume < f.MinVolume {
			continue
		}
		if !searchMatches(f.Search, kw.Keyword, kw.Level) {
			continue
		}
		result = append(result, kw)
	}
	return result
}

// SortKeywords returns a copy of keywords ordered by the given key.
// Descending order reverses the comparator; ties keep input order.
func SortKeywords(keywords []model.Keyword, key KeywordSortKey, descending bool) []model.Keyword {
	sorted := make([]model.Keyword, len(keywords))
	copy(sorted, keywords)

	less := keywordLess(key)
	if descending {
		asc := less
		less = func(a, b model.Keyword) bool { return asc(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// keywordLess returns the ascending comparator for a sort key.
// Unknown keys fall back to score.
func keywordLess(key KeywordSortKey) func(a, b model.Keyword) bool {
	switch key {
	case KeywordSortVolume:
		return func(a, b model.Keyword) bool { return a.Volume < b.Volume }
	case KeywordSortDifficulty:
		return func(a, b model.Keyword) bool { return a.Difficulty < b.Difficulty }
	case KeywordSortCPC:
		return func(a, b model.Keyword) bool { return a.CPC < b.CPC }
	case KeywordSortKeyword:
		return func(a, b model.Keyword) bool { return a.Keyword < b.Keyword }
	default:
		return func(a, b model.Keyword) bool { return a.Score < b.Score }
	}
}
