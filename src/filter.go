package identrank

import (
	"sort"
	"unicode/utf8"

	"github.com/identrank/identrank/src/text"
	"github.com/identrank/identrank/src/util"
)

type scoredCandidate struct {
	result Result
	index  int
}

// FilterAndSortCandidates ranks an ad-hoc list of candidates against the
// query and returns the matching ones, best first, capped at maxCandidates
// (0 means no cap). textOf extracts the text to match from each candidate;
// the returned slice preserves the original candidate values. An empty
// query matches everything and preserves the input order. Candidates whose
// text is not valid UTF-8 are excluded.
func FilterAndSortCandidates[T any](candidates []T, textOf func(T) string, query string, maxCandidates int) ([]T, error) {
	if query == "" {
		capped := candidates
		if maxCandidates > 0 {
			capped = candidates[:util.Min(maxCandidates, len(candidates))]
		}
		out := make([]T, len(capped))
		copy(out, capped)
		return out, nil
	}

	word, err := text.NewWord(query)
	if err != nil {
		return nil, err
	}

	repository := CandidateRepository()
	scored := make([]scoredCandidate, 0, len(candidates))
	for index, item := range candidates {
		itemText := textOf(item)
		if itemText == "" || !utf8.ValidString(itemText) {
			continue
		}
		candidate, err := repository.GetOrCreateOne(itemText)
		if err != nil {
			return nil, err
		}
		if !candidate.ContainsBytes(word) {
			continue
		}
		if result := candidate.QueryMatchResult(word); result.IsSubsequence() {
			scored = append(scored, scoredCandidate{result: result, index: index})
		}
	}

	// Equal-quality candidates keep their input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return compareResults(&scored[i].result, &scored[j].result)
	})
	if maxCandidates > 0 && len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}

	out := make([]T, 0, len(scored))
	for _, s := range scored {
		out = append(out, candidates[s.index])
	}
	return out, nil
}

// FilterAndSortStrings ranks plain candidate strings.
func FilterAndSortStrings(candidates []string, query string, maxCandidates int) ([]string, error) {
	return FilterAndSortCandidates(candidates, func(s string) string { return s },
		query, maxCandidates)
}

// FilterAndSortCandidateMaps ranks structured candidates by the text under
// candidateProperty. With an empty property the candidates are expected
// under "word", mirroring completion items keyed by their insertion text.
func FilterAndSortCandidateMaps(candidates []map[string]string, candidateProperty string, query string, maxCandidates int) ([]map[string]string, error) {
	if candidateProperty == "" {
		candidateProperty = "word"
	}
	return FilterAndSortCandidates(candidates,
		func(m map[string]string) string { return m[candidateProperty] },
		query, maxCandidates)
}
