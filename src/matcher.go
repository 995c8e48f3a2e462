package identrank

import "github.com/identrank/identrank/src/text"

// isWordBoundary reports whether candidate position j starts a word: the
// first character, a character following punctuation, a camelCase hump, or
// a letter following a non-letter.
func isWordBoundary(characters []*text.Character, j int) bool {
	if j == 0 {
		return true
	}
	prev, cur := characters[j-1], characters[j]
	if prev.IsPunctuation() && !cur.IsPunctuation() {
		return true
	}
	if prev.IsLetter() && !prev.IsUppercase() && cur.IsUppercase() {
		return true
	}
	if !prev.IsLetter() && cur.IsLetter() {
		return true
	}
	return false
}

// queryMatchResult decides whether the query is a subsequence of the
// candidate under case- and diacritic-insensitive character equivalence
// and computes the ranking features.
//
// The scan is greedy left-to-right with a single-step look-ahead: a hit in
// the middle of a word is deferred to the next position when the same query
// character also matches there on a word boundary and the rest of the query
// still fits. This is an approximation of the optimal alignment that is
// exact for the common identifier shapes (camelCase, snake_case, prefixes).
func queryMatchResult(query *text.Word, candidate *Candidate) Result {
	queryChars := query.Characters()
	candidateChars := candidate.word.Characters()
	q, c := len(queryChars), len(candidateChars)

	result := Result{candidate: candidate}
	if q == 0 {
		result.isSubsequence = true
		result.queryIsCandidatePrefix = true
		result.caseExactMatch = true
		return result
	}
	if q > c || !candidate.ContainsBytes(query) {
		return result
	}

	utility := 0
	caseExact := true
	firstMatchAtStart := false
	i, j := 0, 0
	for i < q && j < c {
		if !queryChars[i].Matches(candidateChars[j]) {
			j++
			continue
		}
		hit := j
		if !isWordBoundary(candidateChars, j) && j+1 < c &&
			queryChars[i].Matches(candidateChars[j+1]) &&
			isWordBoundary(candidateChars, j+1) &&
			c-(j+1) >= q-i {
			hit = j + 1
		}
		if isWordBoundary(candidateChars, hit) {
			utility += wordBoundaryCharScore
		} else {
			utility += plainCharScore
		}
		if i == 0 && hit == 0 {
			firstMatchAtStart = true
		}
		if queryChars[i].Normal() != candidateChars[hit].Normal() {
			caseExact = false
		}
		i++
		j = hit + 1
	}
	if i != q {
		return result
	}

	result.isSubsequence = true
	result.wordBoundaryUtility = utility
	result.caseExactMatch = caseExact
	result.ratio = float64(q) / float64(c)

	// A prefix is a property of the strings, not of the alignment above:
	// the look-ahead may have moved a hit off the diagonal even when the
	// first q characters match in place.
	prefix := true
	for k := 0; k < q; k++ {
		if !queryChars[k].Matches(candidateChars[k]) {
			prefix = false
			break
		}
	}
	result.queryIsCandidatePrefix = prefix

	result.firstCharSame = firstMatchAtStart &&
		candidateChars[0].IsBase() &&
		queryChars[0].Normal() == candidateChars[0].Base()
	return result
}
