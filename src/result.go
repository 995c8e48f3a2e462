package identrank

import "math"

// Result is the scored outcome of matching one candidate against one
// query. Results are ordered by a strict weak order over their fields, the
// most significant first:
//
//  1. subsequence matches before non-matches
//  2. query first character hitting the candidate's word root
//  3. higher query/candidate length ratio
//  4. higher word-boundary utility
//  5. query being a prefix of the candidate
//  6. matches that needed no case folding
//  7. the candidate's folded text, lexicographically
type Result struct {
	isSubsequence          bool
	firstCharSame          bool
	ratio                  float64
	wordBoundaryUtility    int
	queryIsCandidatePrefix bool
	caseExactMatch         bool
	candidate              *Candidate
}

// IsSubsequence reports whether the query was a subsequence of the
// candidate.
func (r *Result) IsSubsequence() bool { return r.isSubsequence }

// Candidate returns the scored candidate.
func (r *Result) Candidate() *Candidate { return r.candidate }

// Text returns the candidate's identifier text.
func (r *Result) Text() string { return r.candidate.Text() }

func ratiosEqual(a, b float64) bool {
	return math.Abs(a-b) < ratioTolerance
}

// compareResults reports whether a ranks strictly before b.
func compareResults(a, b *Result) bool {
	if a.isSubsequence != b.isSubsequence {
		return a.isSubsequence
	}
	if a.firstCharSame != b.firstCharSame {
		return a.firstCharSame
	}
	if !ratiosEqual(a.ratio, b.ratio) {
		return a.ratio > b.ratio
	}
	if a.wordBoundaryUtility != b.wordBoundaryUtility {
		return a.wordBoundaryUtility > b.wordBoundaryUtility
	}
	if a.queryIsCandidatePrefix != b.queryIsCandidatePrefix {
		return a.queryIsCandidatePrefix
	}
	if a.caseExactMatch != b.caseExactMatch {
		return a.caseExactMatch
	}
	return a.candidate.word.FoldedText() < b.candidate.word.FoldedText()
}

// ByQuality sorts results best first.
type ByQuality []Result

func (a ByQuality) Len() int      { return len(a) }
func (a ByQuality) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByQuality) Less(i, j int) bool {
	return compareResults(&a[i], &a[j])
}
