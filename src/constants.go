package identrank

const (
	// A query character that lands on a word boundary of the candidate is
	// worth ten times a character that lands in the middle of a word.
	// Identifiers are mostly matched by their initials ("fb" for "foo_bar"),
	// so boundary hits dominate the utility while mid-word hits still break
	// ties between candidates with the same boundary coverage.
	wordBoundaryCharScore = 10
	plainCharScore        = 1

	// Length ratios closer than this are considered equal when ordering
	// results.
	ratioTolerance = 1e-8

	// Memoized query results are dropped wholesale once the cache grows past
	// this many entries.
	maxQueryCacheEntries = 1024
)
