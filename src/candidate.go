package identrank

import (
	"github.com/identrank/identrank/src/text"
)

// Candidate is an identifier interned in the candidate repository: a Word
// plus the precomputed summaries the query path filters on. Candidates are
// immutable and shared; the repository owns their lifetime and the database
// only holds references.
type Candidate struct {
	word *text.Word
}

func newCandidate(identifier string) (*Candidate, error) {
	word, err := text.NewWord(identifier)
	if err != nil {
		return nil, err
	}
	return &Candidate{word: word}, nil
}

var candidateRepository = text.NewRepository[Candidate](newCandidate)

// CandidateRepository returns the process-wide Candidate repository.
func CandidateRepository() *text.Repository[Candidate] {
	return candidateRepository
}

// Text returns the identifier as it was added.
func (c *Candidate) Text() string { return c.word.Text() }

// Word returns the analyzed form of the identifier.
func (c *Candidate) Word() *text.Word { return c.word }

// IsEmpty reports whether the identifier was the empty string.
func (c *Candidate) IsEmpty() bool { return c.word.IsEmpty() }

// ContainsBytes is the fast reject: a query can only be a subsequence of
// the candidate if every byte of its folded form appears in the
// candidate's.
func (c *Candidate) ContainsBytes(query *text.Word) bool {
	return c.word.ContainsBytes(query)
}

// QueryMatchResult scores the candidate against the query.
func (c *Candidate) QueryMatchResult(query *text.Word) Result {
	return queryMatchResult(query, c)
}
