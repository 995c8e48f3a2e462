package identrank

import (
	"sync"

	"github.com/identrank/identrank/src/text"
	"github.com/identrank/identrank/src/util"
)

// FilepathToIdentifiers maps a file path to the identifiers seen in it.
type FilepathToIdentifiers map[string][]string

// FiletypeIdentifierMap maps a filetype to the identifiers of its files.
type FiletypeIdentifierMap map[string]FilepathToIdentifiers

// candidateSet is the per-(filetype, filepath) set of interned candidates.
// The database hands out shared references to these sets; each set carries
// its own lock so readers can snapshot without holding the database lock.
type candidateSet struct {
	mutex      sync.RWMutex
	candidates map[*Candidate]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{candidates: make(map[*Candidate]struct{})}
}

func (s *candidateSet) add(candidates []*Candidate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, candidate := range candidates {
		if !candidate.IsEmpty() {
			s.candidates[candidate] = struct{}{}
		}
	}
}

func (s *candidateSet) snapshot() []*Candidate {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	candidates := make([]*Candidate, 0, len(s.candidates))
	for candidate := range s.candidates {
		candidates = append(candidates, candidate)
	}
	return candidates
}

// IdentifierDatabase stores the identifiers the completer has seen, keyed
// by filetype and file, as shared references into the candidate
// repository. It is safe for concurrent use: mutators hold the database
// lock to find, create or replace a set and the set's own lock to insert
// into it; queries only snapshot the relevant set references under the
// database lock and score outside any lock.
type IdentifierDatabase struct {
	mutex                sync.Mutex
	filetypeCandidateMap map[string]map[string]*candidateSet
	candidates           *text.Repository[Candidate]
}

// NewIdentifierDatabase returns an empty database backed by the
// process-wide candidate repository.
func NewIdentifierDatabase() *IdentifierDatabase {
	return &IdentifierDatabase{
		filetypeCandidateMap: make(map[string]map[string]*candidateSet),
		candidates:           CandidateRepository(),
	}
}

// getCandidateSet returns the set for (filetype, filepath), creating the
// intermediate maps lazily.
func (d *IdentifierDatabase) getCandidateSet(filetype string, filepath string) *candidateSet {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	files, ok := d.filetypeCandidateMap[filetype]
	if !ok {
		files = make(map[string]*candidateSet)
		d.filetypeCandidateMap[filetype] = files
	}
	set, ok := files[filepath]
	if !ok {
		set = newCandidateSet()
		files[filepath] = set
	}
	return set
}

// AddIdentifiersForFile interns the identifiers and inserts the references
// into the (filetype, filepath) set. Adding the same identifier twice is a
// no-op; empty identifiers are excluded.
func (d *IdentifierDatabase) AddIdentifiersForFile(identifiers []string, filetype string, filepath string) error {
	candidates, err := d.candidates.GetOrCreate(identifiers)
	if err != nil {
		return err
	}
	d.getCandidateSet(filetype, filepath).add(candidates)
	return nil
}

// AddIdentifiers inserts every (filetype, filepath, identifiers) tuple of
// the map.
func (d *IdentifierDatabase) AddIdentifiers(identifiers FiletypeIdentifierMap) error {
	for filetype, files := range identifiers {
		for filepath, fileIdentifiers := range files {
			if err := d.AddIdentifiersForFile(fileIdentifiers, filetype, filepath); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearCandidatesStoredForFile replaces the (filetype, filepath) set with
// an empty one. Candidates remain interned and may still be referenced
// from other files or filetypes. No-op if the set does not exist.
func (d *IdentifierDatabase) ClearCandidatesStoredForFile(filetype string, filepath string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	files, ok := d.filetypeCandidateMap[filetype]
	if !ok {
		return
	}
	if _, ok := files[filepath]; ok {
		files[filepath] = newCandidateSet()
	}
}

// snapshotSets collects shared references to every set of the filetype.
// An empty filetype selects every filetype.
func (d *IdentifierDatabase) snapshotSets(filetype string) []*candidateSet {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var sets []*candidateSet
	if filetype == "" {
		for _, files := range d.filetypeCandidateMap {
			for _, set := range files {
				sets = append(sets, set)
			}
		}
		return sets
	}
	for _, set := range d.filetypeCandidateMap[filetype] {
		sets = append(sets, set)
	}
	return sets
}

// ResultsForQueryAndType scores every candidate stored for the filetype
// against the query and returns the best maxResults matches, best first.
// maxResults == 0 means no cap. Scoring runs outside every lock.
func (d *IdentifierDatabase) ResultsForQueryAndType(query string, filetype string, maxResults int) ([]Result, error) {
	word, err := text.NewWord(query)
	if err != nil {
		return nil, err
	}

	sets := d.snapshotSets(filetype)

	seen := make(map[*Candidate]struct{})
	results := make([]Result, 0, util.Max(maxResults, 64))
	for _, set := range sets {
		for _, candidate := range set.snapshot() {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			if candidate.IsEmpty() || !candidate.ContainsBytes(word) {
				continue
			}
			if result := candidate.QueryMatchResult(word); result.IsSubsequence() {
				results = append(results, result)
			}
		}
	}

	PartialSortResults(results, maxResults)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
