/*
Package identrank implements the native core of an identifier-completion
engine: a Unicode-aware fuzzy matcher over interned candidate identifiers
and a concurrent per-filetype, per-file identifier database.

The packages underneath an editor-side completion server feed identifiers
in through IdentifierCompleter (directly or from tag files) and ask for
ranked completions on every keystroke; FilterAndSortCandidates ranks
ad-hoc candidate lists with the same matcher.
*/
package identrank

import (
	"unicode/utf8"

	"github.com/asticode/go-astilog"
)

// IdentifierCompleter is the public facade over the identifier database:
// it sanitizes input, memoizes answers and maps results back to plain
// identifier strings. Safe for concurrent use.
type IdentifierCompleter struct {
	database *IdentifierDatabase
	cache    *queryCache
}

// NewIdentifierCompleter returns a completer with an empty database.
func NewIdentifierCompleter() *IdentifierCompleter {
	return &IdentifierCompleter{
		database: NewIdentifierDatabase(),
		cache:    newQueryCache(),
	}
}

// sanitizeIdentifiers drops identifiers that are empty or not valid UTF-8
// so that interning and matching never see them.
func sanitizeIdentifiers(identifiers []string) []string {
	sanitized := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		if identifier == "" {
			continue
		}
		if !utf8.ValidString(identifier) {
			astilog.Debugf("skipping invalid identifier %q", identifier)
			continue
		}
		sanitized = append(sanitized, identifier)
	}
	return sanitized
}

// AddSingleIdentifierToDatabase adds one identifier for (filetype,
// filepath).
func (ic *IdentifierCompleter) AddSingleIdentifierToDatabase(identifier string, filetype string, filepath string) error {
	ic.cache.Clear()
	return ic.database.AddIdentifiersForFile(
		sanitizeIdentifiers([]string{identifier}), filetype, filepath)
}

// AddIdentifiersToDatabase adds every identifier of the map.
func (ic *IdentifierCompleter) AddIdentifiersToDatabase(identifiers FiletypeIdentifierMap) error {
	ic.cache.Clear()
	for filetype, files := range identifiers {
		for filepath, fileIdentifiers := range files {
			err := ic.database.AddIdentifiersForFile(
				sanitizeIdentifiers(fileIdentifiers), filetype, filepath)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearForFileAndAddIdentifiersToDatabase replaces the stored identifiers
// of every (filetype, filepath) tuple present in the map with the new
// ones. Tuples not present in the map are untouched.
func (ic *IdentifierCompleter) ClearForFileAndAddIdentifiersToDatabase(identifiers FiletypeIdentifierMap) error {
	ic.cache.Clear()
	for filetype, files := range identifiers {
		for filepath, fileIdentifiers := range files {
			ic.database.ClearCandidatesStoredForFile(filetype, filepath)
			err := ic.database.AddIdentifiersForFile(
				sanitizeIdentifiers(fileIdentifiers), filetype, filepath)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// AddIdentifiersToDatabaseFromTagFiles extracts identifiers from each tag
// file and adds them. Unreadable tag files contribute nothing; they never
// abort completion.
func (ic *IdentifierCompleter) AddIdentifiersToDatabaseFromTagFiles(paths []string) error {
	ic.cache.Clear()
	for _, path := range paths {
		for filetype, files := range ExtractIdentifiersFromTagsFile(path) {
			for filepath, fileIdentifiers := range files {
				err := ic.database.AddIdentifiersForFile(
					sanitizeIdentifiers(fileIdentifiers), filetype, filepath)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CandidatesForQueryAndType returns the identifiers of the filetype best
// matching the query, best first, capped at maxCandidates (0 means no
// cap).
func (ic *IdentifierCompleter) CandidatesForQueryAndType(query string, filetype string, maxCandidates int) ([]string, error) {
	key := queryKey{query: query, filetype: filetype, maxCandidates: maxCandidates}
	if candidates, ok := ic.cache.Find(key); ok {
		return candidates, nil
	}

	results, err := ic.database.ResultsForQueryAndType(query, filetype, maxCandidates)
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(results))
	for _, result := range results {
		candidates = append(candidates, result.Text())
	}

	ic.cache.Add(key, candidates)
	return candidates, nil
}

// CandidatesForQuery is CandidatesForQueryAndType across every filetype.
func (ic *IdentifierCompleter) CandidatesForQuery(query string, maxCandidates int) ([]string, error) {
	return ic.CandidatesForQueryAndType(query, "", maxCandidates)
}
