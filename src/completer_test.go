package identrank

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCompleterEndToEnd(t *testing.T) {
	completer := NewIdentifierCompleter()
	err := completer.AddIdentifiersToDatabase(FiletypeIdentifierMap{
		"go": {"/a.go": {"foo_bar", "fbr", "barfoo", "FooBar"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	candidates, err := completer.CandidatesForQueryAndType("fb", "go", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "fbr", "FooBar", "foo_bar")
}

func TestCompleterSingleIdentifier(t *testing.T) {
	completer := NewIdentifierCompleter()
	if err := completer.AddSingleIdentifierToDatabase("Foo", "cpp", "/a.cpp"); err != nil {
		t.Fatal(err)
	}
	candidates, err := completer.CandidatesForQueryAndType("f", "cpp", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "Foo")
}

func TestCompleterClearForFileAndAdd(t *testing.T) {
	completer := NewIdentifierCompleter()
	err := completer.AddIdentifiersToDatabase(FiletypeIdentifierMap{
		"cpp": {"/a.cpp": {"Old", "Older"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = completer.ClearForFileAndAddIdentifiersToDatabase(FiletypeIdentifierMap{
		"cpp": {"/a.cpp": {"Newer"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	candidates, err := completer.CandidatesForQueryAndType("old", "cpp", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 0 {
		t.Errorf("cleared identifiers still answer: %v", candidates)
	}

	candidates, err = completer.CandidatesForQueryAndType("ne", "cpp", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "Newer")
}

func TestCompleterCacheInvalidation(t *testing.T) {
	completer := NewIdentifierCompleter()
	if err := completer.AddSingleIdentifierToDatabase("first", "go", "/a.go"); err != nil {
		t.Fatal(err)
	}

	candidates, err := completer.CandidatesForQueryAndType("f", "go", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "first")

	// A later mutation must be visible despite the memoized answer.
	if err := completer.AddSingleIdentifierToDatabase("fresh", "go", "/b.go"); err != nil {
		t.Fatal(err)
	}
	candidates, err = completer.CandidatesForQueryAndType("f", "go", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 2 {
		t.Errorf("stale answer after mutation: %v", candidates)
	}
}

func TestCompleterSkipsInvalidIdentifiers(t *testing.T) {
	completer := NewIdentifierCompleter()
	err := completer.AddIdentifiersToDatabase(FiletypeIdentifierMap{
		"go": {"/a.go": {"\xff\xfe", "", "valid"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	candidates, err := completer.CandidatesForQueryAndType("", "go", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "valid")
}

func TestCompleterTagFiles(t *testing.T) {
	dir := t.TempDir()
	tagsPath := filepath.Join(dir, "tags")
	contents := "myIdent\tsrc/a.cpp\t/^myIdent$/;\"\tlanguage:C++\n" +
		"pyIdent\tb.py\tlanguage:Python\n"
	if err := os.WriteFile(tagsPath, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	completer := NewIdentifierCompleter()
	err := completer.AddIdentifiersToDatabaseFromTagFiles(
		[]string{tagsPath, filepath.Join(dir, "missing-tags")})
	if err != nil {
		t.Fatal(err)
	}

	candidates, err := completer.CandidatesForQueryAndType("my", "cpp", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "myIdent")

	candidates, err = completer.CandidatesForQueryAndType("py", "python", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, candidates, "pyIdent")
}

func TestCompleterQueryAcrossFiletypes(t *testing.T) {
	completer := NewIdentifierCompleter()
	err := completer.AddIdentifiersToDatabase(FiletypeIdentifierMap{
		"cpp": {"/a.cpp": {"Alpha"}},
		"py":  {"/a.py": {"Apex"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	candidates, err := completer.CandidatesForQuery("a", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 2 {
		t.Errorf("expected identifiers of every filetype: %v", candidates)
	}
}

func BenchmarkResultsForQueryAndType(b *testing.B) {
	database := NewIdentifierDatabase()
	identifiers := make([]string, 0, 2000)
	for i := 0; i < 2000; i++ {
		identifiers = append(identifiers, fmt.Sprintf("some_long_identifier_%04d", i))
	}
	if err := database.AddIdentifiersForFile(identifiers, "go", "/bench.go"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := database.ResultsForQueryAndType("sli", "go", 10); err != nil {
			b.Fatal(err)
		}
	}
}
