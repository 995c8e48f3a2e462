package identrank

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTagsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tags")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractIdentifiersFromTagsFile(t *testing.T) {
	path := writeTagsFile(t,
		"myIdent\tsrc/a.cpp\t/^myIdent$/;\"\tkind:f\tlanguage:C++\tline:12\n")
	tagDir := filepath.Dir(path)

	identifiers := ExtractIdentifiersFromTagsFile(path)
	files, ok := identifiers["cpp"]
	if !ok {
		t.Fatalf("C++ must map to the cpp filetype: %v", identifiers)
	}
	expectedPath := weaklyCanonical(filepath.Join(tagDir, "src/a.cpp"))
	if got := files[expectedPath]; len(got) != 1 || got[0] != "myIdent" {
		t.Errorf("unexpected identifiers: %v", files)
	}
}

func TestExtractHandlesCRLFAndMultipleRecords(t *testing.T) {
	path := writeTagsFile(t,
		"one\ta.go\tlanguage:Go\r\n"+
			"two\ta.go\tjunk\tlanguage:Go\tmore:junk\r\n"+
			"three\tb.py\tlanguage:Python\n")

	identifiers := ExtractIdentifiersFromTagsFile(path)
	goFiles := identifiers["go"]
	if len(goFiles) != 1 {
		t.Fatalf("unexpected go files: %v", goFiles)
	}
	for _, got := range goFiles {
		if len(got) != 2 || got[0] != "one" || got[1] != "two" {
			t.Errorf("unexpected identifiers: %v", got)
		}
	}
	if len(identifiers["python"]) != 1 {
		t.Errorf("unexpected python files: %v", identifiers["python"])
	}
}

func TestExtractUnknownLanguageFallsBackToLowercase(t *testing.T) {
	path := writeTagsFile(t, "ident\ta.xyz\tlanguage:FancyLang\n")
	identifiers := ExtractIdentifiersFromTagsFile(path)
	if _, ok := identifiers["fancylang"]; !ok {
		t.Errorf("unknown languages fall back to their lowercase name: %v", identifiers)
	}
}

func TestExtractSkipsRecordsWithoutLanguage(t *testing.T) {
	path := writeTagsFile(t, "ident\ta.go\tno language here\n")
	if identifiers := ExtractIdentifiersFromTagsFile(path); len(identifiers) != 0 {
		t.Errorf("unexpected identifiers: %v", identifiers)
	}
}

func TestExtractKeepsAbsolutePaths(t *testing.T) {
	path := writeTagsFile(t, "ident\t/abs/path/a.go\tlanguage:Go\n")
	identifiers := ExtractIdentifiersFromTagsFile(path)
	if _, ok := identifiers["go"]["/abs/path/a.go"]; !ok {
		t.Errorf("absolute paths must not be rebased: %v", identifiers["go"])
	}
}

func TestExtractMissingFileYieldsEmptyMap(t *testing.T) {
	identifiers := ExtractIdentifiersFromTagsFile(
		filepath.Join(t.TempDir(), "does-not-exist"))
	if len(identifiers) != 0 {
		t.Errorf("unexpected identifiers: %v", identifiers)
	}
}

func TestWeaklyCanonicalTolerantOfMissingTail(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "missing", "tail.go")
	got := weaklyCanonical(path)
	resolvedBase, err := filepath.EvalSymlinks(base)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(resolvedBase, "missing", "tail.go") {
		t.Errorf("unexpected canonical path: %q", got)
	}
}

func TestWeaklyCanonicalResolvesSymlinks(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "real")
	if err := os.Mkdir(target, 0o700); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	resolvedTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := weaklyCanonical(filepath.Join(link, "a.go")); got != filepath.Join(resolvedTarget, "a.go") {
		t.Errorf("unexpected canonical path: %q", got)
	}
}
