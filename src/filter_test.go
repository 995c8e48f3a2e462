package identrank

import (
	"fmt"
	"testing"
)

func TestFilterEmptyQueryPreservesOrder(t *testing.T) {
	got, err := FilterAndSortStrings([]string{"a", "b"}, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "a", "b")
}

func TestFilterEmptyQueryRespectsCap(t *testing.T) {
	got, err := FilterAndSortStrings([]string{"a", "b", "c"}, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "a", "b")
}

func TestFilterAndSortStrings(t *testing.T) {
	got, err := FilterAndSortStrings(
		[]string{"foo_bar", "fbr", "barfoo", "FooBar"}, "fb", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "fbr", "FooBar", "foo_bar")
}

func TestFilterCap(t *testing.T) {
	got, err := FilterAndSortStrings(
		[]string{"foo_bar", "fbr", "barfoo", "FooBar"}, "fb", 1)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "fbr")
}

func TestFilterPreservesOriginalValues(t *testing.T) {
	type item struct {
		insertion string
		menu      string
	}
	items := []item{
		{"foo_bar", "one"},
		{"fbr", "two"},
		{"barfoo", "three"},
	}
	got, err := FilterAndSortCandidates(items,
		func(i item) string { return i.insertion }, "fb", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].menu != "two" || got[1].menu != "one" {
		t.Errorf("unexpected items: %v", got)
	}
}

func TestFilterCandidateMaps(t *testing.T) {
	candidates := []map[string]string{
		{"word": "foo_bar", "kind": "v"},
		{"word": "fbr", "kind": "f"},
		{"word": "barfoo", "kind": "f"},
	}
	got, err := FilterAndSortCandidateMaps(candidates, "word", "fb", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0]["kind"] != "f" || got[1]["kind"] != "v" {
		t.Errorf("unexpected candidates: %v", got)
	}
}

func TestFilterSkipsInvalidCandidates(t *testing.T) {
	got, err := FilterAndSortStrings([]string{"\xff", "fbr"}, "fb", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "fbr")
}

func TestFilterInvalidQuery(t *testing.T) {
	if _, err := FilterAndSortStrings([]string{"a"}, "\xff", 0); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFilterEqualCandidatesKeepInputOrder(t *testing.T) {
	got, err := FilterAndSortStrings([]string{"dup", "dup"}, "d", 0)
	if err != nil {
		t.Fatal(err)
	}
	assertOrder(t, got, "dup", "dup")
}

func BenchmarkFilterAndSortStrings(b *testing.B) {
	candidates := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		candidates = append(candidates, fmt.Sprintf("CandidateNumber%04dWithTail", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FilterAndSortStrings(candidates, "cnwt", 20); err != nil {
			b.Fatal(err)
		}
	}
}
