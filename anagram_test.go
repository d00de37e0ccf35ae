package anagram

import (
	"io"
	"slices"
	"sort"
	"testing"
)

type sliceWordReader struct {
	words []string
	index int
}

func (r *sliceWordReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	word := r.words[r.index]
	r.index++
	return word, nil
}

func collectAnagrams(dict *Dictionary, text string) []string {
	var results []string
	for result := range dict.Anagrams(text) {
		results = append(results, result)
	}
	sort.Strings(results)
	return results
}

func TestWordReaderAPI(t *testing.T) {
	dict, err := LoadWordReader("stream-words", &sliceWordReader{
		words: []string{"solar", "hairpin"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := collectAnagrams(dict, "liron shapira")
	want := []string{"hairpin solar", "solar hairpin"}
	if !slices.Equal(got, want) {
		t.Fatalf("liron shapira should decompose into solar+hairpin, got %v", got)
	}
}

func TestInventoriesScenario(t *testing.T) {
	dict, err := LoadWordReader("inventories", &sliceWordReader{
		words: []string{"inner", "soviet"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := collectAnagrams(dict, "inventories")
	want := []string{"inner soviet", "soviet inner"}
	if !slices.Equal(got, want) {
		t.Fatalf("inventories should yield both word orders, got %v", got)
	}
}

func TestEmptyDictionaryYieldsNothing(t *testing.T) {
	dict, err := LoadWordReader("no-words", &sliceWordReader{})
	if err != nil {
		t.Fatal(err)
	}
	if got := collectAnagrams(dict, "anything"); len(got) != 0 {
		t.Fatalf("empty dictionary should yield nothing, got %v", got)
	}
}

func TestEmptyInputYieldsNothing(t *testing.T) {
	dict, err := LoadWordReader("empty-input", &sliceWordReader{
		words: []string{"solar", "hairpin"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"", "   ", "\t\n "} {
		if got := collectAnagrams(dict, text); len(got) != 0 {
			t.Fatalf("input %q should yield nothing, got %v", text, got)
		}
	}
}

func TestEligibilityThreshold(t *testing.T) {
	dict, err := LoadWordReader("threshold", &sliceWordReader{
		words: []string{"cat", "inn", "door", "inner"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := dict.WordCount(); got != 1 {
		t.Fatalf("only words of length >= 5 are eligible: got %d words, want 1", got)
	}
	if dict.AddWord("door") {
		t.Fatalf("short word must be rejected")
	}
	if !dict.Eligible("inner") {
		t.Fatalf("five-letter word must be eligible")
	}
	if dict.Eligible("door") {
		t.Fatalf("four-letter word must not be eligible")
	}
}

func TestCustomThreshold(t *testing.T) {
	dict := NewDictionary("short-words", 3)
	if !dict.AddWord("cat") {
		t.Fatalf("three-letter word must pass a threshold of 3")
	}
	got := collectAnagrams(dict, "act")
	if want := []string{"cat"}; !slices.Equal(got, want) {
		t.Fatalf("anagrams of act: got %v, want %v", got, want)
	}
}

func TestAddWordNormalizesAndDeduplicates(t *testing.T) {
	dict := NewDictionary("dedup", DefaultMinWordLength)
	if !dict.AddWord("Inner") {
		t.Fatalf("mixed-case word must be accepted after sanitization")
	}
	if !dict.AddWord("inner") {
		t.Fatalf("re-adding a present word is idempotent and reports true")
	}
	if got := dict.WordCount(); got != 1 {
		t.Fatalf("word count after duplicate add: got %d, want 1", got)
	}
}

func TestTrieStats(t *testing.T) {
	dict, err := LoadWordReader("stats", &sliceWordReader{
		words: []string{"inner", "inners"},
	})
	if err != nil {
		t.Fatal(err)
	}
	nodes, words := dict.TrieStats()
	// root + i,n,n,e,r,s = 7 nodes on one shared path
	if nodes != 7 {
		t.Fatalf("trie nodes: got %d, want 7", nodes)
	}
	if words != 2 {
		t.Fatalf("trie words: got %d, want 2", words)
	}
}
