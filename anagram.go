package anagram

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/maugrim/anagrammator/trie"
)

// DefaultMinWordLength is the eligibility threshold applied by the
// package-level loader: dictionary words shorter than this many runes are
// excluded before trie construction. Longer words make for more interesting
// anagrams; any positive threshold is valid.
const DefaultMinWordLength = 5

// WordSeparator joins the words of one decomposition for display.
const WordSeparator = " "

// WordReader yields dictionary words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// Dictionary is a loaded anagram dictionary.
//
// A dictionary holds every eligible word in a persistent prefix tree. It is
// built once and read-only thereafter; every recursive branch of a search
// shares the same root.
type Dictionary struct {
	root       *trie.Node
	minLength  int
	wordCount  int
	Identifier string // Identifies the dictionary
}

// NewDictionary returns an empty dictionary that will accept words of at
// least minWordLength runes. A non-positive threshold falls back to
// DefaultMinWordLength.
func NewDictionary(name string, minWordLength int) *Dictionary {
	if minWordLength <= 0 {
		minWordLength = DefaultMinWordLength
	}
	return &Dictionary{
		root:       trie.New(),
		minLength:  minWordLength,
		Identifier: name,
	}
}

// LoadWordReader builds a dictionary from a streaming, format-agnostic word
// source, keeping only eligible words.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package wordlist to parse concrete formats and feed this API.
func LoadWordReader(name string, reader WordReader) (*Dictionary, error) {
	dict := NewDictionary(name, DefaultMinWordLength)
	if err := dict.LoadWordReader(reader); err != nil {
		return nil, err
	}
	return dict, nil
}

// LoadWordReader adds words from a streaming source until io.EOF.
func (dict *Dictionary) LoadWordReader(reader WordReader) (err error) {
	for {
		var word string
		word, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		dict.AddWord(word)
	}
	tracer().Infof("dictionary %q: %d words, %d trie nodes",
		dict.Identifier, dict.wordCount, dict.root.Size())
	return nil
}

// AddWord registers one dictionary word. The word is sanitized first and
// dropped when it misses the eligibility threshold. AddWord reports whether
// the word went into the dictionary; re-adding a present word is idempotent
// and reports true.
func (dict *Dictionary) AddWord(word string) bool {
	word = Sanitize(word)
	if !dict.Eligible(word) {
		return false
	}
	if node, ok := dict.root.Lookup(word); !ok || !isTerminal(node) {
		dict.wordCount++
	}
	dict.root = dict.root.Insert(word)
	return true
}

func isTerminal(node *trie.Node) bool {
	_, ok := node.Word()
	return ok
}

// Eligible reports whether word meets the dictionary's minimum length.
func (dict *Dictionary) Eligible(word string) bool {
	return utf8.RuneCountInString(word) >= dict.minLength
}

// WordCount returns the number of distinct words in the dictionary.
func (dict *Dictionary) WordCount() int {
	return dict.wordCount
}

// TrieStats reports size metrics for the underlying prefix tree.
func (dict *Dictionary) TrieStats() (nodes, words int) {
	if dict == nil || dict.root == nil {
		return 0, 0
	}
	return dict.root.Size(), dict.root.Words()
}

// Anagrams enumerates every multi-word anagram of text, lazily, each joined
// with WordSeparator for display. Example:
//
//	"liron shapira" => "solar hairpin"
//
// An empty or all-whitespace text, or a dictionary with no words, yields an
// empty sequence; this is a normal empty result, not an error.
func (dict *Dictionary) Anagrams(text string) iter.Seq[string] {
	letters := Frequencies(Sanitize(text))
	tracer().Debugf("anagram search over %d letters (%d distinct)", letters.Len(), len(letters))
	return func(yield func(string) bool) {
		for words := range dict.Search(letters) {
			if !yield(strings.Join(words, WordSeparator)) {
				return
			}
		}
	}
}
