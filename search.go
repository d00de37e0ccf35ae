package anagram

import (
	"iter"
	"slices"

	"github.com/maugrim/anagrammator/trie"
)

// Search enumerates every sequence of dictionary words whose concatenated
// letters consume letters exactly: no letter used twice, none left over.
// Every word in every yielded sequence is a complete word of the dictionary.
//
// Results are produced lazily. Each pull performs only the recursive work
// needed to materialize one more complete sequence, and breaking out of the
// range loop abandons the search immediately. The yielded slice is owned by
// the consumer.
//
// Enumeration order is not part of the contract; only the set of yielded
// sequences is. Two runs over the same dictionary and bag produce the same
// set, possibly in a different order.
func (dict *Dictionary) Search(letters Bag) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		dict.expand(dict.root, letters, nil, yield)
	}
}

// expand explores the cursor (node, remaining) with the words completed so
// far in prefix. It reports false as soon as the consumer stops pulling, so
// every in-flight recursion unwinds without further work.
//
// Two branches apply at each node. If the node marks a complete word, the
// search either yields (no letters remain) or restarts at the dictionary
// root to spend the rest of the letters on additional words. Independently,
// the current word may be extended by any remaining letter that continues a
// path in the trie; this covers words that are prefixes of longer words.
// Termination: the extension branch strictly shrinks remaining, and the
// restart branch re-enters with a bag already smaller than the original
// phrase, so recursion depth is bounded by the phrase's letter count.
func (dict *Dictionary) expand(node *trie.Node, remaining Bag, prefix []string, yield func([]string) bool) bool {
	if word, ok := node.Word(); ok {
		if remaining.Empty() {
			if !yield(append(slices.Clone(prefix), word)) {
				return false
			}
		} else if !dict.expand(dict.root, remaining, append(prefix, word), yield) {
			return false
		}
	}
	for r := range remaining {
		child, ok := node.Child(r)
		if !ok {
			continue
		}
		if !dict.expand(child, remaining.Decrement(r), prefix, yield) {
			return false
		}
	}
	return true
}
