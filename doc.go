/*
Package anagram finds every way to reassemble the letters of a phrase into a
sequence of dictionary words.

A Dictionary is built once from a stream of words (see package wordlist for
the newline-delimited file format), filtered by a minimum word length. The
eligible words are stored in a persistent prefix tree. Anagrams then runs a
recursive backtracking search that matches trie paths against the multiset of
the phrase's letters, producing each complete decomposition lazily:

	dict, err := wordlist.LoadFile("/usr/share/dict/words")
	if err != nil { ... }
	for phrase := range dict.Anagrams("liron shapira") {
		fmt.Println(phrase) // e.g. "solar hairpin"
	}

Consumers may stop ranging at any time; the search performs only as much work
as the results actually pulled.

Both the trie and the letter multiset are immutable values. Every recursive
branch of the search derives its own view by structural sharing, so sibling
branches never observe each other's progress and the backtracking needs no
save/restore of search state.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package anagram

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'anagram'
func tracer() tracing.Trace {
	return tracing.Select("anagram")
}
