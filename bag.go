package anagram

import (
	"strings"
	"unicode"
)

// Bag is an immutable multiset of letters, mapping each rune to its
// remaining-occurrence count. Every stored count is strictly positive;
// absence of a key means zero occurrences.
//
// Bags are treated as values: Decrement returns a fresh bag and leaves the
// receiver untouched, so sibling search branches derived from one parent bag
// never observe each other's consumption.
type Bag map[rune]int

// Frequencies counts the occurrences of each rune in text. The text is
// expected to be sanitized already (no whitespace, single case); Frequencies
// itself counts every rune it is given.
func Frequencies(text string) Bag {
	bag := make(Bag)
	for _, r := range text {
		bag[r]++
	}
	return bag
}

// Decrement returns a bag with r's count reduced by one. A count that would
// reach zero removes the key entirely. Decrementing a rune absent from the
// bag returns an equivalent bag.
func (b Bag) Decrement(r rune) Bag {
	next := make(Bag, len(b))
	for k, v := range b {
		next[k] = v
	}
	if next[r] <= 1 {
		delete(next, r)
	} else {
		next[r]--
	}
	return next
}

// Count returns the number of remaining occurrences of r.
func (b Bag) Count(r rune) int {
	return b[r]
}

// Empty reports whether no letters remain.
func (b Bag) Empty() bool {
	return len(b) == 0
}

// Len returns the total number of letters in the bag, counting multiplicity.
func (b Bag) Len() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Sanitize normalizes a phrase for letter counting: all Unicode whitespace
// is removed and the remaining runes are folded to lower case. No other
// normalization takes place.
func Sanitize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
