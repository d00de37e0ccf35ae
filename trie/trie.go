// Package trie implements a persistent prefix tree over runes.
//
// Nodes are immutable once constructed. Insert copies the nodes along the
// inserted word's path and shares every unaffected subtree with the original,
// so arbitrarily many derived tries may be traversed concurrently without
// interference. This is what lets a backtracking search hold one trie view
// per recursive branch at no copying cost beyond the insert paths.
package trie

// Node is one state of a persistent prefix tree. A node optionally marks the
// terminus of a complete word, in which case the marker equals the
// concatenation of runes on the path from the root to the node.
//
// The zero value is not usable; obtain an empty trie from New.
type Node struct {
	word     string
	terminal bool
	children map[rune]*Node
}

var emptyNode = &Node{}

// New returns an empty trie.
func New() *Node {
	return emptyNode
}

// Insert returns a trie containing word in addition to everything in n.
// The receiver is never modified. Inserting a word that is already present
// is idempotent.
func (n *Node) Insert(word string) *Node {
	return n.insert([]rune(word), word)
}

func (n *Node) insert(path []rune, word string) *Node {
	clone := &Node{
		word:     n.word,
		terminal: n.terminal,
		children: make(map[rune]*Node, len(n.children)+1),
	}
	for r, child := range n.children {
		clone.children[r] = child
	}
	if len(path) == 0 {
		clone.word = word
		clone.terminal = true
		return clone
	}
	child, ok := n.children[path[0]]
	if !ok {
		child = emptyNode
	}
	clone.children[path[0]] = child.insert(path[1:], word)
	return clone
}

// Build folds Insert over words, starting from an empty trie.
func Build(words []string) *Node {
	n := New()
	for _, word := range words {
		n = n.Insert(word)
	}
	return n
}

// Child returns the subtree reached by one rune, or false when no stored
// word continues with r at this position.
func (n *Node) Child(r rune) (*Node, bool) {
	child, ok := n.children[r]
	return child, ok
}

// Word returns the complete word terminating at this node, or false when the
// node is not a word terminus.
func (n *Node) Word() (string, bool) {
	return n.word, n.terminal
}

// Lookup traces word rune by rune from n and returns the node it ends at.
// It returns false when the path does not exist; the returned node may still
// be a non-terminal prefix, which Word distinguishes.
func (n *Node) Lookup(word string) (*Node, bool) {
	node := n
	for _, r := range word {
		child, ok := node.Child(r)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Walk calls fn for every word stored below n, in preorder. It stops early
// when fn returns false and reports whether the walk ran to completion.
func (n *Node) Walk(fn func(word string) bool) bool {
	if n.terminal && !fn(n.word) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes in the trie, including the root.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}

// Words returns the number of complete words stored in the trie.
func (n *Node) Words() int {
	count := 0
	if n.terminal {
		count++
	}
	for _, child := range n.children {
		count += child.Words()
	}
	return count
}
