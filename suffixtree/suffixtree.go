/*
Package suffixtree provides an online suffix tree over a byte text.

The tree is built with Ukkonen's algorithm in O(n) time for a text of
length n and answers substring queries in O(m) time for a pattern of
length m. It supports the following operations:

  - SetText: (Re)build the tree over a text in O(n) time.
  - Contains: Check whether a pattern occurs in the text in O(m) time.
  - Find / FindSorted: Enumerate all occurrence positions of a pattern.
  - EndsWith: Check whether the text ends with a given suffix in O(m) time.
  - CheckSuffixLinks: Structurally validate the suffix links.
  - Thread Safety: A sync.RWMutex guards rebuilds against readers.

A sentinel byte (the end marker, 0x03 unless chosen otherwise) is appended
to the text during construction so that every suffix ends at its own leaf.
The marker must not occur in the input; SetText rejects such texts.

Example usage:

	st := suffixtree.NewSuffixTree()
	_ = st.SetText("abracadabra")
	fmt.Println(st.Contains("cad"))    // true
	fmt.Println(st.FindSorted("abra")) // [0 7]
	fmt.Println(st.EndsWith("abra"))   // true

Implementation Details:
  - Edges carry [begin, end) index pairs into the text instead of label
    copies; an open end stands in for the growing end of the text.
  - Children are held in a map keyed by the first label byte, giving the
    O(1) child lookup the linear construction bound relies on.
  - Occurrence enumeration walks the subtree below the pattern's locus
    breadth-first using github.com/Zubayear/kensaku/queue.

Time Complexity:
  - SetText: O(n)
  - Contains / EndsWith: O(m)
  - Find: O(m + k), where k is the number of occurrences
*/
package suffixtree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Zubayear/kensaku/priorityqueue"
	"github.com/Zubayear/kensaku/queue"
	"github.com/Zubayear/kensaku/stack"
)

// DefaultEndMarker is the sentinel byte appended to the text unless the
// tree was created with NewSuffixTreeWithMarker.
const DefaultEndMarker byte = 0x03

// SuffixTree indexes every suffix of a text for fast substring queries.
//
// Fields:
//   - endMarker: the sentinel byte appended to the text
//   - text: the indexed text including the trailing end marker
//   - root: the root node of the tree
//   - endOfText: one past the last processed character during construction
//   - mutex: RWMutex so rebuilds exclude concurrent readers
//
// The zero value is not usable; create trees with NewSuffixTree or
// NewSuffixTreeWithMarker.
type SuffixTree struct {
	endMarker byte
	text      []byte
	root      *node
	endOfText int
	mutex     sync.RWMutex
}

// NewSuffixTree creates an empty suffix tree using DefaultEndMarker as the
// sentinel.
//
// Example:
//
//	st := NewSuffixTree()
//	_ = st.SetText("mississippi")
//	fmt.Println(st.Contains("ssi")) // true
func NewSuffixTree() *SuffixTree {
	return NewSuffixTreeWithMarker(DefaultEndMarker)
}

// NewSuffixTreeWithMarker creates an empty suffix tree that uses the given
// byte as the end marker. Choose a byte that can never occur in the texts
// to be indexed.
func NewSuffixTreeWithMarker(marker byte) *SuffixTree {
	return &SuffixTree{endMarker: marker, root: newNode()}
}

// SetText builds the suffix tree over the given text, replacing any
// previously indexed text. It returns ErrMarkerInText if the text contains
// the end marker byte; in that case the previous tree is left untouched.
//
// Complexity: O(n), where n = length of the text
func (st *SuffixTree) SetText(text string) error {
	if strings.IndexByte(text, st.endMarker) >= 0 {
		return fmt.Errorf("%w: %#x", ErrMarkerInText, st.endMarker)
	}
	st.mutex.Lock()
	defer st.mutex.Unlock()
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, st.endMarker)
	st.text = buf
	st.rebuild()
	return nil
}

// GetText returns the indexed text without the end marker, or the empty
// string if no text has been set.
//
// Complexity: O(n)
func (st *SuffixTree) GetText() string {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	if len(st.text) == 0 {
		return ""
	}
	return string(st.text[:len(st.text)-1])
}

// Size returns the length of the indexed text without the end marker.
//
// Complexity: O(1)
func (st *SuffixTree) Size() int {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	if len(st.text) == 0 {
		return 0
	}
	return len(st.text) - 1
}

// IsEmpty reports whether the indexed text is empty, which is also the case
// before any text has been set.
//
// Complexity: O(1)
func (st *SuffixTree) IsEmpty() bool {
	return st.Size() == 0
}

// Contains checks whether the needle occurs in the indexed text.
// The empty needle is contained in every text.
//
// Complexity: O(m), where m = length of the needle
func (st *SuffixTree) Contains(needle string) bool {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	pos := 0
	end := len(needle)
	st.traverseTree([]byte(needle), &pos, end)
	return pos >= end
}

// Find returns the start indices of every occurrence of the needle in the
// indexed text, in unspecified order. The empty needle has no defined
// occurrence and yields no positions.
//
// Algorithm Steps:
//  1. Traverse the tree along the needle; no full match means no result.
//  2. Walk the subtree below the match point breadth-first.
//  3. Report the suffix start of every leaf encountered.
//
// Complexity: O(m + k), where k = number of occurrences
func (st *SuffixTree) Find(needle string) []int {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.find([]byte(needle))
}

// FindSorted returns the occurrences of the needle in ascending order,
// drained through a binary min-heap.
//
// Complexity: O(m + k log k)
func (st *SuffixTree) FindSorted(needle string) []int {
	st.mutex.RLock()
	positions := st.find([]byte(needle))
	st.mutex.RUnlock()
	if len(positions) == 0 {
		return positions
	}
	heap := priorityqueue.NewBinaryHeap[int]()
	for _, position := range positions {
		heap.Add(position)
	}
	sorted := make([]int, 0, len(positions))
	for !heap.IsEmpty() {
		position, _ := heap.Poll()
		sorted = append(sorted, position)
	}
	return sorted
}

func (st *SuffixTree) find(needle []byte) []int {
	if len(needle) == 0 {
		// The empty needle's locus is the root itself; it has no defined
		// occurrence.
		return nil
	}
	pos := 0
	end := len(needle)
	stop := st.traverseTree(needle, &pos, end)
	if pos < end {
		return nil
	}
	var result []int
	todo := queue.NewQueue[*node]()
	todo.Enqueue(stop)
	for !todo.IsEmpty() {
		current, _ := todo.Dequeue()
		if len(current.children) == 0 {
			result = append(result, current.suffixStart)
		}
		for _, child := range current.children {
			todo.Enqueue(child)
		}
	}
	return result
}

// EndsWith checks whether the indexed text ends with the given suffix.
// Only terminal suffixes count: a string that occurs in the text but does
// not reach its end yields false.
//
// Complexity: O(m), where m = length of the suffix
func (st *SuffixTree) EndsWith(suffix string) bool {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	// Leaf path labels are the only ones ending in the marker, so a walk
	// along suffix+marker succeeds exactly for terminal suffixes.
	buf := make([]byte, 0, len(suffix)+1)
	buf = append(buf, suffix...)
	buf = append(buf, st.endMarker)
	pos := 0
	end := len(buf)
	stop := st.traverseTree(buf, &pos, end)
	return pos >= end && stop.isLeaf()
}

// traverseEdge follows the edge leaving n whose label starts with
// findText[*pos], comparing label bytes against findText[*pos:end] and
// advancing *pos past each match.
//
// Returns:
//   - nil if n is a leaf, so no further match is possible
//   - n itself if no outgoing edge fits findText[*pos]
//   - the child at the far end of the consulted edge otherwise
//
// After the call *pos is the first mismatching pattern position; if the
// whole edge matched it is the next position to verify, and if the pattern
// ran out mid-edge it equals end.
func (st *SuffixTree) traverseEdge(n *node, findText []byte, pos *int, end int) *node {
	if n.isLeaf() {
		return nil
	}
	if *pos >= end {
		return n
	}
	next, ok := n.children[findText[*pos]]
	if !ok {
		return n
	}
	nextEnd := next.effectiveEnd(st.endOfText)
	offset := 0
	for next.textBegin+offset < nextEnd && *pos+offset < end &&
		st.text[next.textBegin+offset] == findText[*pos+offset] {
		offset++
	}
	*pos += offset
	return next
}

// traverseTree walks from the root along findText[*pos:end], following
// children as long as whole edges are consumed. It returns the deepest
// node reached: the node at or past the matched point on a full match
// (*pos >= end), or the last node reached before the walk got stuck.
func (st *SuffixTree) traverseTree(findText []byte, pos *int, end int) *node {
	var current *node
	currentPos := 0
	next := st.root
	for {
		current = next
		currentPos = *pos
		next = st.traverseEdge(current, findText, pos, end)
		if next == nil || *pos >= end || current == next ||
			next.effectiveEnd(st.endOfText)-next.textBegin != *pos-currentPos {
			break
		}
	}
	if *pos >= end && next != nil {
		return next
	}
	return current
}

// edgeLabel returns the label of the edge entering n.
func (st *SuffixTree) edgeLabel(n *node) string {
	return string(st.text[n.textBegin:n.effectiveEnd(st.endOfText)])
}

// pathLabel returns the concatenation of edge labels from the root to n.
// The walk to the root is unwound through a stack so labels come out in
// root-first order.
func (st *SuffixTree) pathLabel(n *node) string {
	trail := stack.NewStack[*node]()
	for current := n; current != nil && current.parent != nil; current = current.parent {
		trail.Push(current)
	}
	var sb strings.Builder
	for !trail.IsEmpty() {
		current, _ := trail.Pop()
		sb.WriteString(st.edgeLabel(current))
	}
	return sb.String()
}
