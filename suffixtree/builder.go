package suffixtree

import "github.com/Zubayear/kensaku/queue"

// rebuild constructs the tree over st.text (already marker-terminated)
// with Ukkonen's algorithm. Phase i extends the implicit tree for
// text[:i] to text[:i+1]; within a phase, step j inserts the suffix
// starting at j explicitly. Leaves carry an open right endpoint, so every
// existing leaf grows by one byte per phase for free (rule 1), and a phase
// stops at the first suffix already present (rule 3) because all shorter
// ones are then present too. Only rules 2a/2b do real work, and each
// creates a leaf, which bounds the explicit steps over the whole build
// by the number of leaves.
//
// Callers hold the write lock.
func (st *SuffixTree) rebuild() {
	st.endOfText = 0
	st.root = newNode()
	nextK := 0
	var linkWanted *node
	linkWantedPosition := 0

	for i := range st.text {
		var linkFollow *node
		linkFollowPosition := 0
		k := nextK
		st.endOfText++
		nextK = i + 1

		for j := k; j <= i; j++ {
			var current *node
			var currentPosition int
			if linkFollow != nil {
				link := linkFollow.suffixLink
				if link == nil {
					panic("suffixtree: expected suffix link is missing")
				}
				current = link
				currentPosition = linkFollowPosition
				linkFollow = nil
			} else {
				current = st.root
				currentPosition = j
			}

			// Descend toward text[j:i+1]. Every node passed on the way is a
			// candidate target for a pending suffix link and a candidate
			// shortcut for the next step.
			next := current
			nextPosition := currentPosition
			for {
				if linkWanted != nil && linkWantedPosition == nextPosition {
					linkWanted.suffixLink = next
					linkWanted = nil
				}
				if next.suffixLink != nil {
					linkFollow = next
					linkFollowPosition = nextPosition
				}
				current = next
				currentPosition = nextPosition
				next = st.walkEdge(current, &nextPosition, i+1)
				if next == nil || nextPosition > i || current == next ||
					next.effectiveEnd(st.endOfText)-next.textBegin != nextPosition-currentPosition {
					break
				}
			}

			if next == nil {
				// Rule 1: the walk ended at a leaf; its open edge already
				// grew past text[i].
			} else if nextPosition > i {
				// Rule 3: text[j:i+1] is already in the tree, and so are all
				// shorter suffixes. Restart here next phase.
				nextK = j
				break
			} else if current == next {
				// Rule 2a: stuck at a node with no edge for text[i]; hang a
				// new leaf off it.
				leaf := newNode()
				leaf.parent = current
				leaf.textBegin = currentPosition
				leaf.suffixStart = j
				current.children[st.text[currentPosition]] = leaf
			} else {
				// Rule 2b: stuck mid-edge. Split the edge with a new internal
				// node carrying the matched head of the label, reparent the
				// old child behind it and attach a leaf for the new suffix.
				offset := nextPosition - currentPosition
				mid := newNode()
				mid.parent = next.parent
				mid.textBegin = next.textBegin
				mid.textEnd = next.textBegin + offset
				if mid.textBegin == mid.textEnd && mid.textEnd != openEnd {
					panic("suffixtree: split produced an empty edge")
				}
				parent := next.parent
				if parent == nil {
					panic("suffixtree: split target has no parent")
				}
				parent.children[st.text[next.textBegin]] = mid

				leaf := newNode()
				leaf.parent = mid
				leaf.textBegin = nextPosition
				leaf.suffixStart = j

				next.parent = mid
				next.textBegin += offset
				if next.textBegin == next.textEnd && next.textEnd != openEnd {
					panic("suffixtree: reparented edge is empty")
				}

				mid.children[st.text[next.textBegin]] = next
				mid.children[st.text[leaf.textBegin]] = leaf

				if linkWanted != nil {
					linkWanted.suffixLink = mid
					linkWanted = nil
				}
				if mid.parent == st.root && mid.effectiveEnd(st.endOfText) == mid.textBegin+1 {
					// A path label of a single byte links straight to the root.
					mid.suffixLink = st.root
				} else {
					linkWanted = mid
					linkWantedPosition = nextPosition
				}
			}
		}
	}
	st.relabelTextEnd()
}

// walkEdge is the construction-time counterpart of traverseEdge. During
// phase i every byte of the sought path except text[i] lies on a path
// already in the tree, so edges entirely inside that verified region are
// taken by length alone (the skip/count trick) and only the final byte is
// ever compared.
func (st *SuffixTree) walkEdge(n *node, pos *int, end int) *node {
	if n.isLeaf() {
		return nil
	}
	next, ok := n.children[st.text[*pos]]
	if !ok {
		return n
	}
	edgeLength := next.effectiveEnd(st.endOfText) - next.textBegin
	verified := end - 1 - *pos // bytes before text[end-1] need no comparison
	if edgeLength <= verified {
		*pos += edgeLength
		return next
	}
	offset := verified
	if st.text[next.textBegin+offset] == st.text[*pos+offset] {
		offset++
	}
	*pos += offset
	return next
}

// relabelTextEnd rewrites every open edge endpoint to the final end of
// text, fixing the leaf labels the open-end optimization left implicit.
func (st *SuffixTree) relabelTextEnd() {
	todo := queue.NewQueue[*node]()
	todo.Enqueue(st.root)
	for !todo.IsEmpty() {
		current, _ := todo.Dequeue()
		if current.textEnd == openEnd {
			current.textEnd = st.endOfText
		}
		for _, child := range current.children {
			todo.Enqueue(child)
		}
	}
}
