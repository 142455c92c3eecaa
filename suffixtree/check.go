package suffixtree

import (
	"fmt"

	"github.com/Zubayear/kensaku/queue"
)

// CheckSuffixLinks validates the suffix-link wiring of the whole tree:
// every internal non-root node must link to the node whose path label is
// its own path label with the first byte removed, and a link to the root
// is only valid for a direct root child with a single-byte edge label.
//
// It returns nil when the tree is structurally sound and an error wrapping
// ErrSuffixLink describing the first violation otherwise. A violation is a
// construction bug, not a property of the input.
//
// Complexity: O(n * d), where d = depth of the tree (path labels are
// materialized for comparison)
func (st *SuffixTree) CheckSuffixLinks() error {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	todo := queue.NewQueue[*node]()
	todo.Enqueue(st.root)
	for !todo.IsEmpty() {
		current, _ := todo.Dequeue()
		if current != st.root && len(current.children) > 0 {
			linked := current.suffixLink
			if linked == nil {
				return fmt.Errorf("%w: inner node %q has no suffix link",
					ErrSuffixLink, st.pathLabel(current))
			}
			if linked == st.root && (current.parent != st.root || current.textBegin+1 != current.textEnd) {
				return fmt.Errorf("%w: node %q must not link to the root",
					ErrSuffixLink, st.pathLabel(current))
			}
			currentLabel := st.pathLabel(current)
			linkedLabel := st.pathLabel(linked)
			if len(currentLabel) != len(linkedLabel)+1 || currentLabel[1:] != linkedLabel {
				return fmt.Errorf("%w: node %q links to %q",
					ErrSuffixLink, currentLabel, linkedLabel)
			}
		}
		for _, child := range current.children {
			todo.Enqueue(child)
		}
	}
	return nil
}
