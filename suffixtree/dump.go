package suffixtree

import (
	"fmt"
	"strings"

	"github.com/Zubayear/kensaku/treemap"
)

// String renders the tree as an indented listing, one node per line.
// Children are visited in ascending byte order of their edge labels, so
// the output is deterministic and two trees over the same text render
// identically.
//
// Example output for "aba":
//
//	root
//	  "\x03" [leaf 3]
//	  "a"
//	    "\x03" [leaf 2]
//	    "ba\x03" [leaf 0]
//	  "ba\x03" [leaf 1]
func (st *SuffixTree) String() string {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	var sb strings.Builder
	st.dumpNode(&sb, st.root, 0)
	return sb.String()
}

func (st *SuffixTree) dumpNode(sb *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case n.parent == nil:
		sb.WriteString("root\n")
	case len(n.children) == 0:
		fmt.Fprintf(sb, "%s%q [leaf %d]\n", indent, st.edgeLabel(n), n.suffixStart)
	default:
		fmt.Fprintf(sb, "%s%q\n", indent, st.edgeLabel(n))
	}
	ordered := treemap.NewTreeMap[byte, *node]()
	for first, child := range n.children {
		ordered.Put(first, child)
	}
	ordered.InOrder(func(_ byte, child *node) {
		st.dumpNode(sb, child, depth+1)
	})
}
