package domain

// SumNode is one visited file in a resolution tree
type SumNode struct {
	Path     string
	Total    float64 // Own literals plus every child's total
	Literal  float64 // Contribution of numeric lines only
	Exists   bool
	Children []*SumNode // In line order; a file referenced twice appears twice

	IsExpanded bool
	Parent     *SumNode
}

// Totals collapses the tree into a ResultMap. Later visits of the same path
// overwrite earlier ones, walking depth-first in line order.
func (n *SumNode) Totals() ResultMap {
	totals := make(ResultMap)
	n.collect(totals)
	return totals
}

func (n *SumNode) collect(totals ResultMap) {
	for _, child := range n.Children {
		child.collect(totals)
	}
	totals[n.Path] = n.Total
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *SumNode) Flatten() []*SumNode {
	var result []*SumNode
	n.flattenRecursive(&result)
	return result
}

func (n *SumNode) flattenRecursive(result *[]*SumNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *SumNode) Depth() int {
	depth := 0
	for current := n.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// IsLeaf reports whether the file referenced no other files
func (n *SumNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Toggle expands or collapses the node
func (n *SumNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *SumNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *SumNode) Collapse() {
	n.IsExpanded = false
}

// ExpandAll expands the node and all of its descendants
func (n *SumNode) ExpandAll() {
	n.IsExpanded = true
	for _, child := range n.Children {
		child.ExpandAll()
	}
}
