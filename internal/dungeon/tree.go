package dungeon

import "github.com/Ko-stant/dungeon-bsp/internal/geometry"

// Node is one partition of the BSP tree. It owns both children or neither.
type Node struct {
	Region geometry.Region
	Cut    geometry.Orientation
	Left   *Node
	Right  *Node
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Walk visits n and its descendants in pre-order, left subtree before right.
func (n *Node) Walk(fn func(node *Node, level int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, level int), level int) {
	if n == nil {
		return
	}
	fn(n, level)
	n.Left.walk(fn, level+1)
	n.Right.walk(fn, level+1)
}

// Leaves returns the terminal nodes in the order rooms were carved.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Leaf is the record of a carved room.
type Leaf struct {
	Region geometry.Region `json:"region"`
	Anchor geometry.Point  `json:"anchor"`
	Level  int             `json:"level"`
}
