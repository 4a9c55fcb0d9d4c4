package tree

import (
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Node is a node of the tree
*/
type Node struct {
	// The partition of the training set this node was built from.
	Dataset dataset.Dataset
	// The nodes directly under this node, in partition order.
	Children []*Node
	// Whether the node resolves to a class value. Leaf nodes may still
	// hold the partitions of their label as terminal children.
	Leaf bool
	// The name of the label feature, set on leaf nodes.
	Label string
	// The predicted value of the label for samples reaching the node,
	// set on leaf nodes.
	Class string
}

/*
NewLeaf takes a dataset, the name of the label, a class value and a list of
terminal children and returns a leaf node with them.
*/
func NewLeaf(d dataset.Dataset, label, class string, children ...*Node) *Node {
	return &Node{Dataset: d, Children: children, Leaf: true, Label: label, Class: class}
}

/*
NewBranch takes a dataset and a list of children and returns an internal
node that holds them.
*/
func NewBranch(d dataset.Dataset, children []*Node) *Node {
	return &Node{Dataset: d, Children: children}
}

// Criterion returns the criterion that selects the node under its parent,
// or nil for a root node.
func (n *Node) Criterion() feature.Criterion {
	if n.Dataset == nil {
		return nil
	}
	return n.Dataset.Criterion()
}

// Condition returns the string for the node's criterion or "" for a root
// node.
func (n *Node) Condition() string {
	if n.Dataset == nil {
		return ""
	}
	return n.Dataset.Condition()
}
