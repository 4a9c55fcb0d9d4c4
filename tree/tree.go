package tree

import (
	"fmt"

	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

// Tree represents a decision tree: the root node from which
// all others hang and the label it is able to predict.
type Tree struct {
	Root  *Node
	Label feature.Feature
}

// Stats holds figures about the shape of a tree
type Stats struct {
	Nodes  int
	Leaves int
	Depth  int
}

// New takes the root Node and a label feature and returns a tree with
// them.
func New(root *Node, label feature.Feature) *Tree {
	return &Tree{root, label}
}

// Render returns the tree as a nested if/else program or an error if
// it cannot be rendered.
func (t *Tree) Render() (string, error) {
	if t == nil || t.Root == nil {
		return "", errors.Wrap(ErrRenderContract, "rendering nil tree")
	}
	return Render(t.Root, 0)
}

func (t *Tree) String() string {
	s, err := t.Render()
	if err != nil {
		return fmt.Sprintf("ERROR: %s\n", err.Error())
	}
	return s
}

// Traverse takes a bottomup boolean and an error-returning function
// that takes a node and its depth as parameters, and goes through the tree
// running the function with every traversed node excluding the terminal
// children of leaves.
// Traverse will call the function with a parent node before calling it for
// its children if bottomup is false, and call it after its children if
// bottomup is true. If the call to the function returns an error, the
// traversing is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(n *Node, depth int) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	return traverse(t.Root, 0, bottomup, f)
}

func traverse(n *Node, depth int, bottomup bool, f func(*Node, int) error) error {
	if !bottomup {
		if err := f(n, depth); err != nil {
			return err
		}
	}
	if !n.Leaf {
		for _, c := range n.Children {
			if err := traverse(c, depth+1, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(n, depth)
	}
	return nil
}

// Stats returns the number of nodes, leaves and the depth of the tree
func (t *Tree) Stats() Stats {
	var s Stats
	t.Traverse(false, func(n *Node, depth int) error {
		s.Nodes++
		if n.Leaf {
			s.Leaves++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return nil
	})
	return s
}
