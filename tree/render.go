package tree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

/*
Render takes a node and an indentation depth and returns the node as an
indented nested if/else program or an error.

A leaf node becomes an assignment of its class to the label:

	Play = Yes

An internal node becomes a guarded block per child, the first one opened
with if and the rest with else if, each holding the rendering of the child
indented by two more spaces:

	if (Weather = Sunny) {
	  Play = Yes
	}
	else if (Weather = Rainy) {
	  Play = No
	}

An internal node with no children cannot be rendered and makes Render return
an error wrapping ErrRenderContract.
*/
func Render(n *Node, indentDepth int) (string, error) {
	var b strings.Builder
	if err := render(&b, n, indentDepth); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n *Node, indentDepth int) error {
	if n == nil {
		return errors.Wrap(ErrRenderContract, "nil node")
	}
	indent := Indent(indentDepth)
	if n.Leaf {
		fmt.Fprintf(b, "%s%s = %s", indent, n.Label, n.Class)
		return nil
	}
	if len(n.Children) == 0 {
		return errors.Wrapf(ErrRenderContract, "internal node %q has no children", n.Condition())
	}
	for i, c := range n.Children {
		if i == 0 {
			fmt.Fprintf(b, "%sif (%s) {\n", indent, c.Condition())
		} else {
			fmt.Fprintf(b, "\n%selse if (%s) {\n", indent, c.Condition())
		}
		if err := render(b, c, indentDepth+2); err != nil {
			return err
		}
		fmt.Fprintf(b, "\n%s}", indent)
	}
	return nil
}

/*
Indent returns a string with indentDepth spaces, or an empty one if
indentDepth is not positive.
*/
func Indent(indentDepth int) string {
	if indentDepth <= 0 {
		return ""
	}
	return strings.Repeat(" ", indentDepth)
}
