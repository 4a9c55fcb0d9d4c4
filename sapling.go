/*
Package sapling grows decision trees from training datasets by
recursively partitioning them on the attribute that brings the most
information gain to predict their label.
*/
package sapling

import (
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/gain"
	"github.com/pbanos/sapling/tree"
	"github.com/pkg/errors"
)

// BuildError represents an error related with building trees
type BuildError string

/*
ErrInvalidArgument is returned when asked to build a tree from a missing
dataset or from one without attributes or rows.
*/
const ErrInvalidArgument = BuildError("invalid argument")

/*
ErrInternalInconsistency is returned when the ranking of gains and the
dataset disagree, for instance when a ranked split boundary is not part of
its attribute's domain.
*/
const ErrInternalInconsistency = BuildError("internal inconsistency")

func (be BuildError) Error() string {
	return string(be)
}

/*
Ranker is an interface wrapping the Rank method, that computes the
information gain of partitioning a dataset on each of its attributes
but the label.

The Rank method takes a dataset and returns the gains in descending order
of value. For ordered attributes the gain holds the domain value at which
the dataset is split.
*/
type Ranker interface {
	Rank(d dataset.Dataset) []gain.Gain
}

/*
RankerFunc wraps a function with the Rank method signature to implement
the Ranker interface
*/
type RankerFunc func(d dataset.Dataset) []gain.Gain

/*
Rank takes a dataset and invokes the RankerFunc with it to return its result.
*/
func (rf RankerFunc) Rank(d dataset.Dataset) []gain.Gain {
	return rf(d)
}

/*
DefaultRanker returns a Ranker whose Rank method is gain.Rank
*/
func DefaultRanker() Ranker {
	return RankerFunc(gain.Rank)
}

/*
Builder builds trees selecting splits with its Ranker.
*/
type Builder struct {
	Ranker Ranker
}

/*
New takes a Ranker and returns a Builder that uses it. A nil Ranker
stands for DefaultRanker().
*/
func New(r Ranker) *Builder {
	if r == nil {
		r = DefaultRanker()
	}
	return &Builder{r}
}

/*
Build takes a dataset and builds a tree from it with the DefaultRanker,
returning its root node or an error.
*/
func Build(d dataset.Dataset) (*tree.Node, error) {
	return New(nil).Build(d)
}

/*
Grow takes a dataset and returns a tree built from it with the DefaultRanker
that predicts the dataset's label, or an error.
*/
func Grow(d dataset.Dataset) (*tree.Tree, error) {
	return New(nil).Grow(d)
}

/*
Grow takes a dataset and returns a tree built from it that predicts the
dataset's label, or an error.
*/
func (b *Builder) Grow(d dataset.Dataset) (*tree.Tree, error) {
	root, err := b.Build(d)
	if err != nil {
		return nil, err
	}
	return tree.New(root, d.Label()), nil
}

/*
Build takes a dataset and returns the root node of the tree built from it,
or an error. Nodes are decided on as follows:
  - if the label takes a single value, the node is a leaf predicting it,
    holding the partition of the dataset by the label as its only child.
  - if the label is the only attribute left, the node is a leaf predicting
    the first value in the domain of the label, holding two children: the
    rows with that value and the rest of them.
  - if no attribute brings any information gain, the node is a leaf
    predicting the first value in the domain of the label, without children.
  - otherwise the dataset is partitioned on the top ranked attribute, one
    child per value for nominal attributes and two children (below and at or
    above the ranked value) for ordered ones, and a tree is built in turn
    from each child.

Build returns an error wrapping ErrInvalidArgument for a nil dataset or one
that has no attributes or rows, and one wrapping ErrInternalInconsistency
if the ranked split cannot be applied to the dataset. Errors anywhere in
the tree abort the whole build.
*/
func (b *Builder) Build(d dataset.Dataset) (*tree.Node, error) {
	if d == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil dataset")
	}
	n := d.NumberOfAttributes()
	if n < 1 {
		return nil, errors.Wrap(ErrInvalidArgument, "dataset has no attributes")
	}
	if d.NumberOfRows() < 1 {
		return nil, errors.Wrap(ErrInvalidArgument, "dataset has no rows")
	}
	label := d.Label()
	labelIndex := n - 1
	values := label.Values()
	if len(values) == 1 {
		parts, err := d.PartitionByNominalAttribute(labelIndex)
		if err != nil {
			return nil, errors.Wrapf(ErrInternalInconsistency, "partitioning by label %s: %v", label.Name(), err)
		}
		children := make([]*tree.Node, 0, len(parts))
		for _, p := range parts {
			children = append(children, tree.NewLeaf(p, label.Name(), values[0]))
		}
		return tree.NewLeaf(d, label.Name(), values[0], children...), nil
	}
	if n == 1 {
		parts, err := d.PartitionByNominalValue(labelIndex, values[0])
		if err != nil {
			return nil, errors.Wrapf(ErrInternalInconsistency, "partitioning by label %s: %v", label.Name(), err)
		}
		return tree.NewLeaf(d, label.Name(), values[0],
			tree.NewLeaf(parts[0], label.Name(), values[0]),
			tree.NewLeaf(parts[1], label.Name(), values[1]),
		), nil
	}
	gains := b.Ranker.Rank(d)
	if !informative(gains) {
		return tree.NewLeaf(d, label.Name(), values[0]), nil
	}
	parts, err := split(d, gains[0])
	if err != nil {
		return nil, err
	}
	children := make([]*tree.Node, 0, len(parts))
	for _, p := range parts {
		c, err := b.Build(p)
		if err != nil {
			return nil, errors.Wrapf(err, "building %q", p.Condition())
		}
		children = append(children, c)
	}
	return tree.NewBranch(d, children), nil
}

func split(d dataset.Dataset, g gain.Gain) ([]dataset.Dataset, error) {
	index := d.AttributeIndex(g.Attribute)
	if index < 0 || index == d.NumberOfAttributes()-1 {
		return nil, errors.Wrapf(ErrInternalInconsistency, "ranked attribute %s is not a predictor of the dataset", g.Attribute)
	}
	attr := d.Attribute(index)
	var parts []dataset.Dataset
	var err error
	switch attr.Kind() {
	case feature.Nominal:
		parts, err = d.PartitionByNominalAttribute(index)
	case feature.Ordered:
		boundary := feature.IndexOf(attr, g.SplitAt)
		if boundary < 0 {
			return nil, errors.Wrapf(ErrInternalInconsistency, "split value %q not found in the domain of %s", g.SplitAt, attr.Name())
		}
		parts, err = d.PartitionByOrderedAttribute(index, boundary)
	default:
		return nil, errors.Wrapf(ErrInternalInconsistency, "attribute %s has unknown kind %v", attr.Name(), attr.Kind())
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInternalInconsistency, "splitting on %s: %v", attr.Name(), err)
	}
	return parts, nil
}

func informative(gains []gain.Gain) bool {
	for _, g := range gains {
		if g.Value != 0 {
			return true
		}
	}
	return false
}
