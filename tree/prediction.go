package tree

import (
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

// TreeError represents an error related with using trees
type TreeError string

/*
ErrCannotClassify is the error returned by the Classify method of a tree
when the sample does not satisfy the criterion of any child of a node on
its path, as opposed to cases where values for a feature cannot be
obtained for example.
*/
const ErrCannotClassify = TreeError("no class available for this kind of sample")

/*
ErrRenderContract is the error returned when rendering a node that is
neither a leaf nor internal with children.
*/
const ErrRenderContract = TreeError("node cannot be rendered")

func (te TreeError) Error() string {
	return string(te)
}

// Classify takes a sample and returns the class the tree predicts for it
// or an error if the classification could not be made.
func (t *Tree) Classify(s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", errors.New("nil tree cannot classify samples")
	}
	n := t.Root
	for !n.Leaf {
		var selected *Node
		for _, c := range n.Children {
			criterion := c.Criterion()
			if criterion == nil {
				continue
			}
			ok, err := criterion.SatisfiedBy(s)
			if err != nil {
				return "", errors.Wrap(err, "classifying sample")
			}
			if ok {
				selected = c
				break
			}
		}
		if selected == nil {
			return "", errors.Wrapf(ErrCannotClassify, "sample does not satisfy any criteria under %q", n.Condition())
		}
		n = selected
	}
	return n.Class, nil
}

/*
Test takes a dataset and returns three values:
  - the classification success rate of the tree over the given dataset
  - the number of samples the tree could not classify because of ErrCannotClassify errors
  - an error if a sample could not be classified for other reasons. If this is
    not nil, the other values will be 0.0 and 0 respectively

The dataset must define the label of the tree.
*/
func (t *Tree) Test(d dataset.Dataset) (float64, int, error) {
	if t == nil {
		return 0.0, 0, nil
	}
	samples := d.Samples()
	if len(samples) == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for _, sample := range samples {
		class, err := t.Classify(sample)
		if err != nil {
			if !errors.Is(err, ErrCannotClassify) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		v, err := sample.ValueFor(t.Label)
		if err != nil {
			return 0.0, 0, err
		}
		if class == v {
			result += 1.0
		}
	}
	return result / float64(len(samples)), errCount, nil
}
