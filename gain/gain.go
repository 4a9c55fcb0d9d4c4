/*
Package gain ranks the attributes of a dataset by the information gain
obtained when partitioning it on each of them to predict its label.
*/
package gain

import (
	"math"
	"sort"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"gonum.org/v1/gonum/stat"
)

// Epsilon is the information gain under which a partition is considered
// to bring no information at all.
const Epsilon = 1e-12

/*
Gain represents the information gain obtained by partitioning a dataset on
one of its attributes.

For ordered attributes SplitAt holds the domain value that best splits the
dataset in two (rows below it and rows at or above it) and Boundary its
index in the attribute's domain. For nominal attributes SplitAt is empty
and Boundary is -1. Ordered attributes with less than two values cannot be
split and get no SplitAt either.
*/
type Gain struct {
	Attribute string
	Index     int
	Kind      feature.Kind
	Value     float64
	SplitAt   string
	Boundary  int
}

/*
Rank takes a dataset and returns the gain of each of its attributes but the
label, sorted in descending order of information gain value. Attributes with
equal gains keep the order they have in the dataset. Gains are expressed in
bits and those under Epsilon are reported as exactly 0.
*/
func Rank(d dataset.Dataset) []Gain {
	n := d.NumberOfAttributes()
	if n < 2 {
		return nil
	}
	labels := d.Column(n - 1)
	entropy := Entropy(labels)
	gains := make([]Gain, 0, n-1)
	for i := 0; i < n-1; i++ {
		attr := d.Attribute(i)
		var g Gain
		if attr.Kind() == feature.Ordered {
			g = orderedGain(attr, d.Column(i), labels, entropy)
		} else {
			g = Gain{Value: entropy - conditionalEntropy(d.Column(i), labels), Boundary: -1}
		}
		g.Attribute = attr.Name()
		g.Index = i
		g.Kind = attr.Kind()
		if g.Value < Epsilon {
			g.Value = 0
		}
		gains = append(gains, g)
	}
	sort.SliceStable(gains, func(i, j int) bool {
		return gains[i].Value > gains[j].Value
	})
	return gains
}

/*
Entropy takes a slice of values and returns the entropy in bits of their
distribution.
*/
func Entropy(values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	p := make([]float64, 0, len(order))
	total := float64(len(values))
	for _, v := range order {
		p = append(p, float64(counts[v])/total)
	}
	return stat.Entropy(p) / math.Ln2
}

// conditionalEntropy returns the entropy of labels once grouped by the
// paired value in values, weighted by group size.
func conditionalEntropy(values, labels []string) float64 {
	groups := make(map[string][]string)
	var order []string
	for i, v := range values {
		if _, ok := groups[v]; !ok {
			order = append(order, v)
		}
		groups[v] = append(groups[v], labels[i])
	}
	var result float64
	total := float64(len(labels))
	for _, v := range order {
		g := groups[v]
		result += Entropy(g) * float64(len(g)) / total
	}
	return result
}

func orderedGain(attr feature.Feature, values, labels []string, entropy float64) Gain {
	domain := attr.Values()
	best := Gain{Boundary: -1}
	if len(domain) < 2 {
		return best
	}
	position := make(map[string]int, len(domain))
	for i, v := range domain {
		position[v] = i
	}
	sides := make([]string, len(values))
	for k := 1; k < len(domain); k++ {
		for i, v := range values {
			if position[v] < k {
				sides[i] = "below"
			} else {
				sides[i] = "above"
			}
		}
		g := entropy - conditionalEntropy(sides, labels)
		if best.Boundary < 0 || g > best.Value {
			best = Gain{Value: g, SplitAt: domain[k], Boundary: k}
		}
	}
	return best
}
