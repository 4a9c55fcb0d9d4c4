package feature

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

/*
Kind tells how the values of a feature relate to each other.
*/
type Kind int

const (
	// Nominal features take unordered categorical values
	Nominal Kind = iota
	// Ordered features take values with a meaningful ordering
	Ordered
)

func (k Kind) String() string {
	switch k {
	case Nominal:
		return "nominal"
	case Ordered:
		return "ordered"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
Feature represents a property that can be observed.

Its Values method returns the value domain of the feature as an ordered
sequence of strings. For ordered features the position of a value in the
sequence defines its order.

Its Restrict method returns a feature with the same name, kind and ordering
whose domain only holds those values of the domain for which the given
function returns true.
*/
type Feature interface {
	Name() string
	Kind() Kind
	Values() []string
	Valid(value string) (bool, error)
	Restrict(keep func(string) bool) Feature
}

/*
NominalFeature represents a property that can only take a value among a
finite, unordered set.
*/
type NominalFeature struct {
	name   string
	values []string
}

/*
OrderedFeature represents a property whose values follow an order. Besides
the (possibly restricted) domain of values, it keeps the complete ordering
it was declared with so that values outside a restricted domain can still
be compared.
*/
type OrderedFeature struct {
	name   string
	values []string
	order  map[string]int
}

/*
NewNominalFeature takes a name string and a slice of value strings in
declaration order and returns a nominal feature with them.
*/
func NewNominalFeature(name string, values []string) *NominalFeature {
	return &NominalFeature{name, values}
}

/*
NewOrderedFeature takes a name string and a slice of value strings sorted
according to the ordering of the feature and returns an ordered feature with
them.
*/
func NewOrderedFeature(name string, values []string) *OrderedFeature {
	order := make(map[string]int, len(values))
	for i, v := range values {
		order[v] = i
	}
	return &OrderedFeature{name, values, order}
}

/*
NewNumericFeature takes a name string and a slice of value strings that
can be parsed as float64 numbers and returns an ordered feature whose
domain holds the distinct values sorted in ascending numeric order. It
returns an error if any value is not a number.
*/
func NewNumericFeature(name string, values []string) (*OrderedFeature, error) {
	seen := make(map[string]float64, len(values))
	domain := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Errorf("numeric feature %s got non numeric value %q", name, v)
		}
		seen[v] = f
		domain = append(domain, v)
	}
	sort.SliceStable(domain, func(i, j int) bool {
		return seen[domain[i]] < seen[domain[j]]
	})
	return NewOrderedFeature(name, domain), nil
}

/*
Name returns a string with the name of the feature
*/
func (nf *NominalFeature) Name() string {
	return nf.name
}

// Kind returns Nominal
func (nf *NominalFeature) Kind() Kind {
	return Nominal
}

/*
Values returns a string slice with the values available for the feature
in declaration order
*/
func (nf *NominalFeature) Values() []string {
	return nf.values
}

/*
Valid receives a value and returns a boolean and an error. When the value
is included in the values of the feature, the method returns true and nil.
Otherwise it returns false and an error describing the reason.
*/
func (nf *NominalFeature) Valid(value string) (bool, error) {
	for _, v := range nf.values {
		if v == value {
			return true, nil
		}
	}
	return false, errors.Errorf("nominal feature %s got unknown value %s", nf.name, value)
}

func (nf *NominalFeature) Restrict(keep func(string) bool) Feature {
	return &NominalFeature{nf.name, filter(nf.values, keep)}
}

func (nf *NominalFeature) String() string {
	return nf.name
}

/*
Name returns a string with the name of the feature
*/
func (of *OrderedFeature) Name() string {
	return of.name
}

// Kind returns Ordered
func (of *OrderedFeature) Kind() Kind {
	return Ordered
}

/*
Values returns a string slice with the values available for the feature
in ascending order
*/
func (of *OrderedFeature) Values() []string {
	return of.values
}

/*
Valid receives a value and returns a boolean and an error. When the value
is part of the domain of the feature, the method returns true and nil.
Otherwise it returns false and an error describing the reason.
*/
func (of *OrderedFeature) Valid(value string) (bool, error) {
	for _, v := range of.values {
		if v == value {
			return true, nil
		}
	}
	return false, errors.Errorf("ordered feature %s got unknown value %s", of.name, value)
}

func (of *OrderedFeature) Restrict(keep func(string) bool) Feature {
	return &OrderedFeature{of.name, filter(of.values, keep), of.order}
}

/*
Compare takes two values of the feature and returns -1, 0 or 1 when the
first precedes, equals or follows the second. Values are compared by their
position in the declared ordering; when any of them is not part of it and
both parse as numbers they are compared numerically. The boolean result is
false when the values cannot be compared.
*/
func (of *OrderedFeature) Compare(a, b string) (int, bool) {
	ia, oka := of.order[a]
	ib, okb := of.order[b]
	if oka && okb {
		return compareInts(ia, ib), true
	}
	fa, erra := strconv.ParseFloat(a, 64)
	fb, errb := strconv.ParseFloat(b, 64)
	if erra != nil || errb != nil {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}

func (of *OrderedFeature) String() string {
	return of.name
}

/*
IndexOf takes a feature and a value and returns the position of the value
in the domain of the feature or -1 if it is not part of it.
*/
func IndexOf(f Feature, value string) int {
	for i, v := range f.Values() {
		if v == value {
			return i
		}
	}
	return -1
}

func filter(values []string, keep func(string) bool) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
