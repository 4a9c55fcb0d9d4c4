package feature

import (
	"fmt"
)

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the criterion.

Its Feature method returns the feature on which the criterion is applied.

Its String method returns the condition the criterion stands for, as in
"Outlook = Sunny" or "Humidity >= 80".
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(sample Sample) (bool, error)
	String() string
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(Feature) (string, error)
}

/*
ValueCriterion represents a constraint on a feature to take (or avoid)
a specific value.

Its Value method returns the value to which the feature is constrained.
*/
type ValueCriterion interface {
	Criterion
	Value() string
	Negated() bool
}

/*
BoundaryCriterion represents a constraint on an ordered feature to take a
value below or at-or-above a boundary value.

Its Boundary method returns the boundary value and Below whether the
criterion is satisfied by values preceding the boundary (true) or by values
at or following it (false).
*/
type BoundaryCriterion interface {
	Criterion
	Boundary() string
	Below() bool
}

type valueCriterion struct {
	feature Feature
	value   string
	negated bool
}

type boundaryCriterion struct {
	feature  *OrderedFeature
	boundary string
	below    bool
}

/*
NewValueCriterion takes a feature and a value and returns a ValueCriterion
satisfied by samples whose value for the feature equals the given one.
*/
func NewValueCriterion(f Feature, value string) ValueCriterion {
	return &valueCriterion{f, value, false}
}

/*
NewNotValueCriterion takes a feature and a value and returns a ValueCriterion
satisfied by samples whose value for the feature differs from the given one.
*/
func NewNotValueCriterion(f Feature, value string) ValueCriterion {
	return &valueCriterion{f, value, true}
}

/*
NewBelowCriterion takes an ordered feature and a boundary value and returns
a BoundaryCriterion satisfied by samples whose value for the feature
precedes the boundary.
*/
func NewBelowCriterion(f *OrderedFeature, boundary string) BoundaryCriterion {
	return &boundaryCriterion{f, boundary, true}
}

/*
NewAtOrAboveCriterion takes an ordered feature and a boundary value and
returns a BoundaryCriterion satisfied by samples whose value for the feature
is the boundary or follows it.
*/
func NewAtOrAboveCriterion(f *OrderedFeature, boundary string) BoundaryCriterion {
	return &boundaryCriterion{f, boundary, false}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (vc *valueCriterion) Feature() Feature {
	return vc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion: whether its value for the feature equals the value
on the criterion, or differs from it for negated criteria.
*/
func (vc *valueCriterion) SatisfiedBy(sample Sample) (bool, error) {
	val, err := sample.ValueFor(vc.feature)
	if err != nil {
		return false, err
	}
	return (val == vc.value) != vc.negated, nil
}

func (vc *valueCriterion) Value() string {
	return vc.value
}

func (vc *valueCriterion) Negated() bool {
	return vc.negated
}

func (vc *valueCriterion) String() string {
	if vc.negated {
		return fmt.Sprintf("%s != %s", vc.feature.Name(), vc.value)
	}
	return fmt.Sprintf("%s = %s", vc.feature.Name(), vc.value)
}

/*
Feature returns the feature to which the constraint applies.
*/
func (bc *boundaryCriterion) Feature() Feature {
	return bc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion. Values that cannot be compared with the boundary
satisfy neither side.
*/
func (bc *boundaryCriterion) SatisfiedBy(sample Sample) (bool, error) {
	val, err := sample.ValueFor(bc.feature)
	if err != nil {
		return false, err
	}
	c, ok := bc.feature.Compare(val, bc.boundary)
	if !ok {
		return false, nil
	}
	if bc.below {
		return c < 0, nil
	}
	return c >= 0, nil
}

func (bc *boundaryCriterion) Boundary() string {
	return bc.boundary
}

func (bc *boundaryCriterion) Below() bool {
	return bc.below
}

func (bc *boundaryCriterion) String() string {
	if bc.below {
		return fmt.Sprintf("%s < %s", bc.feature.Name(), bc.boundary)
	}
	return fmt.Sprintf("%s >= %s", bc.feature.Name(), bc.boundary)
}
