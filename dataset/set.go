package dataset

import (
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

/*
Dataset represents a partition of a training set: a read-only view over some
of its rows and some of its attributes.

The attributes of a dataset are ordered and the last one is the label, the
feature whose value trees learn to predict. Each attribute's domain is
restricted to the values observed in the rows of the dataset, keeping the
order the attribute was declared with.

Its Criterion method returns the criterion that produced the dataset from its
parent, or nil for a dataset that is not a partition of another. Its Condition
method returns the string representation of that criterion, or an empty string.

Its PartitionByNominalAttribute method splits the dataset into one dataset per
value in the domain of the attribute at the given index, in domain order. The
attribute is not part of the resulting datasets.

Its PartitionByNominalValue method splits the dataset into two datasets: rows
taking the given value for the attribute at the given index and the rest of
them. The attribute is not part of the resulting datasets.

Its PartitionByOrderedAttribute method splits the dataset into two datasets:
rows whose value for the ordered attribute at the given index precedes the
domain value at the given boundary index and rows whose value is that one or
follows it. The attribute remains part of the resulting datasets.

Partitions never hold zero rows, as domains only hold values observed in the
rows of the dataset. The partitioning methods return an error wrapping
ErrInvalidPartition for an attribute index, value or boundary that does not
fit the dataset.
*/
type Dataset interface {
	NumberOfAttributes() int
	NumberOfRows() int
	Attribute(index int) feature.Feature
	AttributeByName(name string) feature.Feature
	AttributeIndex(name string) int
	Attributes() []feature.Feature
	Label() feature.Feature
	Criterion() feature.Criterion
	Condition() string
	Column(index int) []string
	CountValues(index int) map[string]int
	Samples() []feature.Sample
	PartitionByNominalAttribute(index int) ([]Dataset, error)
	PartitionByNominalValue(index int, value string) ([]Dataset, error)
	PartitionByOrderedAttribute(index, boundary int) ([]Dataset, error)
}

/*
DatasetError represents an error related with datasets
*/
type DatasetError string

/*
ErrInvalidPartition is returned when a partition is requested with an attribute
index, value or boundary that does not fit the dataset.
*/
const ErrInvalidPartition = DatasetError("invalid partition")

func (de DatasetError) Error() string {
	return string(de)
}

// table holds the rows shared by a dataset and all its partitions. It is
// never modified after creation.
type table struct {
	schema  []feature.Feature
	columns map[string]int
	rows    [][]string
}

type view struct {
	t         *table
	cols      []int
	rows      []int
	attrs     []feature.Feature
	criterion feature.Criterion
}

/*
New takes a schema and a slice of rows whose values follow the order of the
schema and returns a dataset with all of them, or an error if the schema is
empty or a row does not fit it.

Features in the schema with an empty domain get it from the rows: ordered
features take the distinct values sorted numerically (which requires them
to be numbers) and nominal features take them by order of appearance.
*/
func New(schema []feature.Feature, rows [][]string) (Dataset, error) {
	if len(schema) == 0 {
		return nil, errors.New("creating dataset: no features in schema")
	}
	t := &table{
		schema:  make([]feature.Feature, len(schema)),
		columns: make(map[string]int, len(schema)),
		rows:    rows,
	}
	for i, f := range schema {
		if _, ok := t.columns[f.Name()]; ok {
			return nil, errors.Errorf("creating dataset: feature %s appears more than once", f.Name())
		}
		t.columns[f.Name()] = i
		for ri, row := range rows {
			if len(row) != len(schema) {
				return nil, errors.Errorf("creating dataset: row %d has %d values, expected %d", ri, len(row), len(schema))
			}
			if row[i] == "" {
				return nil, errors.Errorf("creating dataset: row %d has no value for feature %s", ri, f.Name())
			}
		}
		rf, err := resolveDomain(f, rows, i)
		if err != nil {
			return nil, errors.Wrap(err, "creating dataset")
		}
		for ri, row := range rows {
			if _, err := rf.Valid(row[i]); err != nil {
				return nil, errors.Wrapf(err, "creating dataset: row %d", ri)
			}
		}
		t.schema[i] = rf
	}
	cols := make([]int, len(schema))
	for i := range cols {
		cols[i] = i
	}
	indexes := make([]int, len(rows))
	for i := range indexes {
		indexes[i] = i
	}
	return newView(t, cols, indexes, nil), nil
}

func resolveDomain(f feature.Feature, rows [][]string, col int) (feature.Feature, error) {
	if len(f.Values()) > 0 {
		return f, nil
	}
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[col])
	}
	if f.Kind() == feature.Ordered {
		return feature.NewNumericFeature(f.Name(), values)
	}
	seen := make(map[string]bool)
	domain := make([]string, 0)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			domain = append(domain, v)
		}
	}
	return feature.NewNominalFeature(f.Name(), domain), nil
}

func newView(t *table, cols, rows []int, criterion feature.Criterion) *view {
	attrs := make([]feature.Feature, len(cols))
	for i, c := range cols {
		present := make(map[string]bool)
		for _, r := range rows {
			present[t.rows[r][c]] = true
		}
		attrs[i] = t.schema[c].Restrict(func(v string) bool { return present[v] })
	}
	return &view{t, cols, rows, attrs, criterion}
}

func (v *view) NumberOfAttributes() int {
	return len(v.attrs)
}

func (v *view) NumberOfRows() int {
	return len(v.rows)
}

func (v *view) Attribute(index int) feature.Feature {
	if index < 0 || index >= len(v.attrs) {
		return nil
	}
	return v.attrs[index]
}

func (v *view) AttributeByName(name string) feature.Feature {
	return v.Attribute(v.AttributeIndex(name))
}

// AttributeIndex returns -1 when no attribute has the given name
func (v *view) AttributeIndex(name string) int {
	for i, a := range v.attrs {
		if a.Name() == name {
			return i
		}
	}
	return -1
}

func (v *view) Attributes() []feature.Feature {
	return append([]feature.Feature(nil), v.attrs...)
}

func (v *view) Label() feature.Feature {
	if len(v.attrs) == 0 {
		return nil
	}
	return v.attrs[len(v.attrs)-1]
}

func (v *view) Criterion() feature.Criterion {
	return v.criterion
}

func (v *view) Condition() string {
	if v.criterion == nil {
		return ""
	}
	return v.criterion.String()
}

func (v *view) Column(index int) []string {
	if index < 0 || index >= len(v.cols) {
		return nil
	}
	c := v.cols[index]
	result := make([]string, len(v.rows))
	for i, r := range v.rows {
		result[i] = v.t.rows[r][c]
	}
	return result
}

func (v *view) CountValues(index int) map[string]int {
	result := make(map[string]int)
	for _, value := range v.Column(index) {
		result[value]++
	}
	return result
}

func (v *view) Samples() []feature.Sample {
	result := make([]feature.Sample, len(v.rows))
	for i, r := range v.rows {
		result[i] = &sample{v.t, r}
	}
	return result
}

func (v *view) PartitionByNominalAttribute(index int) ([]Dataset, error) {
	if err := v.checkIndex(index); err != nil {
		return nil, err
	}
	attr := v.attrs[index]
	values := attr.Values()
	position := make(map[string]int, len(values))
	for i, value := range values {
		position[value] = i
	}
	groups := make([][]int, len(values))
	c := v.cols[index]
	for _, r := range v.rows {
		p := position[v.t.rows[r][c]]
		groups[p] = append(groups[p], r)
	}
	cols := v.colsWithout(index)
	result := make([]Dataset, 0, len(values))
	for i, value := range values {
		result = append(result, newView(v.t, cols, groups[i], feature.NewValueCriterion(attr, value)))
	}
	return result, nil
}

func (v *view) PartitionByNominalValue(index int, value string) ([]Dataset, error) {
	if err := v.checkIndex(index); err != nil {
		return nil, err
	}
	attr := v.attrs[index]
	if feature.IndexOf(attr, value) < 0 {
		return nil, errors.Wrapf(ErrInvalidPartition, "value %s is not in the domain of %s", value, attr.Name())
	}
	if len(attr.Values()) < 2 {
		return nil, errors.Wrapf(ErrInvalidPartition, "%s takes no value other than %s", attr.Name(), value)
	}
	var matching, rest []int
	c := v.cols[index]
	for _, r := range v.rows {
		if v.t.rows[r][c] == value {
			matching = append(matching, r)
		} else {
			rest = append(rest, r)
		}
	}
	cols := v.colsWithout(index)
	return []Dataset{
		newView(v.t, cols, matching, feature.NewValueCriterion(attr, value)),
		newView(v.t, cols, rest, feature.NewNotValueCriterion(attr, value)),
	}, nil
}

func (v *view) PartitionByOrderedAttribute(index, boundary int) ([]Dataset, error) {
	if err := v.checkIndex(index); err != nil {
		return nil, err
	}
	attr, ok := v.attrs[index].(*feature.OrderedFeature)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPartition, "%s is not an ordered attribute", v.attrs[index].Name())
	}
	values := attr.Values()
	if boundary < 1 || boundary >= len(values) {
		return nil, errors.Wrapf(ErrInvalidPartition, "boundary index %d out of range 1..%d for %s", boundary, len(values)-1, attr.Name())
	}
	position := make(map[string]int, len(values))
	for i, value := range values {
		position[value] = i
	}
	var below, above []int
	c := v.cols[index]
	for _, r := range v.rows {
		if position[v.t.rows[r][c]] < boundary {
			below = append(below, r)
		} else {
			above = append(above, r)
		}
	}
	cols := append([]int(nil), v.cols...)
	return []Dataset{
		newView(v.t, cols, below, feature.NewBelowCriterion(attr, values[boundary])),
		newView(v.t, cols, above, feature.NewAtOrAboveCriterion(attr, values[boundary])),
	}, nil
}

func (v *view) checkIndex(index int) error {
	if index < 0 || index >= len(v.attrs) {
		return errors.Wrapf(ErrInvalidPartition, "attribute index %d out of range for %d attributes", index, len(v.attrs))
	}
	return nil
}

func (v *view) colsWithout(index int) []int {
	cols := make([]int, 0, len(v.cols)-1)
	cols = append(cols, v.cols[:index]...)
	return append(cols, v.cols[index+1:]...)
}
