package dataset

import (
	"strconv"

	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

/*
FromRecords takes a header with column names, a slice of records whose values
follow the header, a schema and the name of the label column and returns a
dataset with the records, or an error.

The label column becomes the last attribute of the dataset. The rest follow
the order of the schema or, without one, the order of the header. An empty
label name selects the last column.

When the schema is nil, features are inferred from the records: columns with
only numeric values become ordered features, and the rest (as well as the
label) become nominal ones. Otherwise every column in the header must be
declared in the schema; declared features missing from the header are
ignored.
*/
func FromRecords(header []string, records [][]string, schema []feature.Feature, label string) (Dataset, error) {
	if len(header) == 0 {
		return nil, errors.New("reading records: empty header")
	}
	if label == "" {
		label = header[len(header)-1]
	}
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := positions[name]; ok {
			return nil, errors.Errorf("reading records: column %s appears more than once", name)
		}
		positions[name] = i
	}
	labelPosition, ok := positions[label]
	if !ok {
		return nil, errors.Errorf("reading records: label %s is not a column", label)
	}
	order, err := columnOrder(header, positions, labelPosition, schema)
	if err != nil {
		return nil, err
	}
	for ri, record := range records {
		if len(record) != len(header) {
			return nil, errors.Errorf("reading records: record %d has %d values, expected %d", ri, len(record), len(header))
		}
	}
	features, err := arrangeSchema(header, records, order, schema)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(records))
	for ri, record := range records {
		row := make([]string, len(order))
		for i, p := range order {
			row[i] = record[p]
		}
		rows[ri] = row
	}
	return New(features, rows)
}

// columnOrder returns the header positions in attribute order, label last
func columnOrder(header []string, positions map[string]int, labelPosition int, schema []feature.Feature) ([]int, error) {
	order := make([]int, 0, len(header))
	if schema == nil {
		for i := range header {
			if i != labelPosition {
				order = append(order, i)
			}
		}
		return append(order, labelPosition), nil
	}
	declared := make(map[string]bool, len(schema))
	for _, f := range schema {
		declared[f.Name()] = true
		if p, ok := positions[f.Name()]; ok && p != labelPosition {
			order = append(order, p)
		}
	}
	for _, name := range header {
		if !declared[name] {
			return nil, errors.Errorf("reading records: column %s is not a declared feature", name)
		}
	}
	return append(order, labelPosition), nil
}

func arrangeSchema(header []string, records [][]string, order []int, schema []feature.Feature) ([]feature.Feature, error) {
	features := make([]feature.Feature, 0, len(order))
	if schema == nil {
		for i, p := range order {
			if i < len(order)-1 && numericColumn(records, p) {
				features = append(features, feature.NewOrderedFeature(header[p], nil))
			} else {
				features = append(features, feature.NewNominalFeature(header[p], nil))
			}
		}
		return features, nil
	}
	declared := make(map[string]feature.Feature, len(schema))
	for _, f := range schema {
		declared[f.Name()] = f
	}
	for _, p := range order {
		f, ok := declared[header[p]]
		if !ok {
			return nil, errors.Errorf("reading records: column %s is not a declared feature", header[p])
		}
		features = append(features, f)
	}
	return features, nil
}

func numericColumn(records [][]string, p int) bool {
	if len(records) == 0 {
		return false
	}
	for _, record := range records {
		if _, err := strconv.ParseFloat(record[p], 64); err != nil {
			return false
		}
	}
	return true
}
