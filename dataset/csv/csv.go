/*
Package csv provides methods to read datasets from CSV streams.
*/
package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

/*
ReadRecords takes an io.Reader for a CSV stream and returns its header (the
first row) and the rest of its rows, or an error if the stream cannot be read
or parsed. Values are trimmed of surrounding whitespace.
*/
func ReadRecords(reader io.Reader) ([]string, [][]string, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading header")
	}
	header = trim(header)
	var records [][]string
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "reading line %d", l)
		}
		records = append(records, trim(row))
	}
	return header, records, nil
}

/*
ReadDataset takes an io.Reader for a CSV stream, a schema (that can be nil)
and the name of the label feature and returns the dataset read from the
stream or an error.

The header or first row of the CSV content is expected to consist of the
names of the features. The rest of the rows should consist of values for
all of them. See dataset.FromRecords for the handling of the schema and
the label.
*/
func ReadDataset(reader io.Reader, schema []feature.Feature, label string) (dataset.Dataset, error) {
	header, records, err := ReadRecords(reader)
	if err != nil {
		return nil, err
	}
	return dataset.FromRecords(header, records, schema, label)
}

/*
ReadDatasetFromFilePath takes a filesystem, a filepath string, a schema and
a label name, opens the file to which the filepath points to (os.Stdin if
the filepath is "") and uses ReadDataset to return the dataset read from
it or an error.
*/
func ReadDatasetFromFilePath(fs afero.Fs, filepath string, schema []feature.Feature, label string) (dataset.Dataset, error) {
	var f io.ReadCloser
	if filepath == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = fs.Open(filepath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", filepath)
		}
	}
	defer f.Close()
	ds, err := ReadDataset(f, schema, label)
	if err != nil {
		err = errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return ds, err
}

/*
ReadRecordsFromFilePath takes a filesystem and a filepath string and returns
the header and rows read with ReadRecords from the file (os.Stdin if the
filepath is "") or an error.
*/
func ReadRecordsFromFilePath(fs afero.Fs, filepath string) ([]string, [][]string, error) {
	var f io.ReadCloser
	if filepath == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = fs.Open(filepath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "opening %s", filepath)
		}
	}
	defer f.Close()
	header, records, err := ReadRecords(f)
	if err != nil {
		err = errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return header, records, err
}

func trim(values []string) []string {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
