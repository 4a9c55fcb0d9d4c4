/*
Package mongodataset provides methods to load a dataset.Dataset
from a MongoDB collection.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	// DefaultCollection is the name of the collection samples
	// are read from unless told otherwise
	DefaultCollection = "samples"

	defaultDialTimeout = 10 * time.Second
)

/*
IsSource takes a source string and returns whether it is a MongoDB
connection URL.
*/
func IsSource(source string) bool {
	return strings.HasPrefix(source, "mongodb://")
}

/*
Open takes a context, a MongoDB connection URL, a collection name, a
schema and the name of the label feature and returns a dataset with a
row for every document in the collection of the URL's default database,
or an error. Documents are expected to hold a field for every feature
in the schema, which is required.
*/
func Open(ctx context.Context, url, collection string, schema []feature.Feature, label string) (dataset.Dataset, error) {
	if len(schema) == 0 {
		return nil, errors.New("reading MongoDB collection: a schema is required")
	}
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	session, err := mgo.DialWithTimeout(url, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}
	defer session.Close()
	return Load(ctx, session, collection, schema, label)
}

/*
Load takes a context, a MongoDB session, a collection name, a schema and
the name of the label feature and returns a dataset with a row for every
document in the collection of the session's default database, or an error.
*/
func Load(ctx context.Context, session *mgo.Session, collection string, schema []feature.Feature, label string) (dataset.Dataset, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	header := make([]string, 0, len(schema))
	for _, f := range schema {
		if err := validFieldName(f.Name()); err != nil {
			return nil, err
		}
		header = append(header, f.Name())
	}
	iter := session.DB("").C(collection).Find(nil).Iter()
	var doc bson.M
	var records [][]string
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		record, err := Record(doc, header)
		if err != nil {
			iter.Close()
			return nil, errors.Wrapf(err, "document %d of collection %s", len(records), collection)
		}
		records = append(records, record)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrapf(err, "reading collection %s", collection)
	}
	return dataset.FromRecords(header, records, schema, label)
}

/*
Record takes a document and a slice of field names and returns the string
values of those fields in the document, or an error if any of them is
missing.
*/
func Record(doc bson.M, fields []string) ([]string, error) {
	record := make([]string, 0, len(fields))
	for _, name := range fields {
		v, ok := doc[name]
		if !ok || v == nil {
			return nil, errors.Errorf("missing value for feature %s", name)
		}
		record = append(record, fmt.Sprintf("%v", v))
	}
	return record, nil
}

func validFieldName(fName string) error {
	if fName == "_id" {
		return errors.Errorf("invalid feature name %q: reserved collection field", "_id")
	}
	if strings.ContainsAny(fName, ".$") {
		return errors.Errorf("invalid feature name %q: contains reserved characters %q or %q", fName, ".", "$")
	}
	return nil
}
