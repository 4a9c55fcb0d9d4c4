package main

import (
	"context"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/dataset/mongodataset"
	"github.com/pbanos/sapling/dataset/sqldataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/pkg/errors"
)

const (
	inputFlagUsage    = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)"
	metadataFlagUsage = "path to a YML file with metadata describing the different features available on the input (required for MongoDB inputs, inferred from the data otherwise)"
	classFlagUsage    = "name of the feature the generated tree should predict (defaults to the last column of the input)"
	tableFlagUsage    = "name of the table or collection holding the samples on SQL and MongoDB inputs"
)

func (rcc *rootCmdConfig) readSchema(metadataInput string) ([]feature.Feature, error) {
	if metadataInput == "" {
		return nil, nil
	}
	rcc.Logf("Reading features from metadata at %s...", metadataInput)
	features, err := yaml.ReadFeaturesFromFile(rcc.fs, metadataInput)
	if err != nil {
		return nil, err
	}
	rcc.Logf("Features from metadata read")
	return features, nil
}

func (rcc *rootCmdConfig) loadDataset(ctx context.Context, input, table string, schema []feature.Feature, classFeature string) (dataset.Dataset, error) {
	if mongodataset.IsSource(input) {
		rcc.Logf("Reading set from MongoDB collection %s...", collectionName(table))
		return mongodataset.Open(ctx, input, table, schema, classFeature)
	}
	if driver, ok := sqldataset.Driver(input); ok {
		rcc.Logf("Reading set from %s table %s...", driver, tableName(table))
		return sqldataset.Open(ctx, input, table, schema, classFeature)
	}
	if input == "" {
		rcc.Logf("Reading set from STDIN...")
	} else {
		rcc.Logf("Opening %s to read set...", input)
	}
	return csv.ReadDatasetFromFilePath(rcc.fs, input, schema, classFeature)
}

func validateSource(input, metadataInput string) error {
	if mongodataset.IsSource(input) && metadataInput == "" {
		return errors.New("metadata flag is required to read from MongoDB")
	}
	return nil
}

func tableName(table string) string {
	if table == "" {
		return sqldataset.DefaultTable
	}
	return table
}

func collectionName(table string) string {
	if table == "" {
		return mongodataset.DefaultCollection
	}
	return table
}
