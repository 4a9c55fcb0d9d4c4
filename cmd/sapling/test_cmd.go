package main

import (
	"context"
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type testCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	testInput     string
	metadataInput string
	classFeature  string
	table         string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test its performance against a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.run(cmd.Context(), cmd.OutOrStdout())
			config.syncLog()
			exitOnError(err)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path to a CSV or SQLite3 file, or a PostgreSQL or MongoDB connection URL with data to test the tree against (required)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", tableFlagUsage)
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return errors.New("required test-input flag was not set")
	}
	err := validateSource(tcc.dataInput, tcc.metadataInput)
	if err != nil {
		return err
	}
	return validateSource(tcc.testInput, tcc.metadataInput)
}

func (tcc *testCmdConfig) run(ctx context.Context, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := tcc.Validate()
	if err != nil {
		return fail(1, err)
	}
	schema, err := tcc.readSchema(tcc.metadataInput)
	if err != nil {
		return fail(2, err)
	}
	// the logger is set up before loading sets concurrently
	tcc.log()
	var trainingSet, testingSet dataset.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trainingSet, err = tcc.loadDataset(gctx, tcc.dataInput, tcc.table, schema, tcc.classFeature)
		if err != nil {
			return errors.Wrap(err, "reading training set")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		testingSet, err = tcc.loadDataset(gctx, tcc.testInput, tcc.table, schema, tcc.classFeature)
		if err != nil {
			return errors.Wrap(err, "reading testing set")
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return fail(4, err)
	}
	t, err := sapling.Grow(trainingSet)
	if err != nil {
		return fail(8, errors.Wrap(err, "growing the tree"))
	}
	tcc.Logf("Testing tree against testset with %s samples...", humanize.Comma(int64(testingSet.NumberOfRows())))
	successRate, errorCount, err := t.Test(testingSet)
	if err != nil {
		return fail(6, errors.Wrap(err, "testing tree"))
	}
	tcc.Logf("Done")
	fmt.Fprintf(stdout, "%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
	return nil
}
