package main

import (
	"context"
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/pbanos/sapling"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
	classFeature  string
	table         string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain feature and print it as a nested if/else program.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.run(cmd.Context(), cmd.OutOrStdout())
			config.syncLog()
			exitOnError(err)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", tableFlagUsage)
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return validateSource(gcc.dataInput, gcc.metadataInput)
}

func (gcc *growCmdConfig) run(ctx context.Context, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := gcc.Validate()
	if err != nil {
		return fail(1, err)
	}
	schema, err := gcc.readSchema(gcc.metadataInput)
	if err != nil {
		return fail(2, err)
	}
	trainingSet, err := gcc.loadDataset(ctx, gcc.dataInput, gcc.table, schema, gcc.classFeature)
	if err != nil {
		return fail(4, errors.Wrap(err, "reading training set"))
	}
	gcc.Logf("Growing tree from a set with %s samples and %d features to predict %s ...",
		humanize.Comma(int64(trainingSet.NumberOfRows())), trainingSet.NumberOfAttributes()-1, trainingSet.Label().Name())
	t, err := sapling.Grow(trainingSet)
	if err != nil {
		return fail(8, errors.Wrap(err, "growing the tree"))
	}
	stats := t.Stats()
	gcc.Logf("Done: %s nodes, %s leaves, depth %d", humanize.Comma(int64(stats.Nodes)), humanize.Comma(int64(stats.Leaves)), stats.Depth)
	rendered, err := t.Render()
	if err != nil {
		return fail(9, errors.Wrap(err, "rendering the tree"))
	}
	err = outputTree(gcc.fs, gcc.output, stdout, rendered)
	if err != nil {
		return fail(10, err)
	}
	return nil
}

func outputTree(fs afero.Fs, outputPath string, stdout io.Writer, rendered string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(stdout, rendered)
		return err
	}
	f, err := fs.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outputPath)
	}
	_, err = fmt.Fprintln(f, rendered)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "writing tree to %s", outputPath)
	}
	return nil
}
