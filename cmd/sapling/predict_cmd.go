package main

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	samplecsv "github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	samplesInput   string
	metadataInput  string
	classFeature   string
	table          string
	undefinedValue string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of samples",
		Long:  `Grow a tree from a training set and use it to predict the class feature value for every sample in a CSV file, writing them back as CSV`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.run(cmd.Context(), cmd.OutOrStdout())
			config.syncLog()
			exitOnError(err)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.samplesInput), "samples", "s", "", "path to a CSV file with the samples to classify (required)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", metadataFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.classFeature), "class-feature", "c", "", classFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", tableFlagUsage)
	cmd.PersistentFlags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to output for samples the tree cannot classify")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.samplesInput == "" {
		return errors.New("required samples flag was not set")
	}
	return validateSource(pcc.dataInput, pcc.metadataInput)
}

func (pcc *predictCmdConfig) run(ctx context.Context, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := pcc.Validate()
	if err != nil {
		return fail(1, err)
	}
	schema, err := pcc.readSchema(pcc.metadataInput)
	if err != nil {
		return fail(2, err)
	}
	trainingSet, err := pcc.loadDataset(ctx, pcc.dataInput, pcc.table, schema, pcc.classFeature)
	if err != nil {
		return fail(4, errors.Wrap(err, "reading training set"))
	}
	header, records, err := samplecsv.ReadRecordsFromFilePath(pcc.fs, pcc.samplesInput)
	if err != nil {
		return fail(5, errors.Wrap(err, "reading samples"))
	}
	t, err := sapling.Grow(trainingSet)
	if err != nil {
		return fail(8, errors.Wrap(err, "growing the tree"))
	}
	pcc.Logf("Classifying %d samples...", len(records))
	err = predict(t, header, records, pcc.undefinedValue, stdout)
	if err != nil {
		return fail(6, err)
	}
	pcc.Logf("Done")
	return nil
}

// predict writes the samples as CSV with the class predicted by the tree
// in the label column, which is appended when the samples lack it.
func predict(t *tree.Tree, header []string, records [][]string, undefinedValue string, out io.Writer) error {
	labelColumn := -1
	for i, name := range header {
		if name == t.Label.Name() {
			labelColumn = i
		}
	}
	outHeader := header
	if labelColumn < 0 {
		labelColumn = len(header)
		outHeader = append(append([]string(nil), header...), t.Label.Name())
	}
	w := csv.NewWriter(out)
	if err := w.Write(outHeader); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for ri, record := range records {
		values := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				values[name] = record[i]
			}
		}
		class, err := t.Classify(dataset.NewSample(values))
		if err != nil {
			if !errors.Is(err, tree.ErrCannotClassify) {
				return errors.Wrapf(err, "classifying sample %d", ri)
			}
			class = undefinedValue
		}
		row := make([]string, len(outHeader))
		copy(row, record)
		row[labelColumn] = class
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing sample %d", ri)
		}
	}
	w.Flush()
	return w.Error()
}
