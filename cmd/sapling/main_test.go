package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	trainingCSV = `Weather,Play
Sunny,Yes
Sunny,Yes
Rainy,No
`
	metadataYML = `features:
  - name: Weather
    values: [Sunny, Cloudy, Rainy]
  - name: Play
    values: [Yes, No]
`
)

func testConfig(t *testing.T) *rootCmdConfig {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/training.csv", []byte(trainingCSV), 0644))
	require.NoError(t, afero.WriteFile(fs, "/metadata.yml", []byte(metadataYML), 0644))
	require.NoError(t, afero.WriteFile(fs, "/testing.csv", []byte("Weather,Play\nSunny,Yes\nRainy,Yes\nCloudy,No\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/samples.csv", []byte("Weather\nRainy\nCloudy\n"), 0644))
	return &rootCmdConfig{fs: fs}
}

func exitCode(t *testing.T, err error) int {
	var ce *cmdError
	require.True(t, errors.As(err, &ce), "unexpected error %v", err)
	return ce.code
}

func TestGrow(t *testing.T) {
	config := &growCmdConfig{rootCmdConfig: testConfig(t), dataInput: "/training.csv"}
	var out bytes.Buffer
	require.NoError(t, config.run(context.Background(), &out))
	require.Equal(t, "if (Weather = Sunny) {\n  Play = Yes\n}\nelse if (Weather = Rainy) {\n  Play = No\n}\n", out.String())
}

func TestGrowToFile(t *testing.T) {
	rcc := testConfig(t)
	config := &growCmdConfig{
		rootCmdConfig: rcc,
		dataInput:     "/training.csv",
		metadataInput: "/metadata.yml",
		output:        "/tree.txt",
	}
	var out bytes.Buffer
	require.NoError(t, config.run(context.Background(), &out))
	require.Empty(t, out.String())
	written, err := afero.ReadFile(rcc.fs, "/tree.txt")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(written), "if (Weather = Sunny) {"))
}

func TestGrowErrors(t *testing.T) {
	testCases := []struct {
		config *growCmdConfig
		code   int
	}{
		{&growCmdConfig{dataInput: "mongodb://localhost/weather"}, 1},
		{&growCmdConfig{dataInput: "/training.csv", metadataInput: "/missing.yml"}, 2},
		{&growCmdConfig{dataInput: "/missing.csv"}, 4},
		{&growCmdConfig{dataInput: "/training.csv", classFeature: "Wind"}, 4},
	}
	for _, tc := range testCases {
		tc.config.rootCmdConfig = testConfig(t)
		err := tc.config.run(context.Background(), &bytes.Buffer{})
		require.Equal(t, tc.code, exitCode(t, err), "%+v", tc.config)
	}
}

func TestLoaderErrorsKeepTheirCause(t *testing.T) {
	grow := &growCmdConfig{rootCmdConfig: testConfig(t), dataInput: "/missing.csv"}
	err := grow.run(context.Background(), &bytes.Buffer{})
	require.Equal(t, 4, exitCode(t, err))
	require.True(t, errors.Is(err, os.ErrNotExist), "unexpected error %v", err)

	grow = &growCmdConfig{rootCmdConfig: testConfig(t), dataInput: "/training.csv", metadataInput: "/missing.yml"}
	err = grow.run(context.Background(), &bytes.Buffer{})
	require.Equal(t, 2, exitCode(t, err))
	require.True(t, errors.Is(err, os.ErrNotExist), "unexpected error %v", err)

	test := &testCmdConfig{rootCmdConfig: testConfig(t), dataInput: "/training.csv", testInput: "/missing.csv"}
	err = test.run(context.Background(), &bytes.Buffer{})
	require.Equal(t, 4, exitCode(t, err))
	require.True(t, errors.Is(err, os.ErrNotExist), "unexpected error %v", err)
	require.Contains(t, err.Error(), "reading testing set")
}

func TestTestCommand(t *testing.T) {
	config := &testCmdConfig{
		rootCmdConfig: testConfig(t),
		dataInput:     "/training.csv",
		testInput:     "/testing.csv",
		metadataInput: "/metadata.yml",
	}
	var out bytes.Buffer
	require.NoError(t, config.run(context.Background(), &out))
	require.Equal(t, "0.333333 success rate, failed to make a prediction for 1 samples\n", out.String())

	config.testInput = ""
	require.Equal(t, 1, exitCode(t, config.run(context.Background(), &out)))
}

func TestPredictCommand(t *testing.T) {
	config := &predictCmdConfig{
		rootCmdConfig:  testConfig(t),
		dataInput:      "/training.csv",
		samplesInput:   "/samples.csv",
		metadataInput:  "/metadata.yml",
		undefinedValue: "?",
	}
	var out bytes.Buffer
	require.NoError(t, config.run(context.Background(), &out))
	require.Equal(t, "Weather,Play\nRainy,No\nCloudy,?\n", out.String())

	config.samplesInput = "/missing.csv"
	require.Equal(t, 5, exitCode(t, config.run(context.Background(), &out)))
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		cmd := cliParser()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute(), "%v", args)
		require.Equal(t, "sapling "+version+"\n", out.String(), "%v", args)
	}
}
