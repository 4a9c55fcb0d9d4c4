package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
	fs      afero.Fs
	logger
}

// cmdError carries the exit status a command must end with
type cmdError struct {
	code int
	err  error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sapling",
		Short:   "sapling is a tool to grow decision trees",
		Long:    `A tool to grow decision trees from your data, print them as if/else programs, test them, and use them to classify samples`,
		Version: version,
	}
	rootCmd.SetVersionTemplate(versionTemplate)
	config := &rootCmdConfig{fs: afero.NewOsFs()}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), predictCmd(config))
	return rootCmd
}

func fail(code int, err error) error {
	return &cmdError{code, err}
}

func (ce *cmdError) Error() string {
	return ce.err.Error()
}

func (ce *cmdError) Unwrap() error {
	return ce.err
}

// exitOnError prints a non nil error to stderr and exits with its status
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	code := 1
	if ce, ok := err.(*cmdError); ok {
		code = ce.code
	}
	os.Exit(code)
}
