// Package cmd implements the txt2md command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	fileMode = 0o644
)

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc

	kind   []string
	lang   []string
	filter filterFunc

	output string
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// Execute runs the CLI with the given arguments and exits the process with a
// non-zero code on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "txt2md",
		Short: "Convert unstructured plain text to Markdown",
		Long: "txt2md segments plain text into typed blocks (headings, paragraphs,\n" +
			"lists, quotes, code) using line-level heuristics and re-serializes\n" +
			"them as canonical Markdown.",

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	root.AddCommand(blocksCmd(opts))
	root.AddCommand(transformCmd(opts))
	root.AddCommand(rewriteCmd(opts))
	root.AddCommand(validateCmd(opts))

	return root
}

var checkargs = cobra.MaximumNArgs(1)

// source returns the input filename from args, defaulting to stdin.
func source(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return "-"
}

func readInput(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output")
}

func outputFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write result to file instead of stdout")
}

func writeOutput(cmd *cobra.Command, opts *options, result string) error {
	if opts.output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)

		return err
	}

	return os.WriteFile(opts.output, []byte(result+"\n"), fileMode)
}
