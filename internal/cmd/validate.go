package cmd

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ezerfernandes/txt2md/internal/txt2md"
	"github.com/spf13/cobra"
)

//go:embed help/validate.md
var validateHelp string

// ErrInvalidMarkdown is returned by the validate command when the document
// fails the sanity checks.
var ErrInvalidMarkdown = errors.New("markdown failed validation")

func validateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "validate [filename]",
		Aliases: []string{"v"},
		Short:   "Sanity-check a Markdown document",
		Long:    validateHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, source(args))
			if err != nil {
				return err
			}

			if !txt2md.Validate(string(src)) {
				return ErrInvalidMarkdown
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)

	return cmd
}
