package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ezerfernandes/txt2md/internal/txt2md"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/blocks.md
var blocksHelp string

const previewLen = 40

func blocksCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "blocks [flags] [filename]",
		Aliases: []string{"b"},
		Short:   "Analyze text and list the detected blocks",
		Long:    blocksHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			var err error
			opts.filter, err = filter(opts.kind, opts.lang)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, source(args))
			if err != nil {
				return err
			}

			blocks := filterBlocks(txt2md.Analyze(string(src)), opts.filter)

			if asJSON {
				return printJSON(cmd, blocks)
			}

			printTable(cmd, blocks)

			return nil
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)

	cmd.Flags().StringSliceVar(&opts.kind, "kind", nil, "only show blocks whose kind matches a glob pattern")
	cmd.Flags().StringSliceVar(&opts.lang, "lang", nil, "only show code blocks whose language matches a glob pattern")
	cmd.Flags().BoolVar(&asJSON, "json", false, "dump blocks as JSON")

	return cmd
}

func filterBlocks(blocks txt2md.Blocks, filter filterFunc) txt2md.Blocks {
	result := make(txt2md.Blocks, 0, len(blocks))

	for _, block := range blocks {
		if filter(block) {
			result = append(result, block)
		}
	}

	return result
}

func printJSON(cmd *cobra.Command, blocks txt2md.Blocks) error {
	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}

func printTable(cmd *cobra.Command, blocks txt2md.Blocks) {
	tbl := table.New("#", "KIND", "LEVEL", "LIST", "CONTENT").WithWriter(cmd.OutOrStdout())

	for i, block := range blocks {
		tbl.AddRow(i, block.Kind, levelLabel(block), listLabel(block), preview(block.Content))
	}

	tbl.Print()
}

func levelLabel(block *txt2md.Block) string {
	if block.Kind != txt2md.KindHeading {
		return ""
	}

	return fmt.Sprint(block.Level)
}

func listLabel(block *txt2md.Block) string {
	if block.Kind != txt2md.KindListItem {
		return ""
	}

	if block.ListKind == txt2md.ListNumbered {
		return fmt.Sprintf("%s %d", block.ListKind, block.ListIndex)
	}

	return string(block.ListKind)
}

func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", "\\n")

	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}

	return string(runes[:previewLen]) + "..."
}
