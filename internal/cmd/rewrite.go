package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ezerfernandes/txt2md/internal/rewrite"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

//go:embed help/rewrite.md
var rewriteHelp string

func rewriteCmd(opts *options) *cobra.Command {
	cfg := rewrite.DefaultConfig()

	var configPath string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "rewrite [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Rewrite text with an explicit configuration",
		Long:    rewriteHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			if configPath == "" {
				return nil
			}

			return applyConfigFile(configPath, cmd.Flags(), &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, source(args))
			if err != nil {
				return err
			}

			result, err := rewrite.Rewrite(string(src), cfg)
			if err != nil {
				return err
			}

			return writeOutput(cmd, opts, result)
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)
	outputFlag(cmd, opts)

	cmd.Flags().IntVar(&cfg.HeadingDepth, "heading-depth", cfg.HeadingDepth, "section heading depth (clamped to 1-6)")
	cmd.Flags().StringVar(&cfg.ListStyle, "list-style", cfg.ListStyle, "list marker style (bullet|numbered)")
	cmd.Flags().StringVar(&cfg.ParagraphSpacing, "paragraph-spacing", cfg.ParagraphSpacing, "blank lines between paragraphs (single|double)")
	cmd.Flags().StringVar(&cfg.EmphasisStyle, "emphasis", cfg.EmphasisStyle, "emphasis delimiter style (asterisk|underscore)")
	cmd.Flags().StringVar(&cfg.CodeBlockStyle, "code-style", cfg.CodeBlockStyle, "code block layout (indented|fenced)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "load configuration from a YAML file")

	return cmd
}

// configFlags maps flag names to the yaml fields they shadow; explicit flags
// win over the config file.
var configFlags = map[string]func(dst *rewrite.Config, src rewrite.Config){
	"heading-depth":     func(dst *rewrite.Config, src rewrite.Config) { dst.HeadingDepth = src.HeadingDepth },
	"list-style":        func(dst *rewrite.Config, src rewrite.Config) { dst.ListStyle = src.ListStyle },
	"paragraph-spacing": func(dst *rewrite.Config, src rewrite.Config) { dst.ParagraphSpacing = src.ParagraphSpacing },
	"emphasis":          func(dst *rewrite.Config, src rewrite.Config) { dst.EmphasisStyle = src.EmphasisStyle },
	"code-style":        func(dst *rewrite.Config, src rewrite.Config) { dst.CodeBlockStyle = src.CodeBlockStyle },
}

func applyConfigFile(path string, flags *pflag.FlagSet, cfg *rewrite.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := rewrite.DefaultConfig()

	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for name, apply := range configFlags {
		if !flags.Changed(name) {
			apply(cfg, loaded)
		}
	}

	return nil
}
