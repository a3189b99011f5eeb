package cmd

import (
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/txt2md/internal/txt2md"
	"github.com/spf13/cobra"
)

//go:embed help/transform.md
var transformHelp string

func transformCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "transform [flags] [filename|directory]",
		Aliases: []string{"t"},
		Short:   "Convert plain text to Markdown",
		Long:    transformHelp,
		Args:    checkargs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := source(args)

			if filename != "-" {
				info, err := os.Stat(filename)
				if err != nil {
					return err
				}

				if info.IsDir() {
					return transformDir(filename, opts.status)
				}
			}

			src, err := readInput(cmd, filename)
			if err != nil {
				return err
			}

			return writeOutput(cmd, opts, txt2md.Transform(string(src)))
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)
	outputFlag(cmd, opts)

	return cmd
}

func transformDir(dir string, status statusFunc) error {
	return transformTree(os.DirFS(dir), func(path string, data []byte) error {
		return os.WriteFile(filepath.Join(dir, path), data, fileMode)
	}, status)
}

// transformTree converts every *.txt file under fsys to a sibling *.md file
// via write. It is separated from the os-backed wrapper so tests can run it
// against an in-memory filesystem.
func transformTree(fsys fs.FS, write func(path string, data []byte) error, status statusFunc) error {
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !strings.HasSuffix(path, ".txt") {
			return nil
		}

		src, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		target := strings.TrimSuffix(path, ".txt") + ".md"

		status("%s -> %s\n", path, target)

		return write(target, []byte(txt2md.Transform(string(src))+"\n"))
	})
}
