package cmd

import (
	"github.com/ezerfernandes/txt2md/internal/txt2md"
	"github.com/gobwas/glob"
)

type filterFunc func(block *txt2md.Block) bool

// filter builds a block predicate from kind and fence-language glob
// patterns. An empty pattern list matches everything; the lang patterns
// apply to code blocks only.
func filter(kinds, langs []string) (filterFunc, error) {
	kindGlobs, err := compileGlobs(kinds)
	if err != nil {
		return nil, err
	}

	langGlobs, err := compileGlobs(langs)
	if err != nil {
		return nil, err
	}

	return func(block *txt2md.Block) bool {
		if !matchAny(kindGlobs, string(block.Kind)) {
			return false
		}

		if block.Kind == txt2md.KindCode && !matchAny(langGlobs, block.Lang) {
			return false
		}

		return true
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, value string) bool {
	if len(globs) == 0 {
		return true
	}

	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}
