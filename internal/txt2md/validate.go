package txt2md

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Validate sanity-checks rendered Markdown: the asterisk count is even, the
// triple-backtick fence count is even, and the document contains at least
// one heading. This is advisory only; it is a boolean heuristic, not a
// parser-correctness guarantee.
func Validate(markdown string) bool {
	if strings.Count(markdown, "*")%2 != 0 {
		return false
	}

	if strings.Count(markdown, "```")%2 != 0 {
		return false
	}

	return hasHeading([]byte(markdown))
}

func hasHeading(source []byte) bool {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	found := false

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == ast.KindHeading {
			found = true

			return ast.WalkStop, nil
		}

		return ast.WalkContinue, nil
	})

	return found
}
