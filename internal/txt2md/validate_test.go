package txt2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		valid    bool
	}{
		{"heading only", "# Title", true},
		{"heading with body", "# Title\n\nsome **bold** text", true},
		{"setext heading", "Title\n===\n\nbody", true},
		{"no heading", "just a paragraph", false},
		{"odd asterisks", "# Title\n\nbroken *emphasis", false},
		{"odd fences", "# Title\n\n```\nunclosed", false},
		{"balanced fences", "# Title\n\n```\ncode\n```", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, Validate(tc.markdown))
		})
	}
}

func TestValidateAcceptsTransformOutput(t *testing.T) {
	inputs := []string{
		"# Title\n\nplain body",
		"# Title\n\n**bold** and *italic*",
		"Overview\n\n- item\n\n```\ncode\n```",
	}

	for _, input := range inputs {
		assert.True(t, Validate(Transform(input)), "input %q", input)
	}
}
