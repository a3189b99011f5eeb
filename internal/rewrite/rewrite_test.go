package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteEmphasisRoundTrip(t *testing.T) {
	asterisk := DefaultConfig()
	asterisk.EmphasisStyle = EmphasisAsterisk

	underscore := DefaultConfig()
	underscore.EmphasisStyle = EmphasisUnderscore

	out, err := Rewrite("_word_", asterisk)
	require.NoError(t, err)
	assert.Equal(t, "*word*", out)

	back, err := Rewrite(out, underscore)
	require.NoError(t, err)
	assert.Equal(t, "_word_", back)
}

func TestRewriteDoubleEmphasis(t *testing.T) {
	out, err := Rewrite("__strong__ and _soft_", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "**strong** and *soft*", out)
}

func TestRewriteSectionHeading(t *testing.T) {
	out, err := Rewrite("Introduction\n\nlowercase body text", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "## Introduction\n\nlowercase body text", out)
}

func TestRewriteHeadingDepthCappedAtThree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeadingDepth = 9

	out, err := Rewrite("Introduction\n\nlowercase body", cfg)

	require.NoError(t, err)
	assert.Equal(t, "### Introduction\n\nlowercase body", out)
}

func TestRewriteHeadingDepthClampedLow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeadingDepth = -2

	out, err := Rewrite("Introduction\n\nlowercase body", cfg)

	require.NoError(t, err)
	assert.Equal(t, "# Introduction\n\nlowercase body", out)
}

func TestRewriteListToNumbered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListStyle = ListNumbered

	out, err := Rewrite("- alpha\n- beta\n- gamma", cfg)

	require.NoError(t, err)
	assert.Equal(t, "1. alpha\n2. beta\n3. gamma", out)
}

func TestRewriteListToBullet(t *testing.T) {
	out, err := Rewrite("1. alpha\n2) beta", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "- alpha\n- beta", out)
}

func TestRewriteNumberedCounterRestartsAcrossRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListStyle = ListNumbered

	out, err := Rewrite("- a\n- b\n\n- c", cfg)

	require.NoError(t, err)
	assert.Equal(t, "1. a\n2. b\n\n1. c", out)
}

func TestRewriteParagraphJoining(t *testing.T) {
	out, err := Rewrite("line one\nline two\n\nline three", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "line one line two\n\nline three", out)
}

func TestRewriteDoubleSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParagraphSpacing = SpacingDouble

	out, err := Rewrite("first para\n\nsecond para", cfg)

	require.NoError(t, err)
	assert.Equal(t, "first para\n\n\nsecond para", out)
}

func TestRewriteIndentedToFenced(t *testing.T) {
	out, err := Rewrite("intro text\n\n    x = 1\n    y = 2\n\ntail text", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "intro text\n\n```\nx = 1\ny = 2\n```\n\ntail text", out)
}

func TestRewriteFencedToIndented(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CodeBlockStyle = CodeIndented

	out, err := Rewrite("```\nx = 1\n```", cfg)

	require.NoError(t, err)
	assert.Equal(t, "    x = 1", out)
}

func TestRewriteFencedPassThrough(t *testing.T) {
	out, err := Rewrite("```\n_not emphasis_\n```", DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "```\n_not emphasis_\n```", out)
}

func TestRewriteInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(cfg *Config)
		field string
	}{
		{"list style", func(cfg *Config) { cfg.ListStyle = "fancy" }, "list_style"},
		{"spacing", func(cfg *Config) { cfg.ParagraphSpacing = "triple" }, "paragraph_spacing"},
		{"emphasis", func(cfg *Config) { cfg.EmphasisStyle = "tilde" }, "emphasis_style"},
		{"code style", func(cfg *Config) { cfg.CodeBlockStyle = "tabbed" }, "code_block_style"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)

			_, err := Rewrite("text", cfg)

			var invalid *InvalidConfigError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestRewriteEmptyInput(t *testing.T) {
	out, err := Rewrite("", DefaultConfig())

	require.NoError(t, err)
	assert.Empty(t, out)
}
