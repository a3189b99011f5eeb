package txt2md

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectHeadingATX(t *testing.T) {
	tests := []struct {
		line  string
		level int
		text  string
	}{
		{"# One", 1, "One"},
		{"### Three", 3, "Three"},
		{"###### Six", 6, "Six"},
		{"##   padded", 2, "padded"},
	}

	for _, tc := range tests {
		res := detectHeading(tc.line, "")

		require.True(t, res.isHeading, tc.line)
		assert.Equal(t, tc.level, res.level)
		assert.Equal(t, tc.text, res.text)
		assert.Empty(t, res.residual)
	}
}

func TestDetectHeadingATXRequiresSpace(t *testing.T) {
	res := detectHeading("#nospace", "")

	assert.False(t, res.isHeading)
}

func TestDetectHeadingSevenHashesIsNotATX(t *testing.T) {
	// Seven hashes fall through ATX; the line is then caught by nothing
	// else and stays plain.
	res := detectHeading("####### seven", "")

	assert.False(t, res.isHeading)
}

func TestDetectHeadingSetext(t *testing.T) {
	res := detectHeading("Title", "===")
	require.True(t, res.isHeading)
	assert.Equal(t, 1, res.level)
	assert.Equal(t, 1, res.skip)

	res = detectHeading("Title", "---")
	require.True(t, res.isHeading)
	assert.Equal(t, 2, res.level)

	// Underlines need at least three characters.
	res = detectHeading("just text here lowercase", "==")
	assert.False(t, res.isHeading)
}

func TestHeadingPatternTable(t *testing.T) {
	tests := []struct {
		line  string
		level int
	}{
		{"r/golang", 1},
		{"/r/golang", 1},
		{"About", 2},
		{"OVERVIEW", 2},
		{"rules", 2},
		{"Members", 3},
		{"Restricted", 3},
		{"Status by admin", 3},
		{"Category", 3},
		{"Moderators", 4},
		{"User flair", 4},
		{"Admin info", 4},
		{"u/someone", 4},
	}

	for _, tc := range tests {
		res := detectHeading(tc.line, "")

		require.True(t, res.isHeading, tc.line)
		assert.Equal(t, tc.level, res.level, tc.line)
	}
}

// The tag patterns match as prefixes; text after the tag becomes residual
// and seeds the next paragraph.
func TestHeadingTagResidual(t *testing.T) {
	res := detectHeading("u/someone posted this", "")

	require.True(t, res.isHeading)
	assert.Equal(t, 4, res.level)
	assert.Equal(t, "u/someone", res.text)
	assert.Equal(t, "posted this", res.residual)
}

func TestHeadingPatternOrderIsPriority(t *testing.T) {
	// The subreddit tag outranks the title-case fallback, which would have
	// assigned level 2.
	res := detectHeading("r/Pics Best Of", "")

	require.True(t, res.isHeading)
	assert.Equal(t, 1, res.level)
	assert.Equal(t, "r/Pics", res.text)
}

func TestTitleCaseFallback(t *testing.T) {
	tests := []struct {
		line    string
		heading bool
	}{
		{"Hello World", true},
		{"HELLO WORLD", true},
		{"Hello world", false},
		{"hello world", false},
		{"Mostly Capitalized Words here", true},
		{"only One of these four", false},
	}

	for _, tc := range tests {
		res := detectHeading(tc.line, "")

		assert.Equal(t, tc.heading, res.isHeading, tc.line)

		if tc.heading {
			assert.Equal(t, 2, res.level, tc.line)
		}
	}
}

// The fallback misfires on short capitalized sentences; this is a known
// limitation of the heuristic, not a bug.
func TestTitleCaseMisfiresOnShortSentences(t *testing.T) {
	res := detectHeading("Stop That Now", "")

	assert.True(t, res.isHeading)
}

func TestTitleCaseLengthBoundary(t *testing.T) {
	at59 := strings.TrimSpace(strings.Repeat("Abc ", 15))
	require.Len(t, at59, 59)

	res := detectHeading(at59, "")
	require.True(t, res.isHeading)
	assert.Equal(t, 2, res.level)

	at61 := "Abcde " + strings.TrimSpace(strings.Repeat("Abc ", 14))
	require.Len(t, at61, 61)

	res = detectHeading(at61, "")
	assert.False(t, res.isHeading)
}
